// Package match scores how well runtime values fit parameter types and
// picks the most specific candidate signature for a dynamic call.
//
// Key functions:
//   - ScoreTypeCompatibility: classifies a source/target reflect.Type pair
//   - ArgumentDistance: assignability distance of one argument value
//   - RankSignatures / BestFit: best-fit initializer and method selection
//   - Suggest: closest known name for "did you mean" hints
package match
