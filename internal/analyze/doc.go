// Package analyze provides package loading and static type inspection.
//
// It uses golang.org/x/tools/go/packages with go/types to index the
// exported named types of a set of packages. The resulting TypeGraph is a
// generic.Source, so bean registries can enrich runtime descriptors with
// declared generic information.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind, type parameters and declared fields
//   - Description: flattened, binding-resolved view of one struct type
package analyze
