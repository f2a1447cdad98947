package match

import (
	"reflect"
	"slices"
	"strings"

	beanerrors "beanmapper/errors"
)

// Signature describes one callable candidate: an initializer or a method.
type Signature struct {
	Label    string
	Params   []reflect.Type
	Variadic bool
	// Implicit marks fallbacks (such as the zero-value initializer) that lose
	// every tie against an explicitly declared candidate.
	Implicit bool
}

// Candidate is a signature that accepts the supplied arguments.
type Candidate struct {
	Index int
	// Distance is the sum of argument distances.
	Distance int
	// Inexact counts arguments that are not passed as their exact type.
	Inexact int
	// Expanded is true when trailing arguments fill a variadic parameter.
	Expanded bool
	Implicit bool
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankSignatures returns every signature that accepts args, most specific first.
// Ranking keys, in order: total distance, number of inexact arguments,
// non-variadic before variadic expansion, explicit before implicit.
func RankSignatures(sigs []Signature, args []reflect.Value) CandidateList {
	var candidates CandidateList

	for i, sig := range sigs {
		if cand, ok := fit(sig, args); ok {
			cand.Index = i
			candidates = append(candidates, cand)
		}
	}

	slices.SortStableFunc(candidates, compareCandidates)

	return candidates
}

// BestFit picks the index of the most specific signature for args.
// It returns an errors.ErrNoMatch error when nothing fits and an
// errors.ErrAmbiguousMatch error when the two best candidates tie on every key.
func BestFit(name string, sigs []Signature, args []reflect.Value) (int, error) {
	ranked := RankSignatures(sigs, args)

	best, ok := ranked.Best()
	if !ok {
		return -1, beanerrors.NewNoMatchError(name, argTypes(args)...)
	}

	if ranked.IsAmbiguous() {
		var labels []string
		for _, c := range ranked {
			if compareCandidates(c, best) != 0 {
				break
			}
			labels = append(labels, sigs[c.Index].Label)
		}

		return -1, beanerrors.NewAmbiguousMatchError(name, labels...)
	}

	return best.Index, nil
}

// Best returns the best candidate, or false if no candidates.
func (c CandidateList) Best() (Candidate, bool) {
	if len(c) == 0 {
		return Candidate{}, false
	}

	return c[0], true
}

// IsAmbiguous returns true if the top two candidates tie on every ranking key.
func (c CandidateList) IsAmbiguous() bool {
	return len(c) > 1 && compareCandidates(c[0], c[1]) == 0
}

func compareCandidates(a, b Candidate) int {
	switch {
	case a.Distance != b.Distance:
		return a.Distance - b.Distance
	case a.Inexact != b.Inexact:
		return a.Inexact - b.Inexact
	case a.Expanded != b.Expanded:
		return boolRank(a.Expanded) - boolRank(b.Expanded)
	case a.Implicit != b.Implicit:
		return boolRank(a.Implicit) - boolRank(b.Implicit)
	}

	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}

func fit(sig Signature, args []reflect.Value) (Candidate, bool) {
	cand := Candidate{Implicit: sig.Implicit}
	n := len(sig.Params)

	if !sig.Variadic || (len(args) == n && passesAsSlice(args[n-1], sig.Params[n-1])) {
		if len(args) != n {
			return cand, false
		}

		return cand, score(&cand, args, sig.Params)
	}

	if len(args) < n-1 {
		return cand, false
	}

	params := make([]reflect.Type, 0, len(args))
	params = append(params, sig.Params[:n-1]...)
	for range len(args) - (n - 1) {
		params = append(params, sig.Params[n-1].Elem())
	}

	cand.Expanded = true

	return cand, score(&cand, args, params)
}

func passesAsSlice(arg reflect.Value, param reflect.Type) bool {
	return arg.IsValid() && arg.Type().AssignableTo(param)
}

func score(cand *Candidate, args []reflect.Value, params []reflect.Type) bool {
	for i, arg := range args {
		d, ok := ArgumentDistance(arg, params[i])
		if !ok {
			return false
		}

		cand.Distance += d
		if d != DistanceExact {
			cand.Inexact++
		}
	}

	return true
}

func argTypes(args []reflect.Value) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = typeString(nil)
		if a.IsValid() {
			out[i] = a.Type().String()
		}
	}

	return out
}

// SuggestThreshold is the similarity a suggestion must exceed.
const SuggestThreshold = 0.6

// Suggest returns the known name closest to name, or "" when nothing is
// similar enough. Ties resolve to the alphabetically first name.
func Suggest(name string, known []string) string {
	best, bestScore := "", SuggestThreshold

	for _, k := range known {
		s := Similarity(name, k)
		if s > bestScore || (s == bestScore && best != "" && strings.Compare(k, best) < 0) {
			best, bestScore = k, s
		}
	}

	return best
}
