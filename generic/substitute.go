package generic

import (
	"go/types"
)

// Substitute replaces every bound type parameter in t with its argument.
// It descends through pointers, slices, arrays, maps, channels and generic
// instances; unchanged subtrees are returned as-is. Function, struct and
// interface literals are not rewritten.
func Substitute(t types.Type, b Binding) types.Type {
	if b.IsEmpty() {
		return t
	}

	switch tt := types.Unalias(t).(type) {
	case *types.TypeParam:
		if arg, ok := b.Lookup(tt); ok {
			return arg
		}
		return tt

	case *types.Pointer:
		if elem := Substitute(tt.Elem(), b); elem != tt.Elem() {
			return types.NewPointer(elem)
		}
		return tt

	case *types.Slice:
		if elem := Substitute(tt.Elem(), b); elem != tt.Elem() {
			return types.NewSlice(elem)
		}
		return tt

	case *types.Array:
		if elem := Substitute(tt.Elem(), b); elem != tt.Elem() {
			return types.NewArray(elem, tt.Len())
		}
		return tt

	case *types.Map:
		key, elem := Substitute(tt.Key(), b), Substitute(tt.Elem(), b)
		if key != tt.Key() || elem != tt.Elem() {
			return types.NewMap(key, elem)
		}
		return tt

	case *types.Chan:
		if elem := Substitute(tt.Elem(), b); elem != tt.Elem() {
			return types.NewChan(tt.Dir(), elem)
		}
		return tt

	case *types.Named:
		return substituteInstance(tt, b)

	default:
		return t
	}
}

func substituteInstance(named *types.Named, b Binding) types.Type {
	targs := named.TypeArgs()
	if targs.Len() == 0 {
		return named
	}

	args := make([]types.Type, targs.Len())
	changed := false

	for i := range targs.Len() {
		args[i] = Substitute(targs.At(i), b)
		changed = changed || args[i] != targs.At(i)
	}

	if !changed {
		return named
	}

	inst, err := types.Instantiate(nil, named.Origin(), args, false)
	if err != nil {
		return named
	}

	return inst
}
