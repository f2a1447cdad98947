package generic

import (
	"go/types"
)

// FieldType returns the declared type of the field reached by a reflect
// index path (reflect.StructField.Index) starting at named. Each step reads
// the origin declaration, so the result still mentions the type parameters
// of the struct that declares the field; resolve it with the Binding of the
// outermost type. It returns nil when the path does not match the declaration.
func FieldType(named *types.Named, index []int) types.Type {
	var cur types.Type = named

	for _, i := range index {
		st := structOf(cur)
		if st == nil || i < 0 || i >= st.NumFields() {
			return nil
		}

		cur = st.Field(i).Type()
	}

	return cur
}

func structOf(t types.Type) *types.Struct {
	if named := namedOf(t); named != nil {
		st, _ := named.Origin().Underlying().(*types.Struct)
		return st
	}

	st, _ := types.Unalias(t).Underlying().(*types.Struct)

	return st
}

// MethodResult returns the declared type of the first result of the named
// method of named, or nil when there is no such method
// or it returns nothing.
func MethodResult(named *types.Named, method string) types.Type {
	fn := lookupMethod(named, method)
	if fn == nil {
		return nil
	}

	results := fn.Signature().Results()
	if results.Len() == 0 {
		return nil
	}

	return results.At(0).Type()
}

// MethodParam returns the declared type of the i-th parameter of the
// named method, or nil.
func MethodParam(named *types.Named, method string, i int) types.Type {
	fn := lookupMethod(named, method)
	if fn == nil {
		return nil
	}

	params := fn.Signature().Params()
	if i < 0 || i >= params.Len() {
		return nil
	}

	return params.At(i).Type()
}

// lookupMethod searches the method set of *named, or of named itself for
// interfaces.
func lookupMethod(named *types.Named, method string) *types.Func {
	origin := named.Origin()

	var recv types.Type = types.NewPointer(origin)
	if types.IsInterface(origin) {
		recv = origin
	}

	obj, _, _ := types.LookupFieldOrMethod(recv, true, origin.Obj().Pkg(), method)
	fn, _ := obj.(*types.Func)

	return fn
}
