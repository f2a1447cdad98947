package generic

import (
	"fmt"
	"go/types"
	"strings"
)

// ParameterizedType describes one declared type occurrence. Args is nil when
// Raw is not generic (or is used without arguments); otherwise it holds one
// entry per type argument, and an entry is nil when that argument cannot be
// resolved. Slices, arrays and pointers are their own raw type and carry the
// arguments of their element.
type ParameterizedType struct {
	Raw  types.Type
	Args []*ParameterizedType
}

// Resolve describes declared under binding b. It returns nil when no
// concrete raw type can be determined, such as for an unbound type
// parameter or a slice of one.
func Resolve(declared types.Type, b Binding) *ParameterizedType {
	switch t := types.Unalias(declared).(type) {
	case nil:
		return nil

	case *types.TypeParam:
		arg, ok := b.Lookup(t)
		if !ok {
			return nil
		}
		return Resolve(arg, b.without(t))

	case *types.Named:
		targs := t.TypeArgs()
		if targs.Len() == 0 {
			return &ParameterizedType{Raw: t}
		}

		args := make([]*ParameterizedType, targs.Len())
		for i := range targs.Len() {
			args[i] = Resolve(targs.At(i), b)
		}

		return &ParameterizedType{Raw: t.Origin(), Args: args}

	case *types.Map:
		return &ParameterizedType{
			Raw:  Substitute(t, b),
			Args: []*ParameterizedType{Resolve(t.Key(), b), Resolve(t.Elem(), b)},
		}

	case *types.Chan:
		return &ParameterizedType{
			Raw:  Substitute(t, b),
			Args: []*ParameterizedType{Resolve(t.Elem(), b)},
		}

	case *types.Slice:
		return wrap(t.Elem(), b, types.NewSlice)

	case *types.Array:
		return wrap(t.Elem(), b, func(elem types.Type) types.Type {
			return types.NewArray(elem, t.Len())
		})

	case *types.Pointer:
		return wrap(t.Elem(), b, func(elem types.Type) types.Type {
			return types.NewPointer(elem)
		})

	default:
		return &ParameterizedType{Raw: t}
	}
}

func wrap[T types.Type](elem types.Type, b Binding, build func(types.Type) T) *ParameterizedType {
	inner := Resolve(elem, b)
	if inner == nil {
		return nil
	}

	return &ParameterizedType{Raw: build(inner.Raw), Args: inner.Args}
}

// IsGeneric reports whether the type carries type arguments.
func (p *ParameterizedType) IsGeneric() bool {
	return p != nil && p.Args != nil
}

// String renders the raw type followed by its arguments, "?" standing for
// an unresolved argument: "[]store.Set[int]".
func (p *ParameterizedType) String() string {
	if p == nil {
		return "?"
	}

	if !p.IsGeneric() || !namedCore(p.Raw) {
		return rawString(p.Raw)
	}

	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = a.String()
	}

	return rawString(p.Raw) + "[" + strings.Join(args, ", ") + "]"
}

// namedCore reports whether t is a named type under slices, arrays and pointers.
func namedCore(t types.Type) bool {
	for {
		switch tt := t.(type) {
		case *types.Slice:
			t = tt.Elem()
		case *types.Array:
			t = tt.Elem()
		case *types.Pointer:
			t = tt.Elem()
		case *types.Named:
			return true
		default:
			return false
		}
	}
}

// rawString prints t without type parameter lists on generic origins.
func rawString(t types.Type) string {
	switch tt := t.(type) {
	case *types.Slice:
		return "[]" + rawString(tt.Elem())
	case *types.Array:
		return fmt.Sprintf("[%d]%s", tt.Len(), rawString(tt.Elem()))
	case *types.Pointer:
		return "*" + rawString(tt.Elem())
	case *types.Named:
		if tt.TypeArgs().Len() == 0 && tt.TypeParams().Len() > 0 {
			return qualifiedName(tt.Obj())
		}
	}

	return types.TypeString(t, relative)
}

func qualifiedName(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Name() + "." + obj.Name()
}
