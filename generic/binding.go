package generic

import (
	"go/types"
	"strings"
)

// Binding is an ordered mapping from type parameters to type arguments.
// The zero value is the empty binding. A Binding is immutable once built.
type Binding struct {
	params []*types.TypeParam
	args   []types.Type
}

// BindingOf walks the embedding chain of t outward and binds every type
// parameter it meets. Arguments of embedded instances are substituted
// through the parameters already bound by the embedding type, so
// `type Leaf struct{ Middle[int] }` with `type Middle[T any] struct{ Base[string, T] }`
// binds Middle.T and Base.V to int. Pointer embeddings and embedding cycles
// are handled; each declaration is visited once.
func BindingOf(t types.Type) Binding {
	var b Binding

	bindChain(t, &b, make(map[*types.Named]struct{}))

	return b
}

func bindChain(t types.Type, b *Binding, seen map[*types.Named]struct{}) {
	named := namedOf(t)
	if named == nil {
		return
	}

	origin := named.Origin()
	if _, ok := seen[origin]; ok {
		return
	}
	seen[origin] = struct{}{}

	params, args := origin.TypeParams(), named.TypeArgs()
	for i := range args.Len() {
		b.params = append(b.params, params.At(i))
		b.args = append(b.args, Substitute(args.At(i), *b))
	}

	switch u := origin.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			if f := u.Field(i); f.Embedded() {
				bindChain(Substitute(f.Type(), *b), b, seen)
			}
		}
	case *types.Interface:
		for i := range u.NumEmbeddeds() {
			bindChain(Substitute(u.EmbeddedType(i), *b), b, seen)
		}
	}
}

// namedOf strips aliases and one level of pointer.
func namedOf(t types.Type) *types.Named {
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	named, _ := t.(*types.Named)

	return named
}

// Lookup returns the argument bound to p.
func (b Binding) Lookup(p *types.TypeParam) (types.Type, bool) {
	for i, bp := range b.params {
		if bp == p {
			return b.args[i], true
		}
	}

	return nil, false
}

// Len returns the number of bound parameters.
func (b Binding) Len() int {
	return len(b.params)
}

// IsEmpty reports whether nothing is bound, as for non-generic types.
func (b Binding) IsEmpty() bool {
	return len(b.params) == 0
}

// Params returns the bound parameters in binding order.
func (b Binding) Params() []*types.TypeParam {
	return append([]*types.TypeParam(nil), b.params...)
}

// without returns a copy of b with p unbound.
func (b Binding) without(p *types.TypeParam) Binding {
	var out Binding
	for i, bp := range b.params {
		if bp != p {
			out.params = append(out.params, bp)
			out.args = append(out.args, b.args[i])
		}
	}

	return out
}

// String renders the binding as "T=int, V=string".
func (b Binding) String() string {
	parts := make([]string, len(b.params))
	for i, p := range b.params {
		parts[i] = p.Obj().Name() + "=" + types.TypeString(b.args[i], relative)
	}

	return strings.Join(parts, ", ")
}

// relative qualifies package members by package name only.
func relative(p *types.Package) string {
	return p.Name()
}
