package analyze

import (
	"fmt"
	"go/types"

	"beanmapper/generic"
	"beanmapper/internal/diagnostic"
)

// Member is one visible field of a described struct, promoted fields included.
type Member struct {
	Path     string                     // e.g. "Order.Audited.Entity.ID"
	Name     string                     // Go field name
	Index    []int                      // reflect-compatible index path
	Exported bool                       // Whether the field is exported
	Embedded bool                       // Whether the field is embedded
	Declared types.Type                 // Declared type, may mention type parameters
	Resolved *generic.ParameterizedType // Declared type under the root binding, nil if unresolvable
}

// Description is the static view of one struct type as a bean source.
type Description struct {
	ID          TypeID
	Binding     generic.Binding
	Members     []Member
	Diagnostics diagnostic.Diagnostics
}

// Describe flattens the named struct type pkgPath.name in the order of
// reflect.VisibleFields and resolves every field type against the binding
// of its embedding chain. Unresolvable fields produce warnings.
func (g *TypeGraph) Describe(pkgPath, name string) (*Description, error) {
	info, err := g.GetStruct(pkgPath, name)
	if err != nil {
		return nil, err
	}

	d := &Description{
		ID:      info.ID,
		Binding: generic.BindingOf(info.Named),
	}

	var members []Member
	collect(info.Named, NewTypePath(name), nil, &members, make(map[*types.Named]struct{}))

	for _, m := range visible(members) {
		m.Resolved = generic.Resolve(m.Declared, d.Binding)
		if !resolved(m.Resolved) {
			d.Diagnostics.AddWarning(diagnostic.CodeUnresolvedParam,
				fmt.Sprintf("%s has unbound type parameters", TypeString(m.Declared)),
				info.ID.String(), m.Path)
		}
		if !m.Exported {
			d.Diagnostics.AddInfo(diagnostic.CodeUnexportedField,
				"raw attribute only, not a property", info.ID.String(), m.Path)
		}

		d.Members = append(d.Members, m)
	}

	return d, nil
}

// collect walks fields depth-first, each embedded field followed by its promoted fields.
func collect(t types.Type, path *TypePath, index []int, out *[]Member, seen map[*types.Named]struct{}) {
	named := derefNamed(t)
	if named == nil {
		return
	}

	origin := named.Origin()
	if _, ok := seen[origin]; ok {
		return
	}
	seen[origin] = struct{}{}
	defer delete(seen, origin)

	st, ok := origin.Underlying().(*types.Struct)
	if !ok {
		return
	}

	for i := range st.NumFields() {
		f := st.Field(i)
		idx := append(append([]int(nil), index...), i)
		fieldPath := path.Field(f.Name())

		*out = append(*out, Member{
			Path:     fieldPath.String(),
			Name:     f.Name(),
			Index:    idx,
			Exported: f.Exported(),
			Embedded: f.Embedded(),
			Declared: f.Type(),
		})

		if f.Embedded() {
			collect(f.Type(), fieldPath, idx, out, seen)
		}
	}
}

func derefNamed(t types.Type) *types.Named {
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	named, _ := t.(*types.Named)

	return named
}

// visible drops fields hidden by a shallower field of the same name and
// fields that collide at the same depth, as Go selector rules do.
func visible(members []Member) []Member {
	type slot struct {
		depth, count int
	}

	slots := make(map[string]slot)
	for _, m := range members {
		s, ok := slots[m.Name]
		switch {
		case !ok || len(m.Index) < s.depth:
			slots[m.Name] = slot{depth: len(m.Index), count: 1}
		case len(m.Index) == s.depth:
			s.count++
			slots[m.Name] = s
		}
	}

	out := make([]Member, 0, len(members))
	for _, m := range members {
		if s := slots[m.Name]; s.depth == len(m.Index) && s.count == 1 {
			out = append(out, m)
		}
	}

	return out
}

func resolved(p *generic.ParameterizedType) bool {
	if p == nil {
		return false
	}

	for _, a := range p.Args {
		if !resolved(a) {
			return false
		}
	}

	return true
}
