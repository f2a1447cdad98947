package analyze

import (
	"go/types"
	"strings"
)

// TypePath builds a readable path string for a promoted field.
// Examples:
//   - "Order" for the root type
//   - "Order.CustomerID" for a direct field
//   - "Order.Audited.Entity.ID" for a field promoted through two embeddings
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeString prints t with package-name qualifiers ("store.Set[int]").
func TypeString(t types.Type) string {
	if t == nil {
		return "<nil>"
	}

	return types.TypeString(t, func(p *types.Package) string { return p.Name() })
}
