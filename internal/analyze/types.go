package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"beanmapper/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "beanmapper/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a named type's underlying type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // type Status string
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice or array of another type
	TypeKindMap                // map type
	TypeKindFunc               // func type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindMap:
		return "map"
	case TypeKindFunc:
		return "func"
	default:
		return common.UnknownStr
	}
}

func kindOf(t types.Type) TypeKind {
	switch t.Underlying().(type) {
	case *types.Basic:
		return TypeKindBasic
	case *types.Struct:
		return TypeKindStruct
	case *types.Interface:
		return TypeKindInterface
	case *types.Pointer:
		return TypeKindPointer
	case *types.Slice, *types.Array:
		return TypeKindSlice
	case *types.Map:
		return TypeKindMap
	case *types.Signature:
		return TypeKindFunc
	default:
		return TypeKindUnknown
	}
}

// TypeInfo describes one exported named type.
type TypeInfo struct {
	ID     TypeID       // Unique identifier
	Kind   TypeKind     // Kind of the underlying type
	Named  *types.Named // The declaration (origin for generic types)
	Params []string     // Type parameter names, in declaration order
	Fields []FieldInfo  // For structs, the declared fields
}

// IsGeneric reports whether the type declares type parameters.
func (t *TypeInfo) IsGeneric() bool {
	return len(t.Params) > 0
}

// FieldInfo describes a declared struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Declared types.Type        // Declared type, may mention type parameters
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// BeanName returns the bean tag name if present, otherwise the field name.
// The second result is false for fields tagged `bean:"-"`.
func (f *FieldInfo) BeanName() (string, bool) {
	tag, _, _ := strings.Cut(f.Tag.Get("bean"), ",")

	switch tag {
	case "-":
		return "", false
	case "":
		return common.Decapitalize(f.Name), true
	default:
		return tag, true
	}
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all exported named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Lookup returns the declaration of pkgPath.name, or nil. Unexported types
// are found through the package scope.
func (g *TypeGraph) Lookup(pkgPath, name string) *types.Named {
	if info := g.Types[TypeID{PkgPath: pkgPath, Name: name}]; info != nil {
		return info.Named
	}

	pkg, ok := g.Packages[pkgPath]
	if !ok || pkg.Types == nil {
		return nil
	}

	tn, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil
	}

	named, _ := types.Unalias(tn.Type()).(*types.Named)

	return named
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string         // Import path
	Name  string         // Package name
	IDs   []TypeID       // Exported named types defined in this package
	Types *types.Package // Type-checked package
}
