package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	// Dir is the directory patterns are resolved in; empty means the current directory.
	Dir string

	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and adds their types to the graph.
// Patterns are standard Go package patterns (e.g., "./store", "beanmapper/warehouse").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg.Types)
	}

	return a.graph, nil
}

// AddPackage adds an already type-checked package to the graph.
func (a *Analyzer) AddPackage(pkg *types.Package) *TypeGraph {
	a.processPackage(pkg)
	return a.graph
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts exported named types from a package.
func (a *Analyzer) processPackage(pkg *types.Package) {
	if pkg == nil {
		return
	}

	pkgInfo := &PackageInfo{
		Path:  pkg.Path(),
		Name:  pkg.Name(),
		Types: pkg,
	}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		info := analyzeNamed(named)
		a.graph.Types[info.ID] = info
		pkgInfo.IDs = append(pkgInfo.IDs, info.ID)
	}

	a.graph.Packages[pkg.Path()] = pkgInfo
}

func analyzeNamed(named *types.Named) *TypeInfo {
	obj := named.Obj()

	info := &TypeInfo{
		ID:    TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()},
		Kind:  kindOf(named),
		Named: named,
	}

	params := named.TypeParams()
	for i := range params.Len() {
		info.Params = append(info.Params, params.At(i).Obj().Name())
	}

	if st, ok := named.Underlying().(*types.Struct); ok {
		for i := range st.NumFields() {
			field := st.Field(i)
			info.Fields = append(info.Fields, FieldInfo{
				Name:     field.Name(),
				Exported: field.Exported(),
				Declared: field.Type(),
				Tag:      reflect.StructTag(st.Tag(i)),
				Embedded: field.Embedded(),
				Index:    i,
			})
		}
	}

	return info
}

// GetStruct returns the TypeInfo for a named struct.
func (g *TypeGraph) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}
	info := g.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}
	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}
	return info, nil
}
