package generic

import (
	"go/types"
	"reflect"
	"strings"
)

// Source finds the declaration of a named type.
type Source interface {
	Lookup(pkgPath, name string) *types.Named
}

// PackageSource is a Source over already type-checked packages.
type PackageSource struct {
	pkgs map[string]*types.Package
}

// NewPackageSource indexes pkgs by import path. Nil packages are ignored.
func NewPackageSource(pkgs ...*types.Package) *PackageSource {
	s := &PackageSource{pkgs: make(map[string]*types.Package, len(pkgs))}
	for _, p := range pkgs {
		if p != nil {
			s.pkgs[p.Path()] = p
		}
	}

	return s
}

// Lookup returns the named type declared as name in pkgPath, or nil.
func (s *PackageSource) Lookup(pkgPath, name string) *types.Named {
	pkg, ok := s.pkgs[pkgPath]
	if !ok {
		return nil
	}

	return LookupScope(pkg.Scope(), name)
}

// LookupScope returns the named type declared as name in scope, or nil.
func LookupScope(scope *types.Scope, name string) *types.Named {
	tn, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		return nil
	}

	named, _ := types.Unalias(tn.Type()).(*types.Named)

	return named
}

// NamedOf finds the declaration of a reflect type through src. Pointers are
// dereferenced once. Unnamed types and runtime instantiations of generic
// types (reflect names such as "Box[int]") have no declaration and yield nil.
func NamedOf(src Source, t reflect.Type) *types.Named {
	if src == nil || t == nil {
		return nil
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == "" || t.PkgPath() == "" || strings.Contains(t.Name(), "[") {
		return nil
	}

	return src.Lookup(t.PkgPath(), t.Name())
}
