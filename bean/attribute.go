package bean

import (
	"reflect"

	beanerrors "beanmapper/errors"
	"beanmapper/generic"
)

// Attribute is a visible struct field, exported or not.
type Attribute struct {
	field     reflect.StructField
	owner     reflect.Type
	paramType *generic.ParameterizedType
}

// Name returns the Go field name.
func (a *Attribute) Name() string { return a.field.Name }

// Type returns the field type.
func (a *Attribute) Type() reflect.Type { return a.field.Type }

// Index returns the reflect index path of the field.
func (a *Attribute) Index() []int { return append([]int(nil), a.field.Index...) }

// Tag returns the field tag.
func (a *Attribute) Tag() reflect.StructTag { return a.field.Tag }

// Exported reports whether the field is exported.
func (a *Attribute) Exported() bool { return a.field.IsExported() }

// Embedded reports whether the field is an embedded field.
func (a *Attribute) Embedded() bool { return a.field.Anonymous }

// Promoted reports whether the field is reached through an embedded field.
func (a *Attribute) Promoted() bool { return len(a.field.Index) > 1 }

// ParameterizedType returns the declared generic shape of the field, nil
// when the registry had no static information for the owning type.
func (a *Attribute) ParameterizedType() *generic.ParameterizedType { return a.paramType }

// Get reads the field from bean. Unexported fields cannot be read.
func (a *Attribute) Get(bean any) (any, error) {
	if !a.Exported() {
		return nil, beanerrors.NewInvalidArgumentError(a.field.Name, "unexported field")
	}

	v := reflect.ValueOf(bean)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}

	if !v.IsValid() || v.Type() != a.owner {
		return nil, beanerrors.NewInvalidArgumentError("bean", typeName(v)+" is not a "+a.owner.String())
	}

	f, err := v.FieldByIndexErr(a.field.Index)
	if err != nil {
		// promoted through a nil embedded pointer
		return reflect.Zero(a.field.Type).Interface(), nil
	}

	if !f.CanInterface() {
		return nil, beanerrors.NewInvalidArgumentError(a.field.Name, "field is not accessible")
	}

	return f.Interface(), nil
}
