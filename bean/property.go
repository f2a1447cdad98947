package bean

import (
	"fmt"
	"reflect"

	beanerrors "beanmapper/errors"
	"beanmapper/generic"
	"beanmapper/primitive"
)

// Property is a named, typed slot of a bean.
type Property struct {
	name  string
	typ   reflect.Type
	owner reflect.Type

	// Exported field backing reads and writes, nil when there is none.
	field []int

	getter    *accessor
	setter    *accessor
	fieldRead bool
	fieldSet  bool

	paramType *generic.ParameterizedType
}

// accessor is a method of the *T method set.
type accessor struct {
	name    string
	index   int
	returns bool // setter returns an error
}

// Name returns the property name.
func (p *Property) Name() string { return p.name }

// Type returns the declared property type.
func (p *Property) Type() reflect.Type { return p.typ }

// Readable reports whether the property has a getter or a readable field.
func (p *Property) Readable() bool { return p.getter != nil || p.fieldRead }

// Writable reports whether the property has a setter or a writable field.
func (p *Property) Writable() bool { return p.setter != nil || p.fieldSet }

// ParameterizedType returns the declared generic shape of the property,
// nil when the registry had no static information for the owning type.
func (p *Property) ParameterizedType() *generic.ParameterizedType { return p.paramType }

// Getter returns the getter method name, "" when reads use the field.
func (p *Property) Getter() string {
	if p.getter == nil {
		return ""
	}

	return p.getter.name
}

// Setter returns the setter method name, "" when writes use the field.
func (p *Property) Setter() string {
	if p.setter == nil {
		return ""
	}

	return p.setter.name
}

// String returns "name type".
func (p *Property) String() string {
	return p.name + " " + p.typ.String()
}

// Get reads the property from bean, a pointer to or a value of the owning struct.
func (p *Property) Get(bean any) (any, error) {
	v, err := p.value(bean)
	if err != nil {
		return nil, err
	}

	out, err := p.read(v)
	if err != nil {
		return nil, err
	}

	return out.Interface(), nil
}

// Set writes value into bean, which must be a non-nil pointer to the owning
// struct. value must be assignable to the property type, possibly through a
// pointer; nil writes the zero value.
func (p *Property) Set(bean any, value any) error {
	return p.Assign(bean, value, primitive.CategoryNone)
}

// Assign writes value into bean, coercing primitive kinds permitted by allowed.
// Coercion failures are reported as errors.ErrConversionFailed.
func (p *Property) Assign(bean any, value any, allowed primitive.CategoryEnum) error {
	v, err := p.target(bean)
	if err != nil {
		return err
	}

	return p.write(v, reflect.ValueOf(value), allowed)
}

// value returns the struct value of bean.
func (p *Property) value(bean any) (reflect.Value, error) {
	v := reflect.ValueOf(bean)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, beanerrors.NewInvalidArgumentError("bean", "nil pointer")
		}
		v = v.Elem()
	}

	if !v.IsValid() || v.Type() != p.owner {
		return reflect.Value{}, beanerrors.NewInvalidArgumentError("bean",
			fmt.Sprintf("%s is not a %s", typeName(v), p.owner))
	}

	return v, nil
}

// target returns the addressable struct value of bean.
func (p *Property) target(bean any) (reflect.Value, error) {
	v := reflect.ValueOf(bean)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, beanerrors.NewInvalidArgumentError("bean",
			fmt.Sprintf("writes need a non-nil *%s, got %s", p.owner, typeName(v)))
	}

	return p.value(bean)
}

func (p *Property) read(v reflect.Value) (reflect.Value, error) {
	if p.getter != nil {
		return p.callGetter(v), nil
	}

	if !p.fieldRead {
		return reflect.Value{}, beanerrors.NewInvalidArgumentError(p.name, "property is not readable")
	}

	f, err := v.FieldByIndexErr(p.field)
	if err != nil {
		// promoted through a nil embedded pointer
		return reflect.Zero(p.typ), nil
	}

	if !f.CanInterface() {
		return reflect.Value{}, beanerrors.NewInvalidArgumentError(p.name, "field is not accessible")
	}

	return f, nil
}

func (p *Property) callGetter(v reflect.Value) reflect.Value {
	return addressable(v).Addr().Method(p.getter.index).Call(nil)[0]
}

func (p *Property) write(v reflect.Value, value reflect.Value, allowed primitive.CategoryEnum) error {
	if !p.Writable() {
		return beanerrors.NewInvalidArgumentError(p.name, "property is not writable")
	}

	coerced, err := coerceValue(value, p.typ, allowed)
	if err != nil {
		return beanerrors.NewConversionError(p.name, valueOf(value), err)
	}

	if p.setter != nil {
		out := v.Addr().Method(p.setter.index).Call([]reflect.Value{coerced})
		if p.setter.returns && !out[0].IsNil() {
			return fmt.Errorf("set %s: %w", p.name, out[0].Interface().(error))
		}

		return nil
	}

	f, ok := fieldForWrite(v, p.field)
	if !ok {
		return beanerrors.NewInvalidArgumentError(p.name, "field is reached through an unexported nil pointer")
	}

	f.Set(coerced)

	return nil
}

// addressable returns v, or an addressable copy of it.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}

	c := reflect.New(v.Type()).Elem()
	c.Set(v)

	return c
}

// fieldForWrite walks index, allocating nil embedded pointers on the way.
func fieldForWrite(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, false
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}

	return v, v.CanSet()
}

func valueOf(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}

	return v.Interface()
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}

	return v.Type().String()
}
