package bean

import (
	"fmt"
	"reflect"
	"slices"

	beanerrors "beanmapper/errors"
	"beanmapper/generic"
	"beanmapper/internal/match"
)

// Descriptor is the immutable metadata of one struct type.
type Descriptor struct {
	typ     reflect.Type
	binding generic.Binding

	properties []*Property
	propIndex  map[string]int

	attributes []*Attribute
	attrIndex  map[string]int

	initializers []*Initializer

	methods     map[string][]*Method
	methodNames []string
}

// Type returns the struct type described.
func (d *Descriptor) Type() reflect.Type { return d.typ }

// Binding returns the generic binding of the type's embedding chain. It is
// empty for non-generic types and for types the registry had no static
// information about.
func (d *Descriptor) Binding() generic.Binding { return d.binding }

// HasProperty reports whether a property called name exists.
func (d *Descriptor) HasProperty(name string) bool {
	_, ok := d.propIndex[name]
	return ok
}

// Property returns the property called name.
func (d *Descriptor) Property(name string) (*Property, bool) {
	i, ok := d.propIndex[name]
	if !ok {
		return nil, false
	}

	return d.properties[i], true
}

// PropertyAt returns the i-th property. It panics if i is out of range.
func (d *Descriptor) PropertyAt(i int) *Property { return d.properties[i] }

// PropertyCount returns the number of properties.
func (d *Descriptor) PropertyCount() int { return len(d.properties) }

// Properties returns the properties in order.
func (d *Descriptor) Properties() []*Property { return slices.Clone(d.properties) }

// PropertyNames returns the property names in order.
func (d *Descriptor) PropertyNames() []string {
	names := make([]string, len(d.properties))
	for i, p := range d.properties {
		names[i] = p.name
	}

	return names
}

// HasAttribute reports whether a visible struct field called name exists.
func (d *Descriptor) HasAttribute(name string) bool {
	_, ok := d.attrIndex[name]
	return ok
}

// Attribute returns the visible struct field called name.
func (d *Descriptor) Attribute(name string) (*Attribute, bool) {
	i, ok := d.attrIndex[name]
	if !ok {
		return nil, false
	}

	return d.attributes[i], true
}

// AttributeAt returns the i-th attribute. It panics if i is out of range.
func (d *Descriptor) AttributeAt(i int) *Attribute { return d.attributes[i] }

// AttributeCount returns the number of attributes.
func (d *Descriptor) AttributeCount() int { return len(d.attributes) }

// Attributes returns the attributes in reflect.VisibleFields order.
func (d *Descriptor) Attributes() []*Attribute { return slices.Clone(d.attributes) }

// InitializerAt returns the i-th initializer; index 0 is the zero-value
// initializer. It panics if i is out of range.
func (d *Descriptor) InitializerAt(i int) *Initializer { return d.initializers[i] }

// InitializerCount returns the number of initializers.
func (d *Descriptor) InitializerCount() int { return len(d.initializers) }

// Initializers returns the initializers in registration order.
func (d *Descriptor) Initializers() []*Initializer { return slices.Clone(d.initializers) }

// HasMethod reports whether *T has an exported method called name.
func (d *Descriptor) HasMethod(name string) bool {
	_, ok := d.methods[name]
	return ok
}

// Methods returns the methods called name.
func (d *Descriptor) Methods(name string) []*Method { return slices.Clone(d.methods[name]) }

// MethodNames returns the method names in ascending order.
func (d *Descriptor) MethodNames() []string { return slices.Clone(d.methodNames) }

// MethodCount returns the number of distinct method names.
func (d *Descriptor) MethodCount() int { return len(d.methodNames) }

// SelectInitializer picks the initializer that fits args best.
func (d *Descriptor) SelectInitializer(args ...any) (*Initializer, error) {
	sigs := make([]match.Signature, len(d.initializers))
	for i, init := range d.initializers {
		sigs[i] = init.signature()
	}

	idx, err := match.BestFit(d.typ.String()+" initializer", sigs, argValues(args))
	if err != nil {
		return nil, err
	}

	return d.initializers[idx], nil
}

// SelectMethod picks the method called name that fits args best.
func (d *Descriptor) SelectMethod(name string, args ...any) (*Method, error) {
	group, ok := d.methods[name]
	if !ok {
		return nil, beanerrors.NewUnknownKeyError(d.typ.String(), name, match.Suggest(name, d.methodNames))
	}

	sigs := make([]match.Signature, len(group))
	for i, m := range group {
		sigs[i] = m.signature()
	}

	idx, err := match.BestFit(d.typ.String()+"."+name, sigs, argValues(args))
	if err != nil {
		return nil, err
	}

	return group[idx], nil
}

// New creates a bean with the initializer that fits args best and returns
// a pointer to it.
func (d *Descriptor) New(args ...any) (any, error) {
	init, err := d.SelectInitializer(args...)
	if err != nil {
		return nil, err
	}

	return init.New(args...)
}

// Invoke calls the method called name on recv with the best-fitting signature.
func (d *Descriptor) Invoke(recv any, name string, args ...any) ([]any, error) {
	m, err := d.SelectMethod(name, args...)
	if err != nil {
		return nil, err
	}

	return m.Call(recv, args...)
}

// String returns the type name and its property list.
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s%v", d.typ, d.PropertyNames())
}
