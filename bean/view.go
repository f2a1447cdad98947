package bean

import (
	"reflect"

	beanerrors "beanmapper/errors"
	"beanmapper/internal/match"
	"beanmapper/primitive"
)

// View is a strict map-like view of one bean: reading a key that is not a
// readable property fails with errors.ErrUnknownKey instead of yielding nil.
type View struct {
	bean any
	desc *Descriptor
}

// NewView wraps bean, a non-nil pointer to a struct. A nil registry means Default().
func NewView(r *Registry, bean any) (*View, error) {
	if r == nil {
		r = defaultRegistry
	}

	v := reflect.ValueOf(bean)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, beanerrors.NewInvalidArgumentError("bean", "view needs a non-nil pointer to a struct")
	}

	d, err := r.Descriptor(v.Type())
	if err != nil {
		return nil, err
	}

	return &View{bean: bean, desc: d}, nil
}

// Descriptor returns the descriptor of the viewed bean.
func (v *View) Descriptor() *Descriptor { return v.desc }

// Get returns the value of the readable property key.
func (v *View) Get(key string) (any, error) {
	p, ok := v.desc.Property(key)
	if !ok || !p.Readable() {
		return nil, v.unknown(key)
	}

	return p.Get(v.bean)
}

// Put writes value to the writable property key with default coercions.
func (v *View) Put(key string, value any) error {
	p, ok := v.desc.Property(key)
	if !ok || !p.Writable() {
		return v.unknown(key)
	}

	return p.Assign(v.bean, value, primitive.CategoryDefault)
}

// Has reports whether key is a readable property.
func (v *View) Has(key string) bool {
	p, ok := v.desc.Property(key)
	return ok && p.Readable()
}

// Keys returns the readable property names in property order.
func (v *View) Keys() []string {
	keys := make([]string, 0, v.desc.PropertyCount())
	for _, p := range v.desc.properties {
		if p.Readable() {
			keys = append(keys, p.name)
		}
	}

	return keys
}

// Len returns the number of readable properties.
func (v *View) Len() int { return len(v.Keys()) }

func (v *View) unknown(key string) error {
	return beanerrors.NewUnknownKeyError(v.desc.typ.String(), key, match.Suggest(key, v.Keys()))
}
