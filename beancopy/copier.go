package beancopy

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"beanmapper/bean"
	beanerrors "beanmapper/errors"
	"beanmapper/primitive"
)

// Copier runs copies against one descriptor registry. It holds no per-copy
// state and is safe for concurrent use.
type Copier struct {
	registry *bean.Registry
	logger   *zap.Logger
}

// Option configures a Copier.
type Option func(*Copier) error

// WithRegistry sets the registry descriptors are taken from. The default is
// bean.Default().
func WithRegistry(r *bean.Registry) Option {
	return func(c *Copier) error {
		if r == nil {
			return beanerrors.NewInvalidArgumentError("registry", "nil registry")
		}
		c.registry = r
		return nil
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Copier) error {
		if logger == nil {
			return beanerrors.NewInvalidArgumentError("logger", "nil logger")
		}
		c.logger = logger
		return nil
	}
}

// New creates a Copier.
func New(opts ...Option) (*Copier, error) {
	c := &Copier{
		registry: bean.Default(),
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("bean copier: %w", err)
		}
	}

	return c, nil
}

// BeanToBean copies the readable properties of src into the writable
// properties of dst with the same name after prefix trimming. src is a
// struct or a pointer to one, dst a non-nil pointer to a struct. A nil
// policy copies everything.
func (c *Copier) BeanToBean(src, dst any, p *Policy) error {
	from, err := c.beanSource(src)
	if err != nil {
		return err
	}

	to, err := c.beanSink(dst)
	if err != nil {
		return err
	}

	return c.transfer(from, to, orDefault(p), (*Policy).TrimPrefix)
}

// BeanToMap copies the readable properties of src into dst under their map
// names.
func (c *Copier) BeanToMap(src any, dst Map, p *Policy) error {
	from, err := c.beanSource(src)
	if err != nil {
		return err
	}

	to, err := mapSinkOf(dst)
	if err != nil {
		return err
	}

	return c.transfer(from, to, orDefault(p), (*Policy).ToMapName)
}

// MapToBean copies the entries of src, in src's key order, into the
// writable properties of dst named by their bean names.
func (c *Copier) MapToBean(src Map, dst any, p *Policy) error {
	from, err := mapSourceOf(src)
	if err != nil {
		return err
	}

	to, err := c.beanSink(dst)
	if err != nil {
		return err
	}

	return c.transfer(from, to, orDefault(p), (*Policy).ToBeanName)
}

// MapToMap copies the entries of src into dst after prefix trimming.
func (c *Copier) MapToMap(src, dst Map, p *Policy) error {
	from, err := mapSourceOf(src)
	if err != nil {
		return err
	}

	to, err := mapSinkOf(dst)
	if err != nil {
		return err
	}

	return c.transfer(from, to, orDefault(p), (*Policy).TrimPrefix)
}

// BeanToNewBean creates a dstType through its no-argument initializer and
// copies src into it. The result is a pointer to dstType.
func (c *Copier) BeanToNewBean(src any, dstType reflect.Type, p *Policy) (any, error) {
	dst, err := c.newBean(dstType)
	if err != nil {
		return nil, err
	}

	if err := c.BeanToBean(src, dst, p); err != nil {
		return nil, err
	}

	return dst, nil
}

// BeanToNewMap copies src into a new insertion ordered map.
func (c *Copier) BeanToNewMap(src any, p *Policy) (*OrderedMap, error) {
	dst := NewOrderedMap()
	if err := c.BeanToMap(src, dst, p); err != nil {
		return nil, err
	}

	return dst, nil
}

// MapToNewBean creates a dstType through its no-argument initializer and
// copies src into it. The result is a pointer to dstType.
func (c *Copier) MapToNewBean(src Map, dstType reflect.Type, p *Policy) (any, error) {
	dst, err := c.newBean(dstType)
	if err != nil {
		return nil, err
	}

	if err := c.MapToBean(src, dst, p); err != nil {
		return nil, err
	}

	return dst, nil
}

// MapToNewMap copies src into a new insertion ordered map.
func (c *Copier) MapToNewMap(src Map, p *Policy) (*OrderedMap, error) {
	dst := NewOrderedMap()
	if err := c.MapToMap(src, dst, p); err != nil {
		return nil, err
	}

	return dst, nil
}

func (c *Copier) newBean(t reflect.Type) (any, error) {
	d, err := c.registry.Descriptor(t)
	if err != nil {
		return nil, err
	}

	return d.New()
}

// transfer is the traversal behind every direction: select by source name,
// rename, require a destination slot, suppress, convert, write.
func (c *Copier) transfer(from source, to sink, p *Policy, rename func(*Policy, string) string) error {
	if err := p.Err(); err != nil {
		return fmt.Errorf("copy policy: %w", err)
	}

	return from.each(func(name string, read func() (any, error)) error {
		if !p.IsTargetProperty(name) {
			c.skip(name, "filtered")
			return nil
		}

		destName := rename(p, name)

		destType, ok := to.slot(destName)
		if !ok {
			c.skip(name, "no destination")
			return nil
		}

		value, err := read()
		if err != nil {
			return err
		}

		if !p.IsTargetValue(value) {
			c.skip(name, "value suppressed")
			return nil
		}

		converted, err := p.ConvertValue(value, destName, destType)
		if err != nil {
			return err
		}

		return to.put(destName, converted, p.coercions)
	})
}

func (c *Copier) skip(name, reason string) {
	c.logger.Debug("property skipped", zap.String("property", name), zap.String("reason", reason))
}

func orDefault(p *Policy) *Policy {
	if p == nil {
		return NewPolicy()
	}

	return p
}

// source yields named values in iteration order. read is called at most once
// per name and only for names the traversal keeps.
type source interface {
	each(fn func(name string, read func() (any, error)) error) error
}

// sink accepts named values. slot reports the destination type of name, nil
// when untyped, and whether name can be written at all.
type sink interface {
	slot(name string) (reflect.Type, bool)
	put(name string, value any, allowed primitive.CategoryEnum) error
}

type beanSource struct {
	bean any
	desc *bean.Descriptor
}

func (c *Copier) beanSource(src any) (*beanSource, error) {
	v := reflect.ValueOf(src)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return nil, beanerrors.NewInvalidArgumentError("src", "nil source bean")
	}

	d, err := c.registry.DescriptorFor(src)
	if err != nil {
		return nil, err
	}

	return &beanSource{bean: src, desc: d}, nil
}

func (s *beanSource) each(fn func(string, func() (any, error)) error) error {
	for i := range s.desc.PropertyCount() {
		prop := s.desc.PropertyAt(i)
		if !prop.Readable() {
			continue
		}

		if err := fn(prop.Name(), func() (any, error) { return prop.Get(s.bean) }); err != nil {
			return err
		}
	}

	return nil
}

type mapSource struct{ m Map }

func mapSourceOf(m Map) (*mapSource, error) {
	if isNull(m) {
		return nil, beanerrors.NewInvalidArgumentError("src", "nil source map")
	}

	return &mapSource{m: m}, nil
}

func (s *mapSource) each(fn func(string, func() (any, error)) error) error {
	for _, key := range s.m.Keys() {
		read := func() (any, error) {
			v, _ := s.m.Get(key)
			return v, nil
		}

		if err := fn(key, read); err != nil {
			return err
		}
	}

	return nil
}

type beanSink struct {
	bean any
	desc *bean.Descriptor
}

func (c *Copier) beanSink(dst any) (*beanSink, error) {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, beanerrors.NewInvalidArgumentError("dst", "destination must be a non-nil pointer to a struct")
	}

	d, err := c.registry.DescriptorFor(dst)
	if err != nil {
		return nil, err
	}

	return &beanSink{bean: dst, desc: d}, nil
}

func (s *beanSink) slot(name string) (reflect.Type, bool) {
	prop, ok := s.desc.Property(name)
	if !ok || !prop.Writable() {
		return nil, false
	}

	return prop.Type(), true
}

func (s *beanSink) put(name string, value any, allowed primitive.CategoryEnum) error {
	prop, _ := s.desc.Property(name)
	return prop.Assign(s.bean, value, allowed)
}

type mapSink struct{ m Map }

func mapSinkOf(m Map) (*mapSink, error) {
	if isNull(m) {
		return nil, beanerrors.NewInvalidArgumentError("dst", "nil destination map")
	}

	return &mapSink{m: m}, nil
}

func (s *mapSink) slot(string) (reflect.Type, bool) { return nil, true }

func (s *mapSink) put(name string, value any, _ primitive.CategoryEnum) error {
	s.m.Set(name, value)
	return nil
}
