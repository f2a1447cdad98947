package bean

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	beanerrors "beanmapper/errors"
	"beanmapper/generic"
)

// DefaultTagName is the struct tag that renames or hides properties.
const DefaultTagName = "bean"

// Registry builds and caches descriptors. It is safe for concurrent use.
type Registry struct {
	cache atomic.Pointer[sync.Map] // reflect.Type -> *Descriptor

	source       generic.Source
	logger       *zap.Logger
	tagName      string
	initializers map[reflect.Type][]*Initializer
}

// Option configures a Registry.
type Option func(*Registry) error

// WithTypeSource attaches static declarations used to resolve generic
// attribute and property types.
func WithTypeSource(src generic.Source) Option {
	return func(r *Registry) error {
		r.source = src
		return nil
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) error {
		if logger == nil {
			return beanerrors.NewInvalidArgumentError("logger", "nil logger")
		}
		r.logger = logger
		return nil
	}
}

// WithTagName replaces the "bean" struct tag.
func WithTagName(name string) Option {
	return func(r *Registry) error {
		if name == "" {
			return beanerrors.NewInvalidArgumentError("tagName", "empty tag name")
		}
		r.tagName = name
		return nil
	}
}

// WithInitializers registers constructor functions. Each must have the form
// func(...) T, func(...) *T or func(...) (*T, error) with T a struct type.
func WithInitializers(fns ...any) Option {
	return func(r *Registry) error {
		for _, fn := range fns {
			init, err := parseInitializer(fn)
			if err != nil {
				return err
			}
			r.initializers[init.owner] = append(r.initializers[init.owner], init)
		}
		return nil
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{
		logger:       zap.NewNop(),
		tagName:      DefaultTagName,
		initializers: make(map[reflect.Type][]*Initializer),
	}
	r.cache.Store(new(sync.Map))

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("bean registry: %w", err)
		}
	}

	return r, nil
}

// Descriptor returns the descriptor of t, building it on first use. Pointer
// types are dereferenced. Concurrent first lookups may build in parallel;
// exactly one result is published and returned to every caller.
func (r *Registry) Descriptor(t reflect.Type) (*Descriptor, error) {
	if t == nil {
		return nil, beanerrors.NewInvalidArgumentError("type", "nil type")
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, beanerrors.NewInvalidArgumentError("type", fmt.Sprintf("%s is not a struct", t))
	}

	cache := r.cache.Load()
	if d, ok := cache.Load(t); ok {
		return d.(*Descriptor), nil
	}

	actual, loaded := cache.LoadOrStore(t, r.build(t))
	if loaded {
		r.logger.Debug("descriptor build discarded",
			zap.Stringer("type", t),
			zap.String("reason", "lost publish race"),
		)
	}

	return actual.(*Descriptor), nil
}

// DescriptorFor returns the descriptor of the type of v, a bean or struct value.
func (r *Registry) DescriptorFor(v any) (*Descriptor, error) {
	return r.Descriptor(reflect.TypeOf(v))
}

// Reset drops every cached descriptor. Descriptors already returned stay
// valid; later lookups rebuild.
func (r *Registry) Reset() {
	r.cache.Store(new(sync.Map))
	r.logger.Debug("descriptor cache reset")
}

// DescriptorOf returns the descriptor of T from r.
func DescriptorOf[T any](r *Registry) (*Descriptor, error) {
	return r.Descriptor(reflect.TypeFor[T]())
}

var defaultRegistry = mustRegistry()

func mustRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}

	return r
}

// Default returns the process-wide registry behind the package-level helpers.
func Default() *Registry { return defaultRegistry }

// For returns the descriptor of t from the default registry.
func For(t reflect.Type) (*Descriptor, error) { return defaultRegistry.Descriptor(t) }

// Of returns the descriptor of T from the default registry.
func Of[T any]() (*Descriptor, error) { return DescriptorOf[T](defaultRegistry) }

// Reset drops the default registry's cache.
func Reset() { defaultRegistry.Reset() }
