package convert

import (
	"fmt"
	"reflect"
)

// Converter turns text into typed values and back.
type Converter interface {
	// Parse converts text into a value for target. target may be nil when the
	// destination type is unknown. Empty text parses to nil.
	Parse(text string, target reflect.Type) (any, error)
	// Format converts value into text.
	Format(value any) (string, error)
	// Accepts reports whether the converter handles values of type t.
	Accepts(t reflect.Type) bool
}

// Func adapts caller supplied functions to a Converter. A nil AcceptsFunc
// accepts every type; a nil ParseFunc or FormatFunc returns its input.
type Func struct {
	ParseFunc   func(text string, target reflect.Type) (any, error)
	FormatFunc  func(value any) (string, error)
	AcceptsFunc func(t reflect.Type) bool
}

func (f Func) Parse(text string, target reflect.Type) (any, error) {
	if f.ParseFunc == nil {
		return text, nil
	}

	return f.ParseFunc(text, target)
}

func (f Func) Format(value any) (string, error) {
	if f.FormatFunc == nil {
		return fmt.Sprint(value), nil
	}

	return f.FormatFunc(value)
}

func (f Func) Accepts(t reflect.Type) bool {
	if f.AcceptsFunc == nil {
		return true
	}

	return f.AcceptsFunc(t)
}

// AcceptType returns a predicate matching types equal to, or pointers to, t.
func AcceptType(t reflect.Type) func(reflect.Type) bool {
	return func(other reflect.Type) bool {
		return other != nil && deref(other) == t
	}
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

// UnsupportedValueError is returned by Format for values of a type the
// converter does not handle.
type UnsupportedValueError struct {
	Converter string
	Value     any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("%s converter cannot format %T", e.Converter, e.Value)
}
