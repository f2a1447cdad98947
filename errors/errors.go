package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrInvalidArgument is returned when a required parameter is nil, empty or unsupported
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownKey is returned by strict views when a key does not exist
	ErrUnknownKey = errors.New("unknown key")

	// ErrConversionFailed is returned when a converter or a write coercion fails
	ErrConversionFailed = errors.New("conversion failed")

	// ErrAmbiguousMatch is returned when best-fit selection finds equally specific candidates
	ErrAmbiguousMatch = errors.New("ambiguous match")

	// ErrNoMatch is returned when best-fit selection finds no applicable candidate
	ErrNoMatch = errors.New("no matching candidate")
)

// InvalidArgumentError reports a rejected parameter
type InvalidArgumentError struct {
	Param   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// UnknownKeyError reports a lookup of a key that is absent from a strict view
type UnknownKeyError struct {
	Type       string
	Key        string
	Suggestion string
}

func (e *UnknownKeyError) Error() string {
	msg := fmt.Sprintf("%s has no property %q", e.Type, e.Key)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}

// ConversionError wraps a converter failure with the destination property
// name and the value that could not be converted.
type ConversionError struct {
	Name  string
	Value any
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed for property %q (value %#v): %v", e.Name, e.Value, e.Err)
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversionFailed
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// AmbiguousMatchError reports equally specific best-fit candidates
type AmbiguousMatchError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous call to %s: candidates %s", e.Name, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousMatchError) Is(target error) bool {
	return target == ErrAmbiguousMatch
}

// NoMatchError reports that no candidate accepts the supplied arguments
type NoMatchError struct {
	Name string
	Args []string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no %s accepts arguments (%s)", e.Name, strings.Join(e.Args, ", "))
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(param, message string) error {
	return &InvalidArgumentError{Param: param, Message: message}
}

// NewUnknownKeyError creates a new UnknownKeyError
func NewUnknownKeyError(typeName, key, suggestion string) error {
	return &UnknownKeyError{Type: typeName, Key: key, Suggestion: suggestion}
}

// NewConversionError creates a new ConversionError
func NewConversionError(name string, value any, cause error) error {
	return &ConversionError{Name: name, Value: value, Err: cause}
}

// NewAmbiguousMatchError creates a new AmbiguousMatchError
func NewAmbiguousMatchError(name string, candidates ...string) error {
	return &AmbiguousMatchError{Name: name, Candidates: candidates}
}

// NewNoMatchError creates a new NoMatchError
func NewNoMatchError(name string, args ...string) error {
	return &NoMatchError{Name: name, Args: args}
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsUnknownKey checks if an error is an unknown key error
func IsUnknownKey(err error) bool {
	return errors.Is(err, ErrUnknownKey)
}

// IsConversionFailed checks if an error is a conversion error
func IsConversionFailed(err error) bool {
	return errors.Is(err, ErrConversionFailed)
}

// IsAmbiguousMatch checks if an error is an ambiguous match error
func IsAmbiguousMatch(err error) bool {
	return errors.Is(err, ErrAmbiguousMatch)
}

// IsNoMatch checks if an error is a no match error
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}
