package match

import (
	"math"
	"reflect"
)

// TypeCompatibility represents the level of compatibility between two types.
type TypeCompatibility int

const (
	// TypeIncompatible means the types cannot be converted.
	TypeIncompatible TypeCompatibility = iota
	// TypeNeedsTransform means a pointer must be taken or dereferenced first.
	TypeNeedsTransform
	// TypeConvertible means a numeric conversion is required.
	TypeConvertible
	// TypeAssignable means the source type can be directly assigned to the target.
	TypeAssignable
	// TypeIdentical means the types are exactly the same.
	TypeIdentical
)

const (
	VerdictIdentical      = "identical"
	VerdictAssignable     = "assignable"
	VerdictConvertible    = "convertible"
	VerdictNeedsTransform = "needs_transform"
	VerdictIncompatible   = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c TypeCompatibility) String() string {
	switch c {
	case TypeIdentical:
		return VerdictIdentical
	case TypeAssignable:
		return VerdictAssignable
	case TypeConvertible:
		return VerdictConvertible
	case TypeNeedsTransform:
		return VerdictNeedsTransform
	case TypeIncompatible:
		return VerdictIncompatible
	default:
		return "unknown"
	}
}

// Score returns a numeric score for sorting (higher is better).
func (c TypeCompatibility) Score() int {
	return int(c)
}

// TypeCompatibilityResult contains detailed information about type compatibility.
type TypeCompatibilityResult struct {
	Compatibility TypeCompatibility
	Reason        string
	SourceType    string
	TargetType    string
}

// ScoreTypeCompatibility determines the compatibility between a source and target type.
func ScoreTypeCompatibility(source, target reflect.Type) TypeCompatibilityResult {
	result := TypeCompatibilityResult{
		SourceType: typeString(source),
		TargetType: typeString(target),
	}

	switch {
	case source == nil || target == nil:
		result.Compatibility, result.Reason = TypeIncompatible, "type information unavailable"
	case source == target:
		result.Compatibility, result.Reason = TypeIdentical, "types are identical"
	case source.AssignableTo(target):
		result.Compatibility, result.Reason = TypeAssignable, "source is assignable to target"
	case IsNumericType(source) && IsNumericType(target):
		result.Compatibility, result.Reason = TypeConvertible, "numeric conversion"
	case source.Kind() == reflect.Pointer && source.Elem().AssignableTo(target):
		result.Compatibility, result.Reason = TypeNeedsTransform, "requires pointer dereference"
	case target.Kind() == reflect.Pointer && source.AssignableTo(target.Elem()):
		result.Compatibility, result.Reason = TypeNeedsTransform, "requires taking address"
	default:
		result.Compatibility, result.Reason = TypeIncompatible, "types are not compatible"
	}

	return result
}

// Argument distances, lower is more specific.
const (
	DistanceExact       = 0
	DistanceNil         = 1
	DistanceAssignable  = 1
	DistanceInterface   = 2
	DistanceAny         = 3
	DistanceConvertible = 4
)

// ArgumentDistance reports how far an argument value is from a parameter
// type. An invalid value stands for an untyped nil argument. ok is false when
// the argument cannot be passed at all.
func ArgumentDistance(arg reflect.Value, param reflect.Type) (distance int, ok bool) {
	if !arg.IsValid() {
		if !isNilable(param) {
			return 0, false
		}

		if param.Kind() == reflect.Interface {
			return interfaceDistance(param), true
		}

		return DistanceNil, true
	}

	compat := ScoreTypeCompatibility(arg.Type(), param)
	switch compat.Compatibility {
	case TypeIdentical:
		return DistanceExact, true
	case TypeAssignable:
		if param.Kind() == reflect.Interface {
			return interfaceDistance(param), true
		}
		return DistanceAssignable, true
	case TypeConvertible:
		if !FitsNumber(arg, param) {
			return 0, false
		}
		return DistanceConvertible, true
	default:
		return 0, false
	}
}

// FitsNumber reports whether the numeric value v converts to the numeric type
// t without overflow, sign loss or truncation of a fraction.
func FitsNumber(v reflect.Value, t reflect.Type) bool {
	out := reflect.Zero(t)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		switch {
		case isInt(t):
			return !out.OverflowInt(n)
		case isUint(t):
			return n >= 0 && !out.OverflowUint(uint64(n))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := v.Uint()
		switch {
		case isInt(t):
			return n <= math.MaxInt64 && !out.OverflowInt(int64(n))
		case isUint(t):
			return !out.OverflowUint(n)
		}
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		switch {
		case isInt(t):
			return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 && !out.OverflowInt(int64(f))
		case isUint(t):
			return f == math.Trunc(f) && f >= 0 && f < math.MaxUint64 && !out.OverflowUint(uint64(f))
		case t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64:
			return math.IsNaN(f) || math.IsInf(f, 0) || !out.OverflowFloat(f)
		}
	}

	return true
}

func isInt(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}

	return false
}

func isUint(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}

	return false
}

func interfaceDistance(param reflect.Type) int {
	if param.NumMethod() == 0 {
		return DistanceAny
	}

	return DistanceInterface
}

// IsNumericType returns true if the type has an integer or floating point kind.
func IsNumericType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}

	return false
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "nil"
	}

	return t.String()
}
