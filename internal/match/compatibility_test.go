package match

import (
	"fmt"
	"reflect"
	"testing"
)

type label string

func TestTypeCompatibility_String(t *testing.T) {
	tests := []struct {
		compat   TypeCompatibility
		expected string
	}{
		{TypeIdentical, "identical"},
		{TypeAssignable, "assignable"},
		{TypeConvertible, "convertible"},
		{TypeNeedsTransform, "needs_transform"},
		{TypeIncompatible, "incompatible"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.compat.String(); got != tt.expected {
				t.Errorf("TypeCompatibility.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTypeCompatibility_Score(t *testing.T) {
	if TypeIncompatible.Score() >= TypeNeedsTransform.Score() {
		t.Error("TypeIncompatible should have lower score than TypeNeedsTransform")
	}
	if TypeNeedsTransform.Score() >= TypeConvertible.Score() {
		t.Error("TypeNeedsTransform should have lower score than TypeConvertible")
	}
	if TypeConvertible.Score() >= TypeAssignable.Score() {
		t.Error("TypeConvertible should have lower score than TypeAssignable")
	}
	if TypeAssignable.Score() >= TypeIdentical.Score() {
		t.Error("TypeAssignable should have lower score than TypeIdentical")
	}
}

func TestScoreTypeCompatibility(t *testing.T) {
	intType := reflect.TypeFor[int]()
	int64Type := reflect.TypeFor[int64]()
	stringType := reflect.TypeFor[string]()

	tests := []struct {
		name     string
		source   reflect.Type
		target   reflect.Type
		expected TypeCompatibility
	}{
		{"identical int", intType, intType, TypeIdentical},
		{"int to int64 convertible", intType, int64Type, TypeConvertible},
		{"string to int incompatible", stringType, intType, TypeIncompatible},
		{"int to string not a numeric conversion", intType, stringType, TypeIncompatible},
		{"string to named string", stringType, reflect.TypeFor[label](), TypeIncompatible},
		{"int to any", intType, reflect.TypeFor[any](), TypeAssignable},
		{"*int to int", reflect.TypeFor[*int](), intType, TypeNeedsTransform},
		{"int to *int", intType, reflect.TypeFor[*int](), TypeNeedsTransform},
		{"**int to *int", reflect.TypeFor[**int](), reflect.TypeFor[*int](), TypeNeedsTransform},
		{"**int to int", reflect.TypeFor[**int](), intType, TypeIncompatible},
		{"nil source", nil, intType, TypeIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreTypeCompatibility(tt.source, tt.target)
			if result.Compatibility != tt.expected {
				t.Errorf("ScoreTypeCompatibility() = %v, want %v (reason: %s)",
					result.Compatibility, tt.expected, result.Reason)
			}
		})
	}
}

func TestArgumentDistance(t *testing.T) {
	stringer := reflect.TypeFor[fmt.Stringer]()

	tests := []struct {
		name     string
		arg      reflect.Value
		param    reflect.Type
		distance int
		ok       bool
	}{
		{"exact", reflect.ValueOf("x"), reflect.TypeFor[string](), DistanceExact, true},
		{"nil to pointer", reflect.Value{}, reflect.TypeFor[*int](), DistanceNil, true},
		{"nil to any", reflect.Value{}, reflect.TypeFor[any](), DistanceAny, true},
		{"nil to int", reflect.Value{}, reflect.TypeFor[int](), 0, false},
		{"value to stringer", reflect.ValueOf(reflect.TypeFor[int]()), stringer, DistanceInterface, true},
		{"value to any", reflect.ValueOf(1), reflect.TypeFor[any](), DistanceAny, true},
		{"numeric widening", reflect.ValueOf(int32(1)), reflect.TypeFor[int64](), DistanceConvertible, true},
		{"unrelated", reflect.ValueOf(true), reflect.TypeFor[string](), 0, false},
		{"narrowing in range", reflect.ValueOf(100), reflect.TypeFor[int8](), DistanceConvertible, true},
		{"narrowing overflow", reflect.ValueOf(300), reflect.TypeFor[int8](), 0, false},
		{"negative to unsigned", reflect.ValueOf(-1), reflect.TypeFor[uint8](), 0, false},
		{"fraction to int", reflect.ValueOf(3.9), reflect.TypeFor[int8](), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ArgumentDistance(tt.arg, tt.param)
			if ok != tt.ok || d != tt.distance {
				t.Errorf("ArgumentDistance() = (%d, %v), want (%d, %v)", d, ok, tt.distance, tt.ok)
			}
		})
	}
}

func TestFitsNumber(t *testing.T) {
	tests := []struct {
		name  string
		value any
		to    reflect.Type
		fits  bool
	}{
		{"int to int8 max", 127, reflect.TypeFor[int8](), true},
		{"int to int8 overflow", 128, reflect.TypeFor[int8](), false},
		{"int to int8 underflow", -129, reflect.TypeFor[int8](), false},
		{"int to uint", 5, reflect.TypeFor[uint](), true},
		{"negative int to uint16", -5, reflect.TypeFor[uint16](), false},
		{"uint to uint8 overflow", uint(256), reflect.TypeFor[uint8](), false},
		{"uint64 max to int64", uint64(1 << 63), reflect.TypeFor[int64](), false},
		{"uint8 to int", uint8(255), reflect.TypeFor[int](), true},
		{"whole float to int", 3.0, reflect.TypeFor[int](), true},
		{"fractional float to int", 3.9, reflect.TypeFor[int](), false},
		{"float to int8 overflow", 1000.0, reflect.TypeFor[int8](), false},
		{"negative float to uint", -1.0, reflect.TypeFor[uint](), false},
		{"huge float to int64", 1e19, reflect.TypeFor[int64](), false},
		{"float64 to float32 overflow", 1e300, reflect.TypeFor[float32](), false},
		{"float64 to float32", 1.5, reflect.TypeFor[float32](), true},
		{"int to float64", 1 << 40, reflect.TypeFor[float64](), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitsNumber(reflect.ValueOf(tt.value), tt.to); got != tt.fits {
				t.Errorf("FitsNumber(%v, %s) = %v, want %v", tt.value, tt.to, got, tt.fits)
			}
		})
	}
}
