package primitive_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanmapper/primitive"
)

type Color string

func (c Color) IsValid() bool { return c == "red" || c == "green" }

type Level int

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		dst     reflect.Type
		allowed primitive.CategoryEnum
		want    any
	}{
		{"int to int64", 3, reflect.TypeFor[int64](), primitive.CategorySafeNumber, int64(3)},
		{"int64 to int8", int64(100), reflect.TypeFor[int8](), primitive.CategoryUnsafeNumber, int8(100)},
		{"float to int truncates", 3.9, reflect.TypeFor[int](), primitive.CategoryUnsafeNumber, 3},
		{"text to int", "42", reflect.TypeFor[int](), primitive.CategoryTextNumber, 42},
		{"text to float", " 1.5 ", reflect.TypeFor[float64](), primitive.CategoryTextNumber, 1.5},
		{"int to text", 7, reflect.TypeFor[string](), primitive.CategoryTextNumber, "7"},
		{"yes to bool", "yes", reflect.TypeFor[bool](), primitive.CategoryTextualBool, true},
		{"off to bool", "off", reflect.TypeFor[bool](), primitive.CategoryTextualBool, false},
		{"bool to text", true, reflect.TypeFor[string](), primitive.CategoryTextualBool, "true"},
		{"int to bool", 1, reflect.TypeFor[bool](), primitive.CategoryNumericBool, true},
		{"text to duration", "2h45m", reflect.TypeFor[time.Duration](), primitive.CategoryDuration, 2*time.Hour + 45*time.Minute},
		{"seconds to duration", 1.5, reflect.TypeFor[time.Duration](), primitive.CategorySeconds, 1500 * time.Millisecond},
		{"unix to time", int64(0), reflect.TypeFor[time.Time](), primitive.CategoryTimestamp, time.Unix(0, 0).UTC()},
		{"text to enum", "red", reflect.TypeFor[Color](), primitive.CategoryEnumString, Color("red")},
		{"enum to text", Color("green"), reflect.TypeFor[string](), primitive.CategoryEnumString, "green"},
		{"text to int enum", "2", reflect.TypeFor[Level](), primitive.CategoryEnumString, Level(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := primitive.Coerce(reflect.ValueOf(tt.value), tt.dst, tt.allowed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Interface())
		})
	}
}

func TestCoerce_Errors(t *testing.T) {
	t.Run("category not allowed", func(t *testing.T) {
		_, err := primitive.Coerce(reflect.ValueOf("42"), reflect.TypeFor[int](), primitive.CategorySafeNumber)
		assert.ErrorIs(t, err, primitive.ErrNotCoercible)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := primitive.Coerce(reflect.ValueOf(300), reflect.TypeFor[int8](), primitive.CategoryUnsafeNumber)
		assert.ErrorIs(t, err, primitive.ErrOverflow)
	})

	t.Run("malformed text", func(t *testing.T) {
		_, err := primitive.Coerce(reflect.ValueOf("abc"), reflect.TypeFor[float64](), primitive.CategoryTextNumber)
		assert.Error(t, err)
	})

	t.Run("invalid enum member", func(t *testing.T) {
		_, err := primitive.Coerce(reflect.ValueOf("blue"), reflect.TypeFor[Color](), primitive.CategoryEnumString)
		assert.ErrorIs(t, err, primitive.ErrInvalidEnum)
	})

	t.Run("struct is never coercible", func(t *testing.T) {
		_, err := primitive.Coerce(reflect.ValueOf(struct{}{}), reflect.TypeFor[string](), primitive.CategoryAll)
		assert.ErrorIs(t, err, primitive.ErrNotCoercible)
	})
}

func TestCoerce_ZeroValue(t *testing.T) {
	got, err := primitive.Coerce(reflect.Value{}, reflect.TypeFor[int](), primitive.CategoryNone)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Interface())
}
