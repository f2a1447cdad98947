package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name    string
		from    KindEnum
		to      KindEnum
		allowed CategoryEnum
		want    bool
	}{
		{"widening int8 to int64", KindInt8, KindInt64, CategorySafeNumber, true},
		{"narrowing needs unsafe", KindInt64, KindInt8, CategorySafeNumber, false},
		{"narrowing with unsafe", KindInt64, KindInt8, CategoryUnsafeNumber, true},
		{"text to number", KindString, KindFloat64, CategoryTextNumber, true},
		{"text to number without category", KindString, KindFloat64, CategorySafeNumber, false},
		{"textual bool", KindString, KindBool, CategoryTextualBool, true},
		{"numeric bool", KindInt, KindBool, CategoryNumericBool, true},
		{"float to bool never", KindFloat64, KindBool, CategoryAll, false},
		{"unix timestamp", KindInt64, KindTime, CategoryTimestamp, true},
		{"uint64 nanoseconds excluded", KindUint64, KindDuration, CategoryNanoseconds, false},
		{"enum to enum", KindPrimitiveEnum, KindPrimitiveEnum, CategoryEnumString, true},
		{"nothing allowed", KindInt, KindInt64, CategoryNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.from, tt.to, tt.allowed))
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("text_number")
	require.NoError(t, err)
	assert.Equal(t, CategoryTextNumber, c)

	c, err = ParseCategory(" All ")
	require.NoError(t, err)
	assert.Equal(t, CategoryAll, c)

	c, err = ParseCategory("default")
	require.NoError(t, err)
	assert.Equal(t, CategoryDefault, c)

	_, err = ParseCategory("bogus")
	assert.ErrorContains(t, err, "bogus")

	for _, name := range CategoryNames() {
		_, err := ParseCategory(name)
		assert.NoError(t, err, name)
	}
}

func TestCategoryEnum_String(t *testing.T) {
	assert.Equal(t, "none", CategoryNone.String())
	assert.Equal(t, "safe_number|textual_bool", (CategorySafeNumber | CategoryTextualBool).String())
}
