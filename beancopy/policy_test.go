package beancopy_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanmapper/beancopy"
	"beanmapper/convert"
	beanerrors "beanmapper/errors"
)

func TestPolicy_IsTargetProperty(t *testing.T) {
	tests := []struct {
		name   string
		policy *beancopy.Policy
		accept []string
		reject []string
	}{
		{
			name:   "permissive",
			policy: beancopy.NewPolicy(),
			accept: []string{"x", "y", "z"},
		},
		{
			name:   "include",
			policy: beancopy.NewPolicy().Include("x", "y"),
			accept: []string{"x", "y"},
			reject: []string{"z"},
		},
		{
			name:   "exclude",
			policy: beancopy.NewPolicy().Exclude("y"),
			accept: []string{"x", "z"},
			reject: []string{"y"},
		},
		{
			name:   "exclude wins on overlap",
			policy: beancopy.NewPolicy().Include("x", "y").Exclude("y"),
			accept: []string{"x"},
			reject: []string{"y", "z"},
		},
		{
			name:   "exclude outside include is ignored",
			policy: beancopy.NewPolicy().Include("x").Exclude("z"),
			accept: []string{"x"},
			reject: []string{"y", "z"},
		},
		{
			name:   "prefix",
			policy: beancopy.NewPolicy().Prefix("ship$"),
			accept: []string{"ship$city", "ship$zip"},
			reject: []string{"city", "bill$city"},
		},
		{
			name:   "prefix and include",
			policy: beancopy.NewPolicy().Prefix("ship$").Include("ship$city", "zip"),
			accept: []string{"ship$city"},
			reject: []string{"zip", "ship$zip"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, name := range tt.accept {
				assert.True(t, tt.policy.IsTargetProperty(name), name)
			}
			for _, name := range tt.reject {
				assert.False(t, tt.policy.IsTargetProperty(name), name)
			}
		})
	}
}

func TestPolicy_IsTargetValue(t *testing.T) {
	var nilPtr *string

	permissive := beancopy.NewPolicy()
	assert.True(t, permissive.IsTargetValue(nil))
	assert.True(t, permissive.IsTargetValue("   "))

	noNull := beancopy.NewPolicy().ExcludeNull()
	assert.False(t, noNull.IsTargetValue(nil))
	assert.False(t, noNull.IsTargetValue(nilPtr))
	assert.False(t, noNull.IsTargetValue([]string(nil)))
	assert.True(t, noNull.IsTargetValue(""))
	assert.True(t, noNull.IsTargetValue(0))

	noBlank := beancopy.NewPolicy().ExcludeBlank()
	assert.False(t, noBlank.IsTargetValue("   "))
	assert.False(t, noBlank.IsTargetValue(""))
	assert.False(t, noBlank.IsTargetValue("\t\n"))
	assert.True(t, noBlank.IsTargetValue(" a "))
	assert.True(t, noBlank.IsTargetValue(nil))
}

func TestPolicy_Names(t *testing.T) {
	p := beancopy.NewPolicy()
	assert.Equal(t, "a.b.c", p.ToMapName("a$b$c"))
	assert.Equal(t, "a$b", p.ToBeanName("a.b"))
	assert.Equal(t, "plain", p.TrimPrefix("plain"))

	p = beancopy.NewPolicy().BeanDelimiter('_').MapDelimiter('.')
	assert.Equal(t, "foo.bar", p.ToMapName("foo_bar"))
	assert.Equal(t, "foo_bar", p.ToBeanName("foo.bar"))

	p = beancopy.NewPolicy().Prefix("ship_").BeanDelimiter('_').MapDelimiter('/')
	assert.Equal(t, "addr/city", p.ToMapName("ship_addr_city"))
	assert.Equal(t, "addr_city", p.TrimPrefix("ship_addr_city"))

	p = beancopy.NewPolicy().Prefix("ship/").BeanDelimiter('_').MapDelimiter('/')
	assert.Equal(t, "addr_city", p.ToBeanName("ship/addr/city"))
}

func TestPolicy_ConvertValue(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	timeType := reflect.TypeFor[time.Time]()

	upper := convert.Func{FormatFunc: func(any) (string, error) { return "NAMED", nil }}
	typed := convert.Func{
		FormatFunc:  func(any) (string, error) { return "TYPED", nil },
		AcceptsFunc: convert.AcceptType(timeType),
	}

	p := beancopy.NewPolicy().
		Converter(typed).
		Converter(upper, "special")

	tests := []struct {
		name     string
		value    any
		destName string
		destType reflect.Type
		want     any
	}{
		{name: "nil", value: nil, destName: "x", destType: timeType, want: nil},
		{name: "typed into typed", value: 5, destName: "x", destType: reflect.TypeFor[int](), want: 5},
		{name: "non-text into typed non-text", value: at, destName: "special", destType: timeType, want: at},
		{name: "typed converter by value type", value: at, destName: "x", destType: nil, want: "TYPED"},
		{name: "named converter first", value: at, destName: "special", destType: nil, want: "NAMED"},
		{name: "non-text into text", value: at, destName: "x", destType: reflect.TypeFor[string](), want: "TYPED"},
		{name: "no converter for value type", value: 3, destName: "x", destType: nil, want: 3},
		{name: "text without converter", value: "x", destName: "x", destType: reflect.TypeFor[int](), want: "x"},
		{name: "text into untyped", value: "2024", destName: "x", destType: nil, want: "2024"},
		{name: "built-in default", value: "2024-05-01T10:00:00Z", destName: "x", destType: timeType, want: at},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ConvertValue(tt.value, tt.destName, tt.destType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicy_FirstTypedConverterWins(t *testing.T) {
	first := convert.Func{FormatFunc: func(any) (string, error) { return "first", nil }}
	second := convert.Func{FormatFunc: func(any) (string, error) { return "second", nil }}

	got, err := beancopy.NewPolicy().Converter(first).Converter(second).ConvertValue(1.5, "x", nil)
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = beancopy.NewPolicy().Converter(second).Converter(first).ConvertValue(1.5, "x", nil)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestPolicy_ConversionFailure(t *testing.T) {
	p := beancopy.NewPolicy().DateConverter("2006-01-02", "born")

	_, err := p.ConvertValue("yesterday", "born", reflect.TypeFor[time.Time]())
	require.Error(t, err)
	assert.True(t, beanerrors.IsConversionFailed(err))

	var conv *beanerrors.ConversionError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, "born", conv.Name)
	assert.Equal(t, "yesterday", conv.Value)
	assert.Error(t, errors.Unwrap(err))
}

func TestPolicy_BuilderErrors(t *testing.T) {
	var nilConv *convert.DateConverter

	p := beancopy.NewPolicy().
		DateConverter("").
		Converter(nil, "x").
		Converter(nilConv).
		NumberConverter("#,###.##", "total")

	require.Error(t, p.Err())
	assert.True(t, beanerrors.IsInvalidArgument(p.Err()))
	assert.Equal(t, []string{"total"}, p.ConverterNames())

	assert.NoError(t, beancopy.NewPolicy().TimeConverter("15:04").Err())
}
