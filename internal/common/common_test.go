package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Name", "name"},
		{"URL", "URL"},
		{"X", "x"},
		{"fooBar", "fooBar"},
		{"", ""},
		{"Éclair", "éclair"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Decapitalize(tt.in))
		})
	}
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "store", PkgAlias("beanmapper/store"))
	assert.Equal(t, "", PkgAlias(""))
	assert.Equal(t, "orderedmap", PkgAlias("github.com/wk8/orderedmap/v2"))
	assert.Equal(t, "v1", PkgAlias("example.com/v1"))
	assert.Equal(t, "v2", PkgAlias("v2"))
}

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.True(t, IsSingle([]string{"a"}))

	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string{})
	assert.False(t, ok)

	assert.Equal(t, map[string]struct{}{"x": {}, "y": {}}, Set([]string{"x", "y", "x"}))
}
