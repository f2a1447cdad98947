package bean_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanmapper/bean"
	"beanmapper/internal/analyze"
	"beanmapper/store"
	"beanmapper/warehouse"
)

func staticRegistry(t *testing.T) *bean.Registry {
	t.Helper()

	graph, err := analyze.NewAnalyzer().LoadPackages("beanmapper/store", "beanmapper/warehouse")
	require.NoError(t, err)

	return newRegistry(t, bean.WithTypeSource(graph))
}

func TestStatic_NestedGenericProperty(t *testing.T) {
	d, err := bean.DescriptorOf[store.Catalog](staticRegistry(t))
	require.NoError(t, err)

	tags, ok := d.Property("tags")
	require.True(t, ok)

	pt := tags.ParameterizedType()
	require.NotNil(t, pt)
	require.Len(t, pt.Args, 2, spew.Sdump(pt))
	assert.Equal(t, "string", pt.Args[0].String())
	assert.Nil(t, pt.Args[0].Args)

	set := pt.Args[1]
	assert.Equal(t, "[]store.Set[int]", set.String())
	require.Len(t, set.Args, 1)
	assert.Equal(t, "int", set.Args[0].String())

	featured, _ := d.Property("featured")
	assert.Equal(t, "store.Box[store.Product]", featured.ParameterizedType().String())
}

func TestStatic_EmbeddingBinding(t *testing.T) {
	r := staticRegistry(t)

	order, err := bean.DescriptorOf[store.Order](r)
	require.NoError(t, err)
	assert.Equal(t, 2, order.Binding().Len())

	id, _ := order.Property("ID")
	assert.Equal(t, "int64", id.ParameterizedType().String())

	audited, _ := order.Attribute("Audited")
	assert.Equal(t, "store.Audited[int64]", audited.ParameterizedType().String())

	parcel, err := bean.DescriptorOf[warehouse.Parcel](r)
	require.NoError(t, err)
	assert.Equal(t, []string{"value", "label", "carrier", "weight"}, parcel.PropertyNames())

	value, _ := parcel.Property("value")
	assert.Equal(t, "store.Product", value.ParameterizedType().String())
}

func TestStatic_MethodBackedProperty(t *testing.T) {
	d, err := bean.DescriptorOf[store.Customer](staticRegistry(t))
	require.NoError(t, err)

	name, _ := d.Property("name")
	require.NotNil(t, name.ParameterizedType())
	assert.Equal(t, "string", name.ParameterizedType().String())

	address, _ := d.Property("address")
	assert.Equal(t, "*string", address.ParameterizedType().String())
}

func TestStatic_RuntimeInstantiation(t *testing.T) {
	d, err := bean.DescriptorOf[store.Box[int]](staticRegistry(t))
	require.NoError(t, err)

	assert.True(t, d.Binding().IsEmpty())

	value, ok := d.Property("value")
	require.True(t, ok)
	assert.Nil(t, value.ParameterizedType())
}

func TestStatic_WithoutSource(t *testing.T) {
	d, err := bean.DescriptorOf[store.Catalog](newRegistry(t))
	require.NoError(t, err)

	tags, _ := d.Property("tags")
	assert.Nil(t, tags.ParameterizedType())
	assert.True(t, d.Binding().IsEmpty())
}
