package bean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanmapper/bean"
	beanerrors "beanmapper/errors"
	"beanmapper/store"
)

func TestView_StrictGet(t *testing.T) {
	rec := &store.Record{Name: "a", Count: 3}

	v, err := bean.NewView(newRegistry(t), rec)
	require.NoError(t, err)

	got, err := v.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	got, err = v.Get("note")
	require.NoError(t, err)
	assert.Nil(t, got.(*string), "present with a nil value")

	_, err = v.Get("nmae")
	require.Error(t, err)
	assert.True(t, beanerrors.IsUnknownKey(err))

	var unknown *beanerrors.UnknownKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "name", unknown.Suggestion)
	assert.Equal(t, "store.Record", unknown.Type)

	assert.True(t, v.Has("count"))
	assert.False(t, v.Has("Count"))
	assert.Equal(t, []string{"name", "count", "foo_bar", "note", "born", "tags"}, v.Keys())
	assert.Equal(t, 6, v.Len())
}

func TestView_Put(t *testing.T) {
	rec := &store.Record{}

	v, err := bean.NewView(nil, rec)
	require.NoError(t, err)

	require.NoError(t, v.Put("count", "12"))
	assert.Equal(t, 12, rec.Count)

	require.NoError(t, v.Put("note", "hello"))
	require.NotNil(t, rec.Note)
	assert.Equal(t, "hello", *rec.Note)

	err = v.Put("count", "twelve")
	assert.True(t, beanerrors.IsConversionFailed(err))

	err = v.Put("missing", 1)
	assert.True(t, beanerrors.IsUnknownKey(err))
}

func TestView_RequiresPointer(t *testing.T) {
	_, err := bean.NewView(nil, store.Record{})
	assert.True(t, beanerrors.IsInvalidArgument(err))

	_, err = bean.NewView(nil, (*store.Record)(nil))
	assert.True(t, beanerrors.IsInvalidArgument(err))
}
