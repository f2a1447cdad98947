package bean_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"beanmapper/bean"
	beanerrors "beanmapper/errors"
	"beanmapper/store"
)

func newRegistry(t *testing.T, opts ...bean.Option) *bean.Registry {
	t.Helper()

	r, err := bean.NewRegistry(opts...)
	require.NoError(t, err)

	return r
}

func TestRegistry_LookupIsIdempotent(t *testing.T) {
	r := newRegistry(t)

	d1, err := bean.DescriptorOf[store.Product](r)
	require.NoError(t, err)

	d2, err := r.Descriptor(reflect.TypeFor[store.Product]())
	require.NoError(t, err)
	assert.Same(t, d1, d2)

	d3, err := r.Descriptor(reflect.TypeFor[*store.Product]())
	require.NoError(t, err)
	assert.Same(t, d1, d3, "pointer types share the struct descriptor")

	d4, err := r.DescriptorFor(&store.Product{})
	require.NoError(t, err)
	assert.Same(t, d1, d4)
}

func TestRegistry_ResetInvalidates(t *testing.T) {
	r := newRegistry(t)

	before, err := bean.DescriptorOf[store.Product](r)
	require.NoError(t, err)

	r.Reset()

	after, err := bean.DescriptorOf[store.Product](r)
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Equal(t, before.PropertyNames(), after.PropertyNames(), "stale descriptors stay consistent")
}

func TestRegistry_ConcurrentFirstUse(t *testing.T) {
	r := newRegistry(t)

	const workers = 32
	results := make([]*bean.Descriptor, workers)

	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if i%8 == 0 {
				r.Reset()
			}
			d, err := bean.DescriptorOf[store.Order](r)
			assert.NoError(t, err)
			results[i] = d
		}()
	}

	close(start)
	wg.Wait()

	final, err := bean.DescriptorOf[store.Order](r)
	require.NoError(t, err)

	again, err := bean.DescriptorOf[store.Order](r)
	require.NoError(t, err)
	assert.Same(t, final, again)

	for _, d := range results {
		require.NotNil(t, d)
		assert.Equal(t, final.PropertyNames(), d.PropertyNames())
	}
}

func TestRegistry_InvalidTypes(t *testing.T) {
	r := newRegistry(t)

	_, err := r.Descriptor(nil)
	assert.True(t, beanerrors.IsInvalidArgument(err))

	_, err = bean.DescriptorOf[int](r)
	assert.True(t, beanerrors.IsInvalidArgument(err))

	_, err = bean.DescriptorOf[map[string]any](r)
	assert.True(t, beanerrors.IsInvalidArgument(err))
}

func TestRegistry_Options(t *testing.T) {
	_, err := bean.NewRegistry(bean.WithTagName(""))
	assert.True(t, beanerrors.IsInvalidArgument(err))

	_, err = bean.NewRegistry(bean.WithLogger(nil))
	assert.True(t, beanerrors.IsInvalidArgument(err))

	_, err = bean.NewRegistry(bean.WithInitializers(42))
	assert.True(t, beanerrors.IsInvalidArgument(err))

	_, err = bean.NewRegistry(bean.WithInitializers(func() int { return 1 }))
	assert.True(t, beanerrors.IsInvalidArgument(err))

	_, err = bean.NewRegistry(bean.WithInitializers(func() (*store.Product, bool) { return nil, false }))
	assert.True(t, beanerrors.IsInvalidArgument(err))
}

func TestRegistry_TagName(t *testing.T) {
	type tagged struct {
		A string `json:"alpha"`
		B string `json:"-"`
		C string `bean:"gamma"`
	}

	r := newRegistry(t, bean.WithTagName("json"))
	d, err := bean.DescriptorOf[tagged](r)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "c"}, d.PropertyNames())
}

func TestRegistry_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := newRegistry(t, bean.WithLogger(zap.New(core)))

	_, err := bean.DescriptorOf[store.Customer](r)
	require.NoError(t, err)

	built := logs.FilterMessage("descriptor built").All()
	require.Len(t, built, 1)
	assert.Equal(t, "store.Customer", built[0].ContextMap()["type"])
	assert.EqualValues(t, 4, built[0].ContextMap()["properties"])

	r.Reset()
	assert.Equal(t, 1, logs.FilterMessage("descriptor cache reset").Len())
}

func TestDefaultRegistry(t *testing.T) {
	d1, err := bean.Of[store.Record]()
	require.NoError(t, err)

	d2, err := bean.For(reflect.TypeFor[store.Record]())
	require.NoError(t, err)
	assert.Same(t, d1, d2)

	bean.Reset()

	d3, err := bean.Of[store.Record]()
	require.NoError(t, err)
	assert.NotSame(t, d1, d3)
	assert.NotNil(t, bean.Default())
}
