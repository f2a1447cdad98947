package beancopy_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"beanmapper/bean"
	"beanmapper/beancopy"
	beanerrors "beanmapper/errors"
	"beanmapper/primitive"
	"beanmapper/store"
	"beanmapper/warehouse"
)

type xyz struct {
	X string `bean:"x"`
	Y string `bean:"y"`
	Z string `bean:"z"`
}

type shipping struct {
	City    string `bean:"ship_city"`
	Zip     string `bean:"ship_zip"`
	Country string `bean:"country"`
}

type address struct {
	City    string `bean:"city"`
	Zip     string `bean:"zip"`
	Country string `bean:"country"`
}

func newCopier(t *testing.T, opts ...beancopy.Option) *beancopy.Copier {
	t.Helper()

	r, err := bean.NewRegistry()
	require.NoError(t, err)

	c, err := beancopy.New(append([]beancopy.Option{beancopy.WithRegistry(r)}, opts...)...)
	require.NoError(t, err)

	return c
}

func TestCopier_RoundTrip(t *testing.T) {
	c := newCopier(t)
	rec := &store.Record{Name: "a", Count: 3}

	m, err := c.BeanToNewMap(rec, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "count", "foo_bar", "note", "born", "tags"}, m.Keys())

	back, err := c.MapToNewBean(m, reflect.TypeFor[store.Record](), nil)
	require.NoError(t, err)
	assert.Equal(t, rec, back)

	typed, err := beancopy.NewBeanFromMapWith[store.Record](c, m, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", typed.Name)
	assert.Equal(t, 3, typed.Count)
}

func TestCopier_FilterPrecedence(t *testing.T) {
	c := newCopier(t)
	p := beancopy.NewPolicy().Include("x", "y").Exclude("y")

	m, err := c.BeanToNewMap(&xyz{X: "1", Y: "2", Z: "3"}, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, m.Keys())

	var dst xyz
	require.NoError(t, c.BeanToBean(xyz{X: "1", Y: "2", Z: "3"}, &dst, p))
	assert.Equal(t, xyz{X: "1"}, dst)
}

func TestCopier_Suppression(t *testing.T) {
	c := newCopier(t)

	m, err := c.BeanToNewMap(&store.Record{Name: "a"}, beancopy.NewPolicy().ExcludeNull())
	require.NoError(t, err)
	_, ok := m.Get("note")
	assert.False(t, ok)
	_, ok = m.Get("tags")
	assert.False(t, ok)
	_, ok = m.Get("name")
	assert.True(t, ok)

	m, err = c.BeanToNewMap(&store.Record{Name: "   ", FooBar: "x"}, beancopy.NewPolicy().ExcludeBlank())
	require.NoError(t, err)
	_, ok = m.Get("name")
	assert.False(t, ok)
	v, _ := m.Get("foo_bar")
	assert.Equal(t, "x", v)
}

func TestCopier_DelimiterRemapping(t *testing.T) {
	c := newCopier(t)
	p := beancopy.NewPolicy().BeanDelimiter('_').MapDelimiter('.')

	m, err := c.BeanToNewMap(&store.Record{FooBar: "fb"}, p)
	require.NoError(t, err)

	v, ok := m.Get("foo.bar")
	require.True(t, ok)
	assert.Equal(t, "fb", v)

	back, err := beancopy.NewBeanFromMapWith[store.Record](c, m, p)
	require.NoError(t, err)
	assert.Equal(t, "fb", back.FooBar)
}

func TestCopier_Prefix(t *testing.T) {
	c := newCopier(t)
	p := beancopy.NewPolicy().Prefix("ship_")

	var dst address
	require.NoError(t, c.BeanToBean(&shipping{City: "Oslo", Zip: "0150", Country: "NO"}, &dst, p))
	assert.Equal(t, address{City: "Oslo", Zip: "0150"}, dst)

	src := beancopy.NewOrderedMap()
	src.Set("bill.city", "Bergen")
	src.Set("ship.city", "Oslo")
	src.Set("ship.zip", "0150")

	m, err := c.MapToNewMap(src, beancopy.NewPolicy().Prefix("ship."))
	require.NoError(t, err)
	assert.Equal(t, []string{"city", "zip"}, m.Keys())
	assert.Equal(t, map[string]any{"city": "Oslo", "zip": "0150"}, m.ToMap())
}

func TestCopier_ConversionFailureAborts(t *testing.T) {
	c := newCopier(t)
	p := beancopy.NewPolicy().DateConverter("2006-01-02", "born")

	src := beancopy.GoMap{"born": "03/04/2021", "name": "a"}

	var rec store.Record
	err := c.MapToBean(src, &rec, p)
	require.Error(t, err)
	assert.True(t, beanerrors.IsConversionFailed(err))

	var conv *beanerrors.ConversionError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, "born", conv.Name)
	assert.Equal(t, "03/04/2021", conv.Value)

	src["born"] = "2021-04-03"
	require.NoError(t, c.MapToBean(src, &rec, p))
	assert.True(t, time.Date(2021, 4, 3, 0, 0, 0, 0, time.UTC).Equal(rec.Born))
	assert.Equal(t, "a", rec.Name)
}

func TestCopier_PolicyErrorBeforeMutation(t *testing.T) {
	c := newCopier(t)
	p := beancopy.NewPolicy().DateConverter("")

	dst := beancopy.NewOrderedMap()
	err := c.BeanToMap(&store.Record{Name: "a"}, dst, p)
	require.Error(t, err)
	assert.True(t, beanerrors.IsInvalidArgument(err))
	assert.Zero(t, dst.Len())
}

func TestCopier_AcrossShapes(t *testing.T) {
	c := newCopier(t)

	src := &store.Order{
		CustomerID: 9,
		Status:     store.StatusPaid,
		Items:      []store.OrderItem{{ProductID: 1, Quantity: 2}},
		Total:      decimal.RequireFromString("12.5"),
		OrderedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	src.ID = 7
	src.Version = 2

	p := beancopy.NewPolicy().
		NumberConverter("#.##", "total").
		DateConverter("2006-01-02")

	dst, err := beancopy.NewBeanWith[warehouse.Order](c, src, p)
	require.NoError(t, err)
	assert.Equal(t, warehouse.Order{
		ID:         "7",
		CustomerID: "9",
		Status:     "PAID",
		Total:      "12.50",
		OrderedAt:  "2024-05-01",
		Version:    2,
	}, *dst)

	back := &store.Order{}
	err = c.BeanToBean(dst, back, beancopy.NewPolicy().Exclude("total", "orderedAt"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), back.ID)
	assert.Equal(t, store.StatusPaid, back.Status)
}

func TestCopier_AccessorBeans(t *testing.T) {
	c := newCopier(t)

	cust := store.NewCustomer("ada")
	require.NoError(t, cust.SetEmail("ada@example.com"))
	cust.SetActive(true)

	card, err := beancopy.NewBeanWith[warehouse.CustomerCard](c, cust, nil)
	require.NoError(t, err)
	assert.Equal(t, warehouse.CustomerCard{Name: "ada", Email: "ada@example.com", Active: true}, *card)

	card.Email = "broken"
	err = c.BeanToBean(card, cust, nil)
	require.ErrorIs(t, err, store.ErrInvalidEmail)
}

func TestCopier_WriteCoercion(t *testing.T) {
	c := newCopier(t)
	src := beancopy.GoMap{"count": "12"}

	var rec store.Record
	require.NoError(t, c.MapToBean(src, &rec, nil))
	assert.Equal(t, 12, rec.Count)

	err := c.MapToBean(src, &rec, beancopy.NewPolicy().Coercions(primitive.CategoryNone))
	assert.True(t, beanerrors.IsConversionFailed(err))
}

func TestCopier_SkipsMissingDestinations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := newCopier(t, beancopy.WithLogger(zap.New(core)))

	src := beancopy.GoMap{"name": "a", "unknown": 1, "count": 2}

	var rec store.Record
	require.NoError(t, c.MapToBean(src, &rec, beancopy.NewPolicy().Exclude("count")))
	assert.Equal(t, store.Record{Name: "a"}, rec)

	reasons := map[string]string{}
	for _, entry := range logs.FilterMessage("property skipped").All() {
		ctx := entry.ContextMap()
		reasons[ctx["property"].(string)] = ctx["reason"].(string)
	}
	assert.Equal(t, map[string]string{"count": "filtered", "unknown": "no destination"}, reasons)
}

func TestCopier_InvalidArguments(t *testing.T) {
	c := newCopier(t)

	var rec store.Record

	tests := []struct {
		name string
		run  func() error
	}{
		{"nil source bean", func() error { return c.BeanToBean(nil, &rec, nil) }},
		{"nil source pointer", func() error { return c.BeanToBean((*store.Record)(nil), &rec, nil) }},
		{"value destination", func() error { return c.BeanToBean(&rec, rec, nil) }},
		{"nil destination map", func() error { return c.BeanToMap(&rec, nil, nil) }},
		{"nil go map", func() error { return c.MapToMap(beancopy.GoMap{}, beancopy.GoMap(nil), nil) }},
		{"non-struct source", func() error { return c.BeanToMap(42, beancopy.GoMap{}, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, beanerrors.IsInvalidArgument(tt.run()))
		})
	}

	_, err := beancopy.New(beancopy.WithRegistry(nil))
	assert.True(t, beanerrors.IsInvalidArgument(err))
}

func TestPackageLevelCopies(t *testing.T) {
	m, err := beancopy.BeanToNewMap(&xyz{X: "1"}, beancopy.NewPolicy().Include("x"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": "1"}, m.ToMap())

	got, err := beancopy.NewBeanFromMap[xyz](m, nil)
	require.NoError(t, err)
	assert.Equal(t, "1", got.X)

	copied, err := beancopy.NewBean[xyz](got, nil)
	require.NoError(t, err)
	assert.Equal(t, *got, *copied)
	assert.NotSame(t, got, copied)

	dst := beancopy.GoMap{}
	require.NoError(t, beancopy.MapToMap(m, dst, nil))
	assert.Equal(t, beancopy.GoMap{"x": "1"}, dst)
}
