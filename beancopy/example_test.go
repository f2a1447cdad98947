package beancopy_test

import (
	"fmt"

	"beanmapper/beancopy"
	"beanmapper/store"
)

func ExampleBeanToNewMap() {
	rec := &store.Record{Name: "ada", Count: 3, FooBar: "x"}

	p := beancopy.NewPolicy().
		Include("name", "count", "foo_bar").
		BeanDelimiter('_')

	m, err := beancopy.BeanToNewMap(rec, p)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		fmt.Printf("%s=%v\n", k, v)
	}

	// Output:
	// name=ada
	// count=3
	// foo.bar=x
}
