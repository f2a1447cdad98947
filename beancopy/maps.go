package beancopy

import (
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is a string keyed map a copy can read from and write into. Keys
// returns the iteration order of a source map.
type Map interface {
	Keys() []string
	Get(key string) (any, bool)
	Set(key string, value any)
	Len() int
}

// OrderedMap is a Map iterating keys in insertion order.
type OrderedMap struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{m: orderedmap.New[string, any]()}
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	keys := make([]string, 0, m.m.Len())
	for pair := m.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

func (m *OrderedMap) Get(key string) (any, bool) { return m.m.Get(key) }

// Set inserts or replaces key. Replacing keeps its position.
func (m *OrderedMap) Set(key string, value any) { m.m.Set(key, value) }

func (m *OrderedMap) Len() int { return m.m.Len() }

// Delete removes key and reports whether it was present.
func (m *OrderedMap) Delete(key string) bool {
	_, ok := m.m.Delete(key)
	return ok
}

// ToMap returns a plain map holding the same entries.
func (m *OrderedMap) ToMap() map[string]any {
	out := make(map[string]any, m.m.Len())
	for pair := m.m.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}

	return out
}

// GoMap adapts a plain map. Keys are iterated in ascending order.
type GoMap map[string]any

func (m GoMap) Keys() []string { return slices.Sorted(maps.Keys(m)) }

func (m GoMap) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m GoMap) Set(key string, value any) { m[key] = value }

func (m GoMap) Len() int { return len(m) }
