// Package warehouse holds fixture beans shaped differently from store, so
// copies between the two need conversion and coercion.
package warehouse

import (
	"beanmapper/store"
)

// Order is a flat, text-heavy view of store.Order.
type Order struct {
	ID         string
	CustomerID string
	Status     string
	Total      string
	OrderedAt  string
	Version    int32
	Remarks    string
}

// CustomerCard mirrors store.Customer with plain fields.
type CustomerCard struct {
	Name   string `bean:"name"`
	Email  string `bean:"email"`
	Active bool   `bean:"active"`
}

// Tracked embeds a generic store type across packages.
type Tracked[T any] struct {
	store.Box[T]
	Carrier string
}

// Parcel binds the chain Tracked -> Box to store.Product.
type Parcel struct {
	Tracked[store.Product]
	Weight float64
}

// Stock is keyed by SKU.
type Stock struct {
	Levels map[string]store.Box[int]
	Quiet  chan store.Set[string]
}
