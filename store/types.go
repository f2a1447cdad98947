// Package store holds fixture beans: plain field beans, accessor beans,
// generic containers and embedding chains.
package store

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a plain bean backed by exported fields.
type Product struct {
	ID         int64 `bean:"id"`
	SKU        string
	Name       string
	PriceCents int64
	CreatedAt  time.Time
	note       string
}

func (p *Product) Note() string     { return p.note }
func (p *Product) SetNote(v string) { p.note = v }

// Customer exposes its state through accessor methods.
type Customer struct {
	name     string
	email    string
	active   bool
	Nickname string `bean:"-"`
	Address  *string
}

// ErrInvalidEmail is returned by SetEmail.
var ErrInvalidEmail = errors.New("invalid email")

// NewCustomer creates a named customer.
func NewCustomer(name string) *Customer {
	return &Customer{name: name}
}

// NewCustomerWithEmail creates a customer and validates email.
func NewCustomerWithEmail(name, email string) (*Customer, error) {
	c := NewCustomer(name)
	if err := c.SetEmail(email); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Name() string     { return c.name }
func (c *Customer) SetName(v string) { c.name = v }
func (c *Customer) GetEmail() string { return c.email }
func (c *Customer) IsActive() bool   { return c.active }
func (c *Customer) SetActive(v bool) { c.active = v }

func (c *Customer) SetEmail(v string) error {
	if v != "" && !strings.Contains(v, "@") {
		return ErrInvalidEmail
	}

	c.email = v

	return nil
}

// DisplayName is derived, not a property.
func (c *Customer) DisplayName() string {
	if c.name == "" {
		return "anonymous"
	}

	return strings.ToUpper(c.name[:1]) + c.name[1:]
}

// Greet builds a greeting.
func (c *Customer) Greet(greeting string, extra ...string) string {
	return strings.Join(append([]string{greeting, c.name}, extra...), " ")
}

// Record is a flat bean used for map round trips.
type Record struct {
	Name   string    `bean:"name"`
	Count  int       `bean:"count"`
	FooBar string    `bean:"foo_bar"`
	Note   *string   `bean:"note"`
	Born   time.Time `bean:"born"`
	Tags   []string  `bean:"tags"`
}

// OrderStatus is a string enum.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusCancelled:
		return true
	}

	return false
}

// Entity is the root of the order embedding chain.
type Entity[ID comparable] struct {
	ID      ID
	Version int
}

// Audited adds authorship on top of Entity.
type Audited[ID comparable] struct {
	Entity[ID]
	CreatedBy string
}

// Order is a bean whose ID type is fixed two embeddings up.
type Order struct {
	Audited[int64]
	CustomerID int64
	Status     OrderStatus
	Items      []OrderItem
	Total      decimal.Decimal
	OrderedAt  time.Time
}

// OrderItem is a line within an order.
type OrderItem struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Box holds one value of any type.
type Box[T any] struct {
	Value T
	Label string
}

// Get returns the boxed value.
func (b *Box[T]) Get() T { return b.Value }

// Set is an unordered collection of comparable values.
type Set[T comparable] struct {
	items map[T]struct{}
}

// NewSet creates a set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := Set[T]{items: make(map[T]struct{}, len(items))}
	for _, it := range items {
		s.items[it] = struct{}{}
	}

	return s
}

// Has reports membership.
func (s Set[T]) Has(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Len returns the number of items.
func (s Set[T]) Len() int { return len(s.items) }

// Catalog nests generic containers inside collections.
type Catalog struct {
	Tags     map[string][]Set[int]
	Featured Box[Product]
	Shelves  [][]Box[string]
	Owner    *Box[Customer]
}

// Scores returns the keys of Tags in ascending order.
func (c *Catalog) Scores() []string {
	keys := make([]string, 0, len(c.Tags))
	for k := range c.Tags {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
