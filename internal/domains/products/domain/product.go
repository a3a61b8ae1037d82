package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName         = errors.New("product name is required")
	ErrNegativePrice     = errors.New("product price must not be negative")
	ErrNegativeQuantity  = errors.New("product quantity must not be negative")
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
)

// Product models a catalog item with its available stock.
type Product struct {
	ID       string
	Name     string
	Price    float64
	Quantity int64
}

// NewProduct validates and constructs a product aggregate.
func NewProduct(id, name string, price float64, quantity int64) (*Product, error) {
	product := &Product{ID: id, Price: price, Quantity: quantity}
	if err := product.Rename(name); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Rename trims and validates the display name.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// Validate enforces invariants on the aggregate.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// HasStock reports whether the requested quantity can be fulfilled.
// Fulfillment succeeds when available stock is greater than or equal
// to the requested quantity.
func (p *Product) HasStock(requested int64) bool {
	return p.Quantity >= requested
}

// Decrement consumes stock, refusing to drive the quantity negative.
func (p *Product) Decrement(requested int64) error {
	if !p.HasStock(requested) {
		return ErrInsufficientStock
	}
	p.Quantity -= requested
	return nil
}
