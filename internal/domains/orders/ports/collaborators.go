package ports

import (
	"context"
	"errors"
)

// Workflow failure conditions surfaced verbatim to the caller.
var (
	ErrCustomerNotFound = errors.New("customer does not exist")
	ErrProductNotFound  = errors.New("one or more products do not exist")
	ErrOutOfStock       = errors.New("product out of stock")
	ErrDuplicateProduct = errors.New("duplicate product id in order request")
)

// CustomerRef is the order workflow's view of a customer.
type CustomerRef struct {
	ID    string
	Name  string
	Email string
}

// CatalogProduct is the order workflow's view of a catalog item.
type CatalogProduct struct {
	ID       string
	Name     string
	Price    float64
	Quantity int64
}

// QuantityUpdate names the stock consumed from one product.
type QuantityUpdate struct {
	ProductID string
	Quantity  int64
}

// CustomerDirectory looks up customers owned by the customers context.
type CustomerDirectory interface {
	// FindByID returns the customer or ErrCustomerNotFound.
	FindByID(ctx context.Context, id string) (*CustomerRef, error)
}

// ProductCatalog looks up and mutates products owned by the products context.
//
// FindAllByID deduplicates its input and makes no promise about result
// order; callers must match returned products by identifier, never by
// position.
type ProductCatalog interface {
	FindAllByID(ctx context.Context, ids []string) ([]CatalogProduct, error)
	// UpdateQuantity subtracts each update's quantity from its product's
	// stock, keyed by product id.
	UpdateQuantity(ctx context.Context, updates []QuantityUpdate) ([]CatalogProduct, error)
}
