package ports

import (
	"context"
	"errors"

	"github.com/orderstack/commerce-api/internal/domains/products/domain"
)

var (
	ErrNotFound = errors.New("product not found")
	// ErrStockExhausted signals a decrement would drive stock negative.
	ErrStockExhausted = errors.New("product stock exhausted")
)

// QuantityUpdate names the stock consumed from one product.
type QuantityUpdate struct {
	ProductID string
	Quantity  int64
}

// Repository persists catalog products.
//
// FindAllByID makes no promise about result order or positional
// correspondence with the input slice; callers must match records by
// identifier.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	FindAllByID(ctx context.Context, ids []string) ([]*domain.Product, error)
	// UpdateQuantity subtracts each update's quantity from its product's
	// stock, keyed by product identifier, and returns the updated products.
	UpdateQuantity(ctx context.Context, updates []QuantityUpdate) ([]*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}
