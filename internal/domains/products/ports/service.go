package ports

import (
	"context"

	"github.com/orderstack/commerce-api/internal/domains/products/domain"
)

// CreateProductInput carries the fields accepted when adding a catalog item.
type CreateProductInput struct {
	Name     string
	Price    float64
	Quantity int64
}

// Service exposes product catalog use cases to adapters.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}
