package ports

import (
	"context"

	"github.com/orderstack/commerce-api/internal/domains/orders/domain"
)

// LineInput is one requested product/quantity pair.
type LineInput struct {
	ProductID string
	Quantity  int64
}

// CreateOrderInput carries the fields accepted when placing an order.
// IdempotencyKey is optional; when present, replays with the same key and
// payload return the originally created order.
type CreateOrderInput struct {
	CustomerID     string
	Lines          []LineInput
	IdempotencyKey string
}

// Service exposes order use cases to adapters.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}
