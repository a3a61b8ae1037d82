package ports

import (
	"context"
	"errors"

	"github.com/orderstack/commerce-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders. Orders are insert-only.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
