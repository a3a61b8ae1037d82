package ports

import (
	"context"

	"github.com/orderstack/commerce-api/internal/domains/orders/domain"
)

// WorkflowOrchestrator runs the order-creation sequence, either inline or
// through a durable workflow engine.
type WorkflowOrchestrator interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
}
