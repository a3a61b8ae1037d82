package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	ordersdomain "github.com/orderstack/commerce-api/internal/domains/orders/domain"
	ordersports "github.com/orderstack/commerce-api/internal/domains/orders/ports"
)

// CreateOrderActivityName validates the request, consumes stock, and persists the order.
const CreateOrderActivityName = "orders.activities.CreateOrder"

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// CreateOrder runs the order-creation workflow and returns the persisted order.
func (a *Activities) CreateOrder(ctx context.Context, input ordersports.CreateOrderInput) (*ordersdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order creation activity not initialized", "customerId", input.CustomerID)
		return nil, errors.New("order creation activity not initialized")
	}
	logger.Info("CreateOrder activity started", "customerId", input.CustomerID)
	order, err := a.service.CreateOrder(ctx, input)
	if err != nil {
		logger.Error("CreateOrder activity failed", "customerId", input.CustomerID, "error", err)
		return nil, err
	}
	logger.Info("CreateOrder activity completed", "orderId", order.ID)
	return order, nil
}
