package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/orderstack/commerce-api/internal/domains/orders/domain"
	ordersports "github.com/orderstack/commerce-api/internal/domains/orders/ports"
	orderactivities "github.com/orderstack/commerce-api/internal/platform/temporal/activities/orders"
)

// RunOrderPersistenceSequence executes the ordered set of activities needed
// to validate stock and persist an order. Validation failures are terminal,
// so the activity runs at most once.
func RunOrderPersistenceSequence(ctx workflow.Context, input ordersports.CreateOrderInput) (*ordersdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order persistence sequence started", "customerId", input.CustomerID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var order ordersdomain.Order
	err := workflow.ExecuteActivity(ctx, orderactivities.CreateOrderActivityName, input).Get(ctx, &order)
	if err != nil {
		logger.Error("order persistence sequence failed", "customerId", input.CustomerID, "error", err)
		return nil, err
	}
	logger.Info("order persistence sequence completed", "orderId", order.ID)
	return &order, nil
}
