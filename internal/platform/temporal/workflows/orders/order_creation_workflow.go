package orders

import (
	"go.temporal.io/sdk/workflow"

	ordersdomain "github.com/orderstack/commerce-api/internal/domains/orders/domain"
	ordersports "github.com/orderstack/commerce-api/internal/domains/orders/ports"
	"github.com/orderstack/commerce-api/internal/platform/temporal/sequences"
)

const (
	// OrderCreationWorkflowName is the public identifier for registering the workflow.
	OrderCreationWorkflowName = "orders.workflows.Creation"
	// OrderCreationTaskQueue is the queue consumed by the worker processing order workflows.
	OrderCreationTaskQueue = "ORDER_CREATION"
)

// OrderCreationWorkflowInput captures the payload required to place an order.
type OrderCreationWorkflowInput struct {
	Command ordersports.CreateOrderInput
	TraceID string
}

// OrderCreationWorkflow orchestrates the activities needed to validate and
// persist an order.
func OrderCreationWorkflow(ctx workflow.Context, input OrderCreationWorkflowInput) (*ordersdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderCreationWorkflow started", withTraceID(input.TraceID, "customerId", input.Command.CustomerID)...)
	order, err := sequences.RunOrderPersistenceSequence(ctx, input.Command)
	if err != nil {
		logger.Error("OrderCreationWorkflow failed", withTraceID(input.TraceID, "customerId", input.Command.CustomerID, "error", err)...)
		return nil, err
	}
	if order != nil {
		logger.Info("OrderCreationWorkflow completed", withTraceID(input.TraceID, "orderId", order.ID)...)
	} else {
		logger.Info("OrderCreationWorkflow completed", withTraceID(input.TraceID)...)
	}
	return order, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
