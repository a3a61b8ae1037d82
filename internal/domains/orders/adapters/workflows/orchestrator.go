package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	ordersdomain "github.com/orderstack/commerce-api/internal/domains/orders/domain"
	"github.com/orderstack/commerce-api/internal/domains/orders/ports"
	orderworkflows "github.com/orderstack/commerce-api/internal/platform/temporal/workflows/orders"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalOrderWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineOrderWorkflows)(nil)
)

// TemporalOrderWorkflows starts order workflows on a Temporal cluster.
type TemporalOrderWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalOrderWorkflows wires a Temporal client into the orchestrator.
func NewTemporalOrderWorkflows(c client.Client) *TemporalOrderWorkflows {
	return &TemporalOrderWorkflows{client: c, taskQueue: orderworkflows.OrderCreationTaskQueue}
}

// CreateOrder starts the Temporal workflow that validates and persists an order.
func (o *TemporalOrderWorkflows) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ordersdomain.Order, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal order workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := buildOrderCreationWorkflowID(input, traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.OrderCreationWorkflow,
		orderworkflows.OrderCreationWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) && strings.TrimSpace(input.IdempotencyKey) != "" {
			existingRun := o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
			var order ordersdomain.Order
			if err := existingRun.Get(ctx, &order); err != nil {
				return nil, err
			}
			return &order, nil
		}
		return nil, err
	}
	var order ordersdomain.Order
	if err := run.Get(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// InlineOrderWorkflows executes the service directly without Temporal, useful
// for tests or dev fallbacks.
type InlineOrderWorkflows struct {
	service ports.Service
}

// NewInlineOrderWorkflows wraps the orders service for synchronous execution.
func NewInlineOrderWorkflows(service ports.Service) *InlineOrderWorkflows {
	return &InlineOrderWorkflows{service: service}
}

// CreateOrder delegates to the application service without durable orchestration.
func (o *InlineOrderWorkflows) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ordersdomain.Order, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline order workflows not configured")
	}
	return o.service.CreateOrder(ctx, input)
}

func buildOrderCreationWorkflowID(input ports.CreateOrderInput, traceComponent string) string {
	if key := strings.TrimSpace(input.IdempotencyKey); key != "" {
		return fmt.Sprintf("order-creation-idem-%s", hashIdempotencyKey(key))
	}
	return fmt.Sprintf("order-creation-%s-%s", strings.TrimSpace(input.CustomerID), traceComponent)
}

func hashIdempotencyKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	// Use the first 16 hex chars to keep workflow IDs readable while remaining deterministic.
	return hex.EncodeToString(sum[:8])
}

func workflowTraceComponent(ctx context.Context) string {
	traceComponent := workflowTraceID(ctx)
	if traceComponent != "" {
		return traceComponent
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
