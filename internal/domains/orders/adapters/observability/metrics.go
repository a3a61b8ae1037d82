package observability

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	ordersports "github.com/orderstack/commerce-api/internal/domains/orders/ports"
)

type serviceMetrics struct {
	created  metric.Int64Counter
	rejected metric.Int64Counter
	lines    metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("orders.created",
		metric.WithDescription("Orders successfully created"))
	rejected, _ := m.Int64Counter("orders.rejected",
		metric.WithDescription("Order requests rejected, partitioned by reason"))
	lines, _ := m.Int64Counter("orders.lines",
		metric.WithDescription("Order lines persisted"))
	return serviceMetrics{created: created, rejected: rejected, lines: lines}
}

func (m serviceMetrics) recordCreated(ctx context.Context, lineCount int) {
	if m.created != nil {
		m.created.Add(ctx, 1)
	}
	if m.lines != nil {
		m.lines.Add(ctx, int64(lineCount))
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context, err error) {
	if m.rejected == nil {
		return
	}
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", rejectionReason(err))))
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ordersports.ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, ordersports.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, ordersports.ErrOutOfStock):
		return "out_of_stock"
	case errors.Is(err, ordersports.ErrDuplicateProduct):
		return "duplicate_product"
	case errors.Is(err, ordersports.ErrIdempotencyConflict):
		return "idempotency_conflict"
	default:
		return "other"
	}
}
