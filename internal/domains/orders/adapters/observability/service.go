package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersdomain "github.com/orderstack/commerce-api/internal/domains/orders/domain"
	ordersports "github.com/orderstack/commerce-api/internal/domains/orders/ports"
)

const tracerName = "github.com/orderstack/commerce-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core orders service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) CreateOrder(ctx context.Context, input ordersports.CreateOrderInput) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder",
		trace.WithAttributes(
			attribute.String("order.customer_id", input.CustomerID),
			attribute.Int("order.line_count", len(input.Lines)),
		))
	defer span.End()

	s.logInfo(ctx, "creating order",
		slog.String("customer.id", input.CustomerID),
		slog.Int("lines", len(input.Lines)))
	result, err := s.inner.CreateOrder(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx, err)
		return nil, s.handleError(ctx, span, err, "failed to create order", slog.String("customer.id", input.CustomerID))
	}
	span.SetAttributes(attribute.String("order.id", result.ID))
	s.metrics.recordCreated(ctx, len(result.Lines))
	s.logInfo(ctx, "order created",
		slog.String("order.id", result.ID),
		slog.String("customer.id", result.CustomerID),
		slog.Int("lines", len(result.Lines)))
	return result, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrderByID", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrderByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id))
	}
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}
