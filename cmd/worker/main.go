package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/orderstack/commerce-api/internal/app/api"
	orderslocal "github.com/orderstack/commerce-api/internal/domains/orders/adapters/local"
	ordersobs "github.com/orderstack/commerce-api/internal/domains/orders/adapters/observability"
	ordersapp "github.com/orderstack/commerce-api/internal/domains/orders/application"
	platformobservability "github.com/orderstack/commerce-api/internal/platform/observability"
	orderactivities "github.com/orderstack/commerce-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/orderstack/commerce-api/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "commerce-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg := api.LoadConfig()
	repos, cleanupRepos := api.BuildRepositories(ctx, cfg, logger)
	defer cleanupRepos()

	orderService := ordersobs.New(
		ordersapp.NewService(
			repos.Orders,
			orderslocal.NewCustomerDirectory(repos.Customers),
			orderslocal.NewProductCatalog(repos.Products),
			ordersapp.WithIdempotencyStore(repos.Idempotency),
		),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	orderActivities := orderactivities.NewActivities(orderService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderCreationWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderCreationWorkflowName})
	w.RegisterActivityWithOptions(orderActivities.CreateOrder, activity.RegisterOptions{Name: orderactivities.CreateOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderCreationTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
