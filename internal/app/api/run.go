package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	customersmemory "github.com/orderstack/commerce-api/internal/domains/customers/adapters/memory"
	customerspostgres "github.com/orderstack/commerce-api/internal/domains/customers/adapters/persistence/postgres"
	customersapp "github.com/orderstack/commerce-api/internal/domains/customers/application"
	customersports "github.com/orderstack/commerce-api/internal/domains/customers/ports"

	productsmemory "github.com/orderstack/commerce-api/internal/domains/products/adapters/memory"
	productspostgres "github.com/orderstack/commerce-api/internal/domains/products/adapters/persistence/postgres"
	productsapp "github.com/orderstack/commerce-api/internal/domains/products/application"
	productsports "github.com/orderstack/commerce-api/internal/domains/products/ports"

	orderslocal "github.com/orderstack/commerce-api/internal/domains/orders/adapters/local"
	ordersmemory "github.com/orderstack/commerce-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/orderstack/commerce-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/orderstack/commerce-api/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/orderstack/commerce-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/orderstack/commerce-api/internal/domains/orders/application"
	ordersports "github.com/orderstack/commerce-api/internal/domains/orders/ports"

	"github.com/orderstack/commerce-api/internal/httpapi"
	"github.com/orderstack/commerce-api/internal/platform/migrations"
	platformobservability "github.com/orderstack/commerce-api/internal/platform/observability"
	platformpostgres "github.com/orderstack/commerce-api/internal/platform/postgres"
)

const serviceName = "commerce-api"

// Repositories bundles the storage adapters shared by the services.
type Repositories struct {
	Customers   customersports.Repository
	Products    productsports.Repository
	Orders      ordersports.Repository
	Idempotency ordersports.IdempotencyStore
}

// Run boots the commerce HTTP API with observability, repositories, and
// workflows wired.
func Run(ctx context.Context) error {
	cfg := LoadConfig()
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	repos, cleanupRepos := BuildRepositories(ctx, cfg, logger)
	defer cleanupRepos()

	customerService := customersapp.NewService(repos.Customers)
	productService := productsapp.NewService(repos.Products)
	coreOrderService := ordersapp.NewService(
		repos.Orders,
		orderslocal.NewCustomerDirectory(repos.Customers),
		orderslocal.NewProductCatalog(repos.Products),
		ordersapp.WithIdempotencyStore(repos.Idempotency),
	)
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := ConnectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline CreateOrder", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := httpapi.ApiHandleFunctions{
		CustomerAPI: httpapi.NewCustomerAPI(customerService),
		ProductAPI:  httpapi.NewProductAPI(productService),
		OrderAPI:    httpapi.NewOrderAPI(orderService, orderWorkflows),
	}

	router := httpapi.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("commerce API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("commerce API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// BuildRepositories wires Postgres-backed adapters when a DSN is configured,
// falling back to in-memory adapters otherwise.
func BuildRepositories(ctx context.Context, cfg Config, logger *slog.Logger) (Repositories, func()) {
	memory := Repositories{
		Customers:   customersmemory.NewRepository(),
		Products:    productsmemory.NewRepository(),
		Orders:      ordersmemory.NewRepository(),
		Idempotency: ordersmemory.NewIdempotencyStore(),
	}
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return memory, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return memory, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return memory, func() {}
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		_ = sqlDB.Close()
		return memory, func() {}
	}
	logger.Info("repositories configured with postgres")
	return Repositories{
		Customers:   customerspostgres.NewRepository(db),
		Products:    productspostgres.NewRepository(db),
		Orders:      orderspostgres.NewRepository(db),
		Idempotency: orderspostgres.NewIdempotencyStore(db),
	}, func() { _ = sqlDB.Close() }
}

// ConnectTemporalClient dials the Temporal cluster configured in cfg.
func ConnectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
