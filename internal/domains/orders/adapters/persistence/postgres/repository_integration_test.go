//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	orderspostgres "github.com/orderstack/commerce-api/internal/domains/orders/adapters/persistence/postgres"
	"github.com/orderstack/commerce-api/internal/domains/orders/domain"
	"github.com/orderstack/commerce-api/internal/domains/orders/ports"
	"github.com/orderstack/commerce-api/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("commerce_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func newOrder(t *testing.T, customerID string, lines ...domain.Line) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(uuid.NewString(), customerID, lines)
	require.NoError(t, err)
	return order
}

func newLine(t *testing.T, price float64, quantity int64) domain.Line {
	t.Helper()
	line, err := domain.NewLine(uuid.NewString(), price, quantity)
	require.NoError(t, err)
	return line
}

func TestPostgresRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := orderspostgres.NewRepository(db)
	ctx := context.Background()

	order := newOrder(t, uuid.NewString(), newLine(t, 19.99, 2), newLine(t, 5.50, 1))
	created, err := repo.Create(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, order.ID, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.CustomerID, fetched.CustomerID)
	require.Len(t, fetched.Lines, 2)
	assert.Equal(t, 19.99, fetched.Lines[0].Price)
	assert.Equal(t, int64(2), fetched.Lines[0].Quantity)
	assert.InDelta(t, 45.48, fetched.Total(), 1e-9)
}

func TestPostgresRepository_GetByID_Unknown(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := orderspostgres.NewRepository(db)
	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPostgresRepository_ListGroupsLinesByOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := orderspostgres.NewRepository(db)
	ctx := context.Background()

	first := newOrder(t, uuid.NewString(), newLine(t, 1, 1), newLine(t, 2, 2))
	second := newOrder(t, uuid.NewString(), newLine(t, 3, 3))
	_, err := repo.Create(ctx, first)
	require.NoError(t, err)
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byID := map[string]*domain.Order{}
	for _, o := range all {
		byID[o.ID] = o
	}
	assert.Len(t, byID[first.ID].Lines, 2)
	assert.Len(t, byID[second.ID].Lines, 1)
}

func TestPostgresIdempotencyStore_SaveAndReplay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	store := orderspostgres.NewIdempotencyStore(db)
	ctx := context.Background()

	missing, err := store.Get(ctx, "unknown-key")
	require.NoError(t, err)
	assert.Nil(t, missing)

	record := ports.IdempotencyRecord{Key: "retry-abc", RequestHash: "hash-1", OrderID: uuid.NewString()}
	saved, err := store.Save(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, record.OrderID, saved.OrderID)

	replayed, err := store.Save(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, record.OrderID, replayed.OrderID)

	conflicting := ports.IdempotencyRecord{Key: "retry-abc", RequestHash: "hash-2", OrderID: uuid.NewString()}
	stored, err := store.Save(ctx, conflicting)
	require.ErrorIs(t, err, ports.ErrIdempotencyConflict)
	assert.Equal(t, record.OrderID, stored.OrderID)
}
