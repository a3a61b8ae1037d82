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

	productspostgres "github.com/orderstack/commerce-api/internal/domains/products/adapters/persistence/postgres"
	"github.com/orderstack/commerce-api/internal/domains/products/domain"
	"github.com/orderstack/commerce-api/internal/domains/products/ports"
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

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
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

func seedProduct(t *testing.T, repo *productspostgres.Repository, name string, price float64, quantity int64) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(uuid.NewString(), name, price, quantity)
	require.NoError(t, err)
	saved, err := repo.Save(context.Background(), product)
	require.NoError(t, err)
	return saved
}

func TestPostgresRepository_SaveAndFindByName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := productspostgres.NewRepository(db)
	saved := seedProduct(t, repo, "Widget", 19.99, 25)

	found, err := repo.FindByName(context.Background(), "Widget")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, 19.99, found.Price)
	assert.Equal(t, int64(25), found.Quantity)

	_, err = repo.FindByName(context.Background(), "ghost")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPostgresRepository_FindAllByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := productspostgres.NewRepository(db)
	p1 := seedProduct(t, repo, "Widget", 1, 5)
	p2 := seedProduct(t, repo, "Gadget", 2, 5)
	seedProduct(t, repo, "Sprocket", 3, 5)

	found, err := repo.FindAllByID(context.Background(), []string{p1.ID, p2.ID, uuid.NewString()})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	byID := map[string]*domain.Product{}
	for _, p := range found {
		byID[p.ID] = p
	}
	assert.Contains(t, byID, p1.ID)
	assert.Contains(t, byID, p2.ID)
}

func TestPostgresRepository_UpdateQuantity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := productspostgres.NewRepository(db)
	ctx := context.Background()
	p1 := seedProduct(t, repo, "Widget", 1, 10)
	p2 := seedProduct(t, repo, "Gadget", 2, 4)

	updated, err := repo.UpdateQuantity(ctx, []ports.QuantityUpdate{
		{ProductID: p1.ID, Quantity: 3},
		{ProductID: p2.ID, Quantity: 4},
	})
	require.NoError(t, err)
	require.Len(t, updated, 2)

	quantities := map[string]int64{}
	for _, p := range updated {
		quantities[p.ID] = p.Quantity
	}
	assert.Equal(t, int64(7), quantities[p1.ID])
	assert.Equal(t, int64(0), quantities[p2.ID])
}

func TestPostgresRepository_UpdateQuantity_RollsBackOnExhaustedStock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := productspostgres.NewRepository(db)
	ctx := context.Background()
	p1 := seedProduct(t, repo, "Widget", 1, 10)
	p2 := seedProduct(t, repo, "Gadget", 2, 2)

	_, err := repo.UpdateQuantity(ctx, []ports.QuantityUpdate{
		{ProductID: p1.ID, Quantity: 3},
		{ProductID: p2.ID, Quantity: 5},
	})
	require.ErrorIs(t, err, ports.ErrStockExhausted)

	found, err := repo.FindAllByID(ctx, []string{p1.ID, p2.ID})
	require.NoError(t, err)
	quantities := map[string]int64{}
	for _, p := range found {
		quantities[p.ID] = p.Quantity
	}
	assert.Equal(t, int64(10), quantities[p1.ID])
	assert.Equal(t, int64(2), quantities[p2.ID])
}

func TestPostgresRepository_UpdateQuantity_UnknownProduct(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := productspostgres.NewRepository(db)
	_, err := repo.UpdateQuantity(context.Background(), []ports.QuantityUpdate{
		{ProductID: uuid.NewString(), Quantity: 1},
	})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPostgresRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := productspostgres.NewRepository(db)
	for _, name := range []string{"Widget", "Gadget", "Sprocket"} {
		seedProduct(t, repo, name, 1, 1)
	}

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
