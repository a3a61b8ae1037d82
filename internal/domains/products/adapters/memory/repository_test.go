package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orderstack/commerce-api/internal/domains/products/domain"
	"github.com/orderstack/commerce-api/internal/domains/products/ports"
)

func seedProduct(t *testing.T, repo *Repository, id, name string, quantity int64) {
	t.Helper()
	product, err := domain.NewProduct(id, name, 9.99, quantity)
	require.NoError(t, err)
	_, err = repo.Save(context.Background(), product)
	require.NoError(t, err)
}

func TestFindAllByID_DeduplicatesAndSkipsUnknown(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "p1", "Widget", 5)
	seedProduct(t, repo, "p2", "Gadget", 5)

	found, err := repo.FindAllByID(context.Background(), []string{"p1", "p1", "missing", "p2"})
	require.NoError(t, err)
	require.Len(t, found, 2)

	byID := map[string]*domain.Product{}
	for _, p := range found {
		byID[p.ID] = p
	}
	require.Contains(t, byID, "p1")
	require.Contains(t, byID, "p2")
}

func TestUpdateQuantity_DecrementsByProductID(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "p1", "Widget", 10)
	seedProduct(t, repo, "p2", "Gadget", 4)

	updated, err := repo.UpdateQuantity(context.Background(), []ports.QuantityUpdate{
		{ProductID: "p2", Quantity: 4},
		{ProductID: "p1", Quantity: 3},
	})
	require.NoError(t, err)
	require.Len(t, updated, 2)

	p1, err := repo.FindByName(context.Background(), "Widget")
	require.NoError(t, err)
	require.Equal(t, int64(7), p1.Quantity)

	p2, err := repo.FindByName(context.Background(), "Gadget")
	require.NoError(t, err)
	require.Equal(t, int64(0), p2.Quantity)
}

func TestUpdateQuantity_AllOrNothing(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "p1", "Widget", 10)
	seedProduct(t, repo, "p2", "Gadget", 2)

	_, err := repo.UpdateQuantity(context.Background(), []ports.QuantityUpdate{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 5},
	})
	require.ErrorIs(t, err, ports.ErrStockExhausted)

	p1, err := repo.FindByName(context.Background(), "Widget")
	require.NoError(t, err)
	require.Equal(t, int64(10), p1.Quantity)
}

func TestUpdateQuantity_UnknownProduct(t *testing.T) {
	repo := NewRepository()
	seedProduct(t, repo, "p1", "Widget", 10)

	_, err := repo.UpdateQuantity(context.Background(), []ports.QuantityUpdate{
		{ProductID: "ghost", Quantity: 1},
	})
	require.ErrorIs(t, err, ports.ErrNotFound)
}
