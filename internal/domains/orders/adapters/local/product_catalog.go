package local

import (
	"context"
	"errors"

	"github.com/orderstack/commerce-api/internal/domains/orders/ports"
	productsdomain "github.com/orderstack/commerce-api/internal/domains/products/domain"
	productsports "github.com/orderstack/commerce-api/internal/domains/products/ports"
)

var _ ports.ProductCatalog = (*ProductCatalog)(nil)

// ProductCatalog resolves and mutates products through the products repository.
type ProductCatalog struct {
	repo productsports.Repository
}

func NewProductCatalog(repo productsports.Repository) *ProductCatalog {
	return &ProductCatalog{repo: repo}
}

func (c *ProductCatalog) FindAllByID(ctx context.Context, ids []string) ([]ports.CatalogProduct, error) {
	products, err := c.repo.FindAllByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toCatalogProducts(products), nil
}

// UpdateQuantity translates the products context's failures into the
// workflow's vocabulary: a vanished product is ErrProductNotFound, an
// exhausted one is ErrOutOfStock.
func (c *ProductCatalog) UpdateQuantity(ctx context.Context, updates []ports.QuantityUpdate) ([]ports.CatalogProduct, error) {
	converted := make([]productsports.QuantityUpdate, 0, len(updates))
	for _, update := range updates {
		converted = append(converted, productsports.QuantityUpdate{
			ProductID: update.ProductID,
			Quantity:  update.Quantity,
		})
	}
	products, err := c.repo.UpdateQuantity(ctx, converted)
	if err != nil {
		if errors.Is(err, productsports.ErrNotFound) {
			return nil, ports.ErrProductNotFound
		}
		if errors.Is(err, productsports.ErrStockExhausted) {
			return nil, ports.ErrOutOfStock
		}
		return nil, err
	}
	return toCatalogProducts(products), nil
}

func toCatalogProducts(products []*productsdomain.Product) []ports.CatalogProduct {
	result := make([]ports.CatalogProduct, 0, len(products))
	for _, product := range products {
		result = append(result, ports.CatalogProduct{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Quantity: product.Quantity,
		})
	}
	return result
}
