package mapper

import (
	productsdomain "github.com/orderstack/commerce-api/internal/domains/products/domain"
	productsports "github.com/orderstack/commerce-api/internal/domains/products/ports"
)

// Product represents the transport-layer shape of a catalog item.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// CreateProductRequest is the payload accepted when adding a catalog item.
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// ToCreateInput converts a transport request into the application input.
func ToCreateInput(req CreateProductRequest) productsports.CreateProductInput {
	return productsports.CreateProductInput{Name: req.Name, Price: req.Price, Quantity: req.Quantity}
}

// FromDomain converts a domain product to the transport representation.
func FromDomain(product *productsdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: product.Quantity,
	}
}

// FromDomainList converts a slice of domain products.
func FromDomainList(products []*productsdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomain(product))
	}
	return result
}
