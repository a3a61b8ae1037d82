package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	productmapper "github.com/orderstack/commerce-api/internal/domains/products/adapters/http/mapper"
	productsports "github.com/orderstack/commerce-api/internal/domains/products/ports"
)

// ProductAPI wires HTTP transport with the products bounded context.
type ProductAPI struct {
	service productsports.Service
}

// NewProductAPI creates a ProductAPI backed by the provided service.
func NewProductAPI(service productsports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// Post /v1/products
// Add a product to the catalog
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	var payload productmapper.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := api.service.CreateProduct(c.Request.Context(), productmapper.ToCreateInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, productmapper.FromDomain(created))
}

// Get /v1/products
// List the catalog, or look up a single product with ?name=
func (api *ProductAPI) ListProducts(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		product, err := api.service.FindByName(c.Request.Context(), name)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, []any{productmapper.FromDomain(product)})
		return
	}
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainList(products))
}
