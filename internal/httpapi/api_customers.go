package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customermapper "github.com/orderstack/commerce-api/internal/domains/customers/adapters/http/mapper"
	customersports "github.com/orderstack/commerce-api/internal/domains/customers/ports"
)

// CustomerAPI wires HTTP transport with the customers bounded context.
type CustomerAPI struct {
	service customersports.Service
}

// NewCustomerAPI creates a CustomerAPI backed by the provided service.
func NewCustomerAPI(service customersports.Service) CustomerAPI {
	return CustomerAPI{service: service}
}

// Post /v1/customers
// Register a new customer
func (api *CustomerAPI) CreateCustomer(c *gin.Context) {
	var payload customermapper.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := api.service.CreateCustomer(c.Request.Context(), customermapper.ToCreateInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customermapper.FromDomain(created))
}

// Get /v1/customers/:customerId
// Find customer by ID
func (api *CustomerAPI) GetCustomerByID(c *gin.Context) {
	customer, err := api.service.GetCustomerByID(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customermapper.FromDomain(customer))
}

// Get /v1/customers
// List registered customers
func (api *CustomerAPI) ListCustomers(c *gin.Context) {
	customers, err := api.service.ListCustomers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customermapper.FromDomainList(customers))
}
