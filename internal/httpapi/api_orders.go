package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/orderstack/commerce-api/internal/domains/orders/adapters/http/mapper"
	ordersdomain "github.com/orderstack/commerce-api/internal/domains/orders/domain"
	ordersports "github.com/orderstack/commerce-api/internal/domains/orders/ports"
)

// IdempotencyKeyHeader carries the client-supplied replay key for order creation.
const IdempotencyKeyHeader = "Idempotency-Key"

// OrderAPI wires HTTP transport with the orders bounded context service and
// workflows.
type OrderAPI struct {
	service   ordersports.Service
	workflows ordersports.WorkflowOrchestrator
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service, workflows ordersports.WorkflowOrchestrator) OrderAPI {
	return OrderAPI{service: service, workflows: workflows}
}

// Post /v1/orders
// Place a new order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload ordermapper.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	input := ordermapper.ToCreateInput(payload, c.GetHeader(IdempotencyKeyHeader))
	created, err := api.createOrder(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordermapper.FromDomain(created))
}

func (api *OrderAPI) createOrder(ctx context.Context, input ordersports.CreateOrderInput) (*ordersdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.CreateOrder(ctx, input)
	}
	return api.service.CreateOrder(ctx, input)
}

// Get /v1/orders
// List placed orders
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainList(orders))
}

// Get /v1/orders/:orderId
// Find order by ID
func (api *OrderAPI) GetOrderByID(c *gin.Context) {
	order, err := api.service.GetOrderByID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomain(order))
}
