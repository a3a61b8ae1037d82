package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiHandleFunctions groups the per-context handler bundles.
type ApiHandleFunctions struct {
	CustomerAPI CustomerAPI
	ProductAPI  ProductAPI
	OrderAPI    OrderAPI
}

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(handlers ApiHandleFunctions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.POST("/customers", handlers.CustomerAPI.CreateCustomer)
		v1.GET("/customers/:customerId", handlers.CustomerAPI.GetCustomerByID)
		v1.GET("/customers", handlers.CustomerAPI.ListCustomers)

		v1.POST("/products", handlers.ProductAPI.CreateProduct)
		v1.GET("/products", handlers.ProductAPI.ListProducts)

		v1.POST("/orders", handlers.OrderAPI.CreateOrder)
		v1.GET("/orders", handlers.OrderAPI.ListOrders)
		v1.GET("/orders/:orderId", handlers.OrderAPI.GetOrderByID)
	}

	return router
}
