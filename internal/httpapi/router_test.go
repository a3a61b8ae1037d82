package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customersmemory "github.com/orderstack/commerce-api/internal/domains/customers/adapters/memory"
	customersapp "github.com/orderstack/commerce-api/internal/domains/customers/application"
	orderslocal "github.com/orderstack/commerce-api/internal/domains/orders/adapters/local"
	ordersmemory "github.com/orderstack/commerce-api/internal/domains/orders/adapters/memory"
	ordersapp "github.com/orderstack/commerce-api/internal/domains/orders/application"
	productsmemory "github.com/orderstack/commerce-api/internal/domains/products/adapters/memory"
	productsapp "github.com/orderstack/commerce-api/internal/domains/products/application"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	customerRepo := customersmemory.NewRepository()
	productRepo := productsmemory.NewRepository()
	orderRepo := ordersmemory.NewRepository()

	customerService := customersapp.NewService(customerRepo)
	productService := productsapp.NewService(productRepo)
	orderService := ordersapp.NewService(
		orderRepo,
		orderslocal.NewCustomerDirectory(customerRepo),
		orderslocal.NewProductCatalog(productRepo),
		ordersapp.WithIdempotencyStore(ordersmemory.NewIdempotencyStore()),
	)

	return NewRouter(ApiHandleFunctions{
		CustomerAPI: NewCustomerAPI(customerService),
		ProductAPI:  NewProductAPI(productService),
		OrderAPI:    NewOrderAPI(orderService, nil),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return decoded
}

func createCustomer(t *testing.T, router *gin.Engine, name, email string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/v1/customers", map[string]any{"name": name, "email": email}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody(t, rec)["id"].(string)
}

func createProduct(t *testing.T, router *gin.Engine, name string, price float64, quantity int64) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/v1/products", map[string]any{"name": name, "price": price, "quantity": quantity}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody(t, rec)["id"].(string)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateOrder_EndToEnd(t *testing.T) {
	router := newTestRouter(t)
	customerID := createCustomer(t, router, "Ada", "ada@example.com")
	productID := createProduct(t, router, "Widget", 19.99, 10)

	rec := doJSON(t, router, http.MethodPost, "/v1/orders", map[string]any{
		"customerId": customerID,
		"lines":      []map[string]any{{"productId": productID, "quantity": 2}},
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	order := decodeBody(t, rec)
	assert.Equal(t, customerID, order["customerId"])
	assert.InDelta(t, 39.98, order["total"].(float64), 1e-9)

	getRec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/orders/%s", order["id"]), nil, nil)
	assert.Equal(t, http.StatusOK, getRec.Code)

	listRec := doJSON(t, router, http.MethodGet, "/v1/products?name=Widget", nil, nil)
	require.Equal(t, http.StatusOK, listRec.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, float64(8), products[0]["quantity"])
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	router := newTestRouter(t)
	productID := createProduct(t, router, "Widget", 19.99, 10)

	rec := doJSON(t, router, http.MethodPost, "/v1/orders", map[string]any{
		"customerId": "ghost",
		"lines":      []map[string]any{{"productId": productID, "quantity": 2}},
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}

func TestCreateOrder_OutOfStock(t *testing.T) {
	router := newTestRouter(t)
	customerID := createCustomer(t, router, "Ada", "ada@example.com")
	productID := createProduct(t, router, "Widget", 19.99, 3)

	rec := doJSON(t, router, http.MethodPost, "/v1/orders", map[string]any{
		"customerId": customerID,
		"lines":      []map[string]any{{"productId": productID, "quantity": 5}},
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateOrder_DuplicateLines(t *testing.T) {
	router := newTestRouter(t)
	customerID := createCustomer(t, router, "Ada", "ada@example.com")
	productID := createProduct(t, router, "Widget", 19.99, 10)

	rec := doJSON(t, router, http.MethodPost, "/v1/orders", map[string]any{
		"customerId": customerID,
		"lines": []map[string]any{
			{"productId": productID, "quantity": 1},
			{"productId": productID, "quantity": 2},
		},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_IdempotencyKeyReplaysOrder(t *testing.T) {
	router := newTestRouter(t)
	customerID := createCustomer(t, router, "Ada", "ada@example.com")
	productID := createProduct(t, router, "Widget", 19.99, 10)

	payload := map[string]any{
		"customerId": customerID,
		"lines":      []map[string]any{{"productId": productID, "quantity": 2}},
	}
	headers := map[string]string{IdempotencyKeyHeader: "retry-abc"}

	first := doJSON(t, router, http.MethodPost, "/v1/orders", payload, headers)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	second := doJSON(t, router, http.MethodPost, "/v1/orders", payload, headers)
	require.Equal(t, http.StatusCreated, second.Code, second.Body.String())

	assert.Equal(t, decodeBody(t, first)["id"], decodeBody(t, second)["id"])
}

func TestCreateProduct_DuplicateNameConflicts(t *testing.T) {
	router := newTestRouter(t)
	createProduct(t, router, "Widget", 19.99, 10)

	rec := doJSON(t, router, http.MethodPost, "/v1/products", map[string]any{"name": "Widget", "price": 1, "quantity": 1}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetCustomer_NotFound(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/v1/customers/ghost", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder_MalformedPayload(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{not-json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
