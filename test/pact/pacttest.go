//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "commerce-api"
	ConsumerName = "storefront"

	StateCatalogBaseline = "catalog and customers baseline"
	StateOrderExists     = "order 7b0d1a1e exists"
	StateOrderMissing    = "no order with the requested id"
)

const (
	ExistingCustomerID = "0b8f1c9a-6b7a-4c3e-9a39-3f6f2a9d1e01"
	ExistingProductID  = "4c1d2e3f-8a9b-4c5d-8e7f-1a2b3c4d5e02"
	ExistingOrderID    = "7b0d1a1e-2c3d-4e5f-8a9b-0c1d2e3f4a03"
	MissingOrderID     = "ffffffff-0000-4000-8000-000000000404"
)

const (
	exampleCustomerName  = "Pact Customer"
	exampleCustomerEmail = "pact.customer@example.com"
	exampleProductName   = "Pact Widget"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleCustomerPayload provides stable test data for customer interactions.
func ExampleCustomerPayload() map[string]any {
	return map[string]any{
		"id":    ExistingCustomerID,
		"name":  exampleCustomerName,
		"email": exampleCustomerEmail,
	}
}

// ExampleProductPayload provides stable test data for product interactions.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"id":       ExistingProductID,
		"name":     exampleProductName,
		"price":    19.99,
		"quantity": 25,
	}
}

// ExampleOrderRequestPayload provides the create-order request body.
func ExampleOrderRequestPayload() map[string]any {
	return map[string]any{
		"customerId": ExistingCustomerID,
		"lines": []map[string]any{
			{"productId": ExistingProductID, "quantity": 2},
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
