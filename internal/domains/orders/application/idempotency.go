package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/orderstack/commerce-api/internal/domains/orders/ports"
)

type normalizedCreateOrderInput struct {
	CustomerID string               `json:"customerId"`
	Lines      []normalizedLineInput `json:"lines"`
}

type normalizedLineInput struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// FingerprintCreateOrder builds a deterministic hash of the create-order
// payload, excluding the idempotency key itself. Line order is preserved:
// the same products in a different order count as a different request.
func FingerprintCreateOrder(input ports.CreateOrderInput) (string, error) {
	normalized := normalizedCreateOrderInput{
		CustomerID: input.CustomerID,
		Lines:      make([]normalizedLineInput, 0, len(input.Lines)),
	}
	for _, line := range input.Lines {
		normalized.Lines = append(normalized.Lines, normalizedLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
