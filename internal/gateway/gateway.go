// Package gateway provides the client for the remote cart API.
//
// The gateway is the boundary that would, in a non-mock deployment, persist
// cart state server-side. Each call either resolves with a full cart snapshot
// or fails with an error; in the current deployment the backend returns one
// canned snapshot regardless of the request, so callers must never assume the
// returned snapshot reflects what they sent.
package gateway

import (
	"context"
	"fmt"

	"github.com/guttosm/cart-service/internal/domain/model"
)

// Operation names used in metrics and logs.
const (
	OpFetch  = "fetch"
	OpAdd    = "add"
	OpUpdate = "update"
	OpRemove = "remove"
)

// Gateway is the remote cart service boundary consumed by the sync layer.
type Gateway interface {
	// FetchCart retrieves the remote cart snapshot.
	FetchCart(ctx context.Context) (*model.CartData, error)
	// AddItem confirms an add of quantity units of a product.
	AddItem(ctx context.Context, productID int64, quantity int) (*model.CartData, error)
	// UpdateItem confirms a quantity change for a cart line item.
	UpdateItem(ctx context.Context, lineID int64, quantity int) (*model.CartData, error)
	// RemoveItem confirms the removal of a cart line item.
	RemoveItem(ctx context.Context, lineID int64) (*model.CartData, error)
}

// APIError is a rejection from the cart API: either a transport-level
// non-2xx status or a success:false envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error formats the rejection for logs.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("cart api: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("cart api: %s (status %d)", e.Message, e.StatusCode)
}
