// Package i18n provides internationalization support for the cart service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInvalidItemID indicates an unparsable cart item id path parameter.
	ErrKeyInvalidItemID = "error.invalid_item_id"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyValidationProductID indicates invalid productId validation.
	ErrKeyValidationProductID = "error.validation.product_id"
	// ErrKeyValidationQuantity indicates invalid quantity validation.
	ErrKeyValidationQuantity = "error.validation.quantity"
)

// Success message translation keys.
const (
	// SuccessKeyCartRetrieved indicates the cart was fetched.
	SuccessKeyCartRetrieved = "success.cart_retrieved"
	// SuccessKeyCartItemAdded indicates an item was added.
	SuccessKeyCartItemAdded = "success.cart_item_added"
	// SuccessKeyCartItemUpdated indicates an item quantity was updated.
	SuccessKeyCartItemUpdated = "success.cart_item_updated"
	// SuccessKeyCartItemRemoved indicates an item was removed.
	SuccessKeyCartItemRemoved = "success.cart_item_removed"
)
