package dto

import "github.com/guttosm/cart-service/internal/domain/model"

// Error codes carried in the error envelope.
const (
	// ErrCodeInvalidRequest indicates an invalid request body or parameter.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
)

// CartResponse is the success envelope every cart route responds with.
//
// @Description Successful cart API response
type CartResponse struct {
	// Success is always true on this envelope.
	Success bool `json:"success" example:"true"`
	// Data is the cart snapshot.
	Data model.CartData `json:"data"`
	// Message is a human-readable status message.
	Message string `json:"message" example:"Cart retrieved successfully"`
} // @name CartResponse

// NewCartResponse wraps a cart snapshot in the success envelope.
func NewCartResponse(data model.CartData, message string) CartResponse {
	return CartResponse{Success: true, Data: data, Message: message}
}

// ErrorDetail carries the machine-readable part of an error response.
type ErrorDetail struct {
	Code    string      `json:"code" example:"invalid_request"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse is the failure envelope.
//
// @Description Cart API error response
type ErrorResponse struct {
	// Success is always false on this envelope.
	Success bool `json:"success" example:"false"`
	// Message is a human-readable description of the failure.
	Message string `json:"message" example:"Invalid request body"`
	// Error holds the machine-readable code and optional details.
	Error *ErrorDetail `json:"error,omitempty"`
} // @name ErrorResponse

// NewError creates an ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Error:   &ErrorDetail{Code: code},
	}
}

// WithDetails attaches details to the error envelope.
func (e ErrorResponse) WithDetails(details interface{}) ErrorResponse {
	if e.Error == nil {
		e.Error = &ErrorDetail{Code: ErrCodeInternal}
	}
	e.Error.Details = details
	return e
}
