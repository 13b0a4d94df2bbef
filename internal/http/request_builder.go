package http

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/i18n"
)

// Response DTO pools for reducing allocations.
var (
	cartResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.CartResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

// getCartResponse retrieves a CartResponse from the pool.
func getCartResponse() *dto.CartResponse {
	if resp, ok := cartResponsePool.Get().(*dto.CartResponse); ok {
		return resp
	}
	return &dto.CartResponse{}
}

// putCartResponse returns a CartResponse to the pool.
func putCartResponse(resp *dto.CartResponse) {
	resp.Success = false
	resp.Data = model.CartData{}
	resp.Message = ""
	cartResponsePool.Put(resp)
}

// getErrorResponse retrieves an ErrorResponse from the pool.
func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

// putErrorResponse returns an ErrorResponse to the pool.
func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Success = false
	resp.Message = ""
	resp.Error = nil
	errorResponsePool.Put(resp)
}

// RequestBuilder provides generic request building and unmarshaling capabilities.
type RequestBuilder struct {
	c *gin.Context
}

// NewRequestBuilder creates a new request builder for the given context.
func NewRequestBuilder(c *gin.Context) *RequestBuilder {
	return &RequestBuilder{c: c}
}

// Bind unmarshals the request body into the provided type.
func (b *RequestBuilder) Bind(v interface{}) error {
	if err := b.c.ShouldBindJSON(v); err != nil {
		return err
	}
	return nil
}

// BuildRequest is a generic helper to build a request from gin context.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	builder := NewRequestBuilder(c)
	var req T
	if err := builder.Bind(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validator interface for types that can validate themselves.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate builds a request and validates it if it implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if validator, ok := any(req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ResponseBuilder builds the cart API envelopes. Uses sync.Pool for DTO reuse
// to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Cart sends a cart snapshot wrapped in the success envelope. The message key
// is translated for the request locale.
func (b *ResponseBuilder) Cart(statusCode int, data model.CartData, messageKey string) {
	locale := i18n.GetLocale(b.c)
	message := i18n.GetTranslator().Translate(messageKey, locale)

	resp := getCartResponse()
	resp.Success = true
	resp.Data = data
	resp.Message = message

	// Gin's JSON serialization happens synchronously, so returning the DTO to
	// the pool right after is safe.
	b.c.JSON(statusCode, resp)
	putCartResponse(resp)
}

// CartOK sends a 200 OK cart envelope.
func (b *ResponseBuilder) CartOK(data model.CartData, messageKey string) {
	b.Cart(http.StatusOK, data, messageKey)
}

// Error sends an error envelope with the given status, code and message key.
func (b *ResponseBuilder) Error(statusCode int, code, messageKey string, err error) {
	locale := i18n.GetLocale(b.c)
	message := i18n.GetTranslator().Translate(messageKey, locale)

	resp := getErrorResponse()
	resp.Success = false
	resp.Message = message
	resp.Error = &dto.ErrorDetail{Code: code}

	// Surface the error to the error handler middleware for logging.
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// ErrorWithDetails sends an error envelope carrying validation details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, code, messageKey string, details interface{}, err error) {
	locale := i18n.GetLocale(b.c)
	message := i18n.GetTranslator().Translate(messageKey, locale)

	resp := getErrorResponse()
	resp.Success = false
	resp.Message = message
	resp.Error = &dto.ErrorDetail{Code: code, Details: details}

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}
