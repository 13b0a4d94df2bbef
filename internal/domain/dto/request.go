// Package dto defines Data Transfer Objects for the cart API.
//
// DTOs decouple the HTTP layer from the domain model. The mock cart API
// validates request bodies even though, by contract, it ignores their
// contents when building its canned response.
package dto

// AddToCartRequest is the JSON body for POST /api/cart/add.
//
// @Description Request to add a product to the cart
// @Example {"productId": 1, "quantity": 1}
type AddToCartRequest struct {
	// ProductID is the catalog product to add. Must be greater than 0.
	ProductID int64 `json:"productId" binding:"required,gt=0" example:"1" minimum:"1"`
	// Quantity is the number of units to add. Must be greater than 0.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"1" minimum:"1"`
} // @name AddToCartRequest

// UpdateCartItemRequest is the JSON body for PUT /api/cart/update/{id}.
// A quantity of 0 removes the line item.
//
// @Description Request to change a cart line item quantity
// @Example {"quantity": 3}
type UpdateCartItemRequest struct {
	// Quantity is the new quantity. Must not be negative; 0 removes the item.
	Quantity int `json:"quantity" binding:"gte=0" example:"3" minimum:"0"`
} // @name UpdateCartItemRequest

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the formatted validation message.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidProductID is returned when productId is missing or not positive.
	ErrInvalidProductID = &ValidationError{
		Field:   "productId",
		Message: "must be a positive integer",
	}
	// ErrInvalidQuantity is returned when quantity is not positive.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
	// ErrNegativeQuantity is returned when an update quantity is negative.
	ErrNegativeQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must not be negative",
	}
)

// Validate performs custom validation on the add request.
func (r *AddToCartRequest) Validate() error {
	if r.ProductID <= 0 {
		return ErrInvalidProductID
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Validate performs custom validation on the update request.
func (r *UpdateCartItemRequest) Validate() error {
	if r.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
