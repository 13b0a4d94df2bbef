package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-service/internal/domain/dto"
	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/i18n"
)

// CartHandler serves the mock cart API.
//
// The mock contract is intentionally blunt: every route validates its input
// and then responds with the same canned cart snapshot, regardless of what
// was sent. The snapshot exists so the sync layer has a realistic backend to
// talk to; it is never the source of truth for cart state.
type CartHandler struct{}

// NewCartHandler creates a new CartHandler.
func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

// RegisterPublicRoutes registers the cart routes on the API group.
func (h *CartHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.GET("", h.GetCart)
	cart.POST("/add", h.AddToCart)
	cart.PUT("/update/:id", h.UpdateCartItem)
	cart.DELETE("/remove/:id", h.RemoveCartItem)
}

// cannedCart returns the static cart snapshot every route responds with.
func cannedCart() model.CartData {
	return model.CartData{
		Items: []model.LineItem{
			{
				ID:        1,
				ProductID: 1,
				Title:     "Essence Mascara Lash Princess",
				UnitPrice: 9.99,
				Quantity:  2,
				Subtotal:  19.98,
				Thumbnail: "https://cdn.dummyjson.com/product-images/beauty/essence-mascara-lash-princess/thumbnail.webp",
			},
			{
				ID:        2,
				ProductID: 7,
				Title:     "Chanel Coco Noir Eau De",
				UnitPrice: 129.99,
				Quantity:  1,
				Subtotal:  129.99,
				Thumbnail: "https://cdn.dummyjson.com/product-images/fragrances/chanel-coco-noir-eau-de/thumbnail.webp",
			},
			{
				ID:        3,
				ProductID: 16,
				Title:     "Apple",
				UnitPrice: 1.99,
				Quantity:  5,
				Subtotal:  9.95,
				Thumbnail: "https://cdn.dummyjson.com/product-images/groceries/apple/thumbnail.webp",
			},
		},
		Summary: model.Summary{
			Subtotal: 159.92,
			Tax:      15.99,
			Shipping: 10.00,
			Total:    185.91,
		},
	}
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get cart contents
// @Description  Returns the cart snapshot. This mock endpoint always returns the same canned cart.
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.CartResponse "Cart snapshot"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	NewResponseBuilder(c).CartOK(cannedCart(), i18n.SuccessKeyCartRetrieved)
}

// AddToCart handles POST /api/cart/add requests.
//
// @Summary      Add item to cart
// @Description  Validates the request body and returns the cart snapshot. By mock contract the body contents are ignored.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        request body dto.AddToCartRequest true "Product to add"
// @Success      200 {object} dto.CartResponse "Cart snapshot"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/add [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	// The request body is validated and then, by mock contract, discarded.
	if _, err := BuildRequestAndValidate[dto.AddToCartRequest](c); err != nil {
		if vErr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithDetails(http.StatusBadRequest, dto.ErrCodeInvalidRequest,
				validationKey(vErr), vErr.Error(), err)
			return
		}
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	builder.CartOK(cannedCart(), i18n.SuccessKeyCartItemAdded)
}

// UpdateCartItem handles PUT /api/cart/update/:id requests.
//
// @Summary      Update cart item quantity
// @Description  Validates the path parameter and request body and returns the cart snapshot. By mock contract the requested change is ignored.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        id path int true "Cart line item id"
// @Param        request body dto.UpdateCartItemRequest true "New quantity"
// @Success      200 {object} dto.CartResponse "Cart snapshot"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/update/{id} [put]
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if _, err := parseItemID(c); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidItemID, err)
		return
	}

	if _, err := BuildRequestAndValidate[dto.UpdateCartItemRequest](c); err != nil {
		if vErr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithDetails(http.StatusBadRequest, dto.ErrCodeInvalidRequest,
				validationKey(vErr), vErr.Error(), err)
			return
		}
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	builder.CartOK(cannedCart(), i18n.SuccessKeyCartItemUpdated)
}

// RemoveCartItem handles DELETE /api/cart/remove/:id requests.
//
// @Summary      Remove item from cart
// @Description  Validates the path parameter and returns the cart snapshot. By mock contract the removal is ignored.
// @Tags         Cart
// @Produce      json
// @Param        id path int true "Cart line item id"
// @Success      200 {object} dto.CartResponse "Cart snapshot"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/remove/{id} [delete]
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if _, err := parseItemID(c); err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidItemID, err)
		return
	}

	builder.CartOK(cannedCart(), i18n.SuccessKeyCartItemRemoved)
}

// parseItemID parses the :id path parameter as a positive integer.
func parseItemID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, &dto.ValidationError{Field: "id", Message: "must be a positive integer"}
	}
	return id, nil
}

// validationKey maps a validation error to its translation key.
func validationKey(err *dto.ValidationError) string {
	if err.Field == "productId" {
		return i18n.ErrKeyValidationProductID
	}
	return i18n.ErrKeyValidationQuantity
}
