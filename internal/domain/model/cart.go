// Package model defines the core domain entities for the cart service.
package model

// LineItem represents a single row in the shopping cart.
//
// A line item is an add-time snapshot of a catalog product: title, thumbnail
// and prices are copied when the item is created and never re-derived, even if
// the catalog product changes later. At most one line item exists per product
// (ProductID is unique within a cart); the line ID identifies the row itself.
//
// @Description Cart line item with pricing snapshot
// @Example {"id": 1, "productId": 1, "title": "Essence Mascara Lash Princess", "price": 9.99, "quantity": 2, "subtotal": 19.98}
type LineItem struct {
	// ID is the locally generated line identifier, unique per insertion.
	ID int64 `json:"id" example:"1"`
	// ProductID is the catalog product this line represents.
	ProductID int64 `json:"productId" example:"1"`
	// Title is the product title captured at add time.
	Title string `json:"title" example:"Essence Mascara Lash Princess"`
	// UnitPrice is the per-unit price after discount, rounded to 2 decimals.
	UnitPrice float64 `json:"price" example:"9.99"`
	// OriginalPrice is the pre-discount unit price, kept for strikethrough display.
	OriginalPrice float64 `json:"originalPrice,omitempty" example:"9.99"`
	// DiscountPercentage is the discount applied at add time (0-100).
	DiscountPercentage float64 `json:"discountPercentage,omitempty" example:"0"`
	// Quantity is the number of units, always >= 1 while the item exists.
	Quantity int `json:"quantity" example:"2"`
	// Subtotal is UnitPrice * Quantity rounded to 2 decimals. It is recomputed
	// on every quantity change and never mutated independently.
	Subtotal float64 `json:"subtotal" example:"19.98"`
	// Thumbnail is the product image URL captured at add time.
	Thumbnail string `json:"thumbnail" example:"https://cdn.dummyjson.com/product-images/beauty/essence-mascara-lash-princess/thumbnail.webp"`
}

// Summary holds the derived cart-level totals. It is always a pure function of
// the line items and is never persisted on its own.
//
// @Description Derived cart totals
type Summary struct {
	// Subtotal is the sum of all line subtotals, rounded to 2 decimals.
	Subtotal float64 `json:"subtotal" example:"159.92"`
	// Tax is 10% of the subtotal, rounded to 2 decimals.
	Tax float64 `json:"tax" example:"15.99"`
	// Shipping is a flat 10.00 for non-empty carts, 0.00 otherwise.
	Shipping float64 `json:"shipping" example:"10.00"`
	// Total is Subtotal + Tax + Shipping, rounded to 2 decimals.
	Total float64 `json:"total" example:"185.91"`
}

// CartData is the items-plus-summary snapshot exchanged with the remote cart
// API and written to durable storage.
//
// @Description Cart snapshot with items and derived summary
type CartData struct {
	Items   []LineItem `json:"items"`
	Summary Summary    `json:"summary"`
}

// CloneItems returns a deep copy of the given line items. Callers use it to
// take rollback snapshots that cannot alias live store state.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
