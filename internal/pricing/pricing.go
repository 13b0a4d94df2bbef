// Package pricing implements the cart pricing model: per-item discounted
// prices, line subtotals and the derived cart summary.
//
// Every function here is pure and deterministic. All monetary values are
// rounded to 2 decimal places at each step, so results are stable regardless
// of the order operations are applied in.
package pricing

import (
	"math"

	"github.com/guttosm/cart-service/internal/domain/model"
)

const (
	// TaxRate is the flat tax applied to the cart subtotal.
	TaxRate = 0.10
	// FlatShipping is charged once for any non-empty cart.
	FlatShipping = 10.00
)

// Round2 rounds a monetary value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DiscountedUnitPrice returns the unit price after applying the discount
// percentage (0-100), rounded to 2 decimals. A zero discount returns the
// price untouched so the non-discounted path cannot pick up rounding noise.
func DiscountedUnitPrice(price, discountPercentage float64) float64 {
	if discountPercentage == 0 {
		return price
	}
	return Round2(price - price*discountPercentage/100)
}

// LineSubtotal returns unitPrice * quantity rounded to 2 decimals.
func LineSubtotal(unitPrice float64, quantity int) float64 {
	return Round2(unitPrice * float64(quantity))
}

// NewLineItem builds a cart line item from a catalog product snapshot.
// The discount is applied once here; the resulting unit price stays frozen
// for the lifetime of the line item.
func NewLineItem(p model.Product, id int64, quantity int) model.LineItem {
	unit := DiscountedUnitPrice(p.Price, p.DiscountPercentage)
	return model.LineItem{
		ID:                 id,
		ProductID:          p.ID,
		Title:              p.Title,
		UnitPrice:          unit,
		OriginalPrice:      p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Quantity:           quantity,
		Subtotal:           LineSubtotal(unit, quantity),
		Thumbnail:          p.Thumbnail,
	}
}

// Summarize computes the derived cart summary for the given line items.
// An empty cart yields all zeros, including shipping.
func Summarize(items []model.LineItem) model.Summary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Subtotal
	}

	var shipping float64
	if len(items) > 0 {
		shipping = FlatShipping
	}

	subtotal = Round2(subtotal)
	tax := Round2(subtotal * TaxRate)

	return model.Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: Round2(shipping),
		Total:    Round2(subtotal + tax + shipping),
	}
}
