package pricing

import (
	"testing"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

// TestDiscountedUnitPrice tests discount application and rounding.
func TestDiscountedUnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		expected float64
	}{
		{
			name:     "zero discount returns price untouched",
			price:    9.99,
			discount: 0,
			expected: 9.99,
		},
		{
			name:     "10 percent off 129.99 rounds to 116.99",
			price:    129.99,
			discount: 10,
			expected: 116.99,
		},
		{
			name:     "full discount yields zero",
			price:    49.50,
			discount: 100,
			expected: 0,
		},
		{
			name:     "fractional discount percentage",
			price:    9.99,
			discount: 7.17,
			expected: 9.27,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DiscountedUnitPrice(tt.price, tt.discount), 1e-9)
		})
	}
}

// TestLineSubtotal tests subtotal rounding.
func TestLineSubtotal(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		expected  float64
	}{
		{name: "single unit", unitPrice: 9.99, quantity: 1, expected: 9.99},
		{name: "multiple units", unitPrice: 9.99, quantity: 3, expected: 29.97},
		{name: "rounding of repeated fractions", unitPrice: 1.105, quantity: 3, expected: 3.32},
		{name: "zero quantity", unitPrice: 9.99, quantity: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LineSubtotal(tt.unitPrice, tt.quantity), 1e-9)
		})
	}
}

// TestNewLineItem verifies the add-time product snapshot semantics.
func TestNewLineItem(t *testing.T) {
	t.Run("no discount", func(t *testing.T) {
		item := NewLineItem(model.Product{
			ID:        1,
			Title:     "Essence Mascara Lash Princess",
			Price:     9.99,
			Thumbnail: "thumb.webp",
		}, 10, 1)

		assert.Equal(t, int64(10), item.ID)
		assert.Equal(t, int64(1), item.ProductID)
		assert.Equal(t, "Essence Mascara Lash Princess", item.Title)
		assert.InDelta(t, 9.99, item.UnitPrice, 1e-9)
		assert.InDelta(t, 9.99, item.OriginalPrice, 1e-9)
		assert.Equal(t, 1, item.Quantity)
		assert.InDelta(t, 9.99, item.Subtotal, 1e-9)
		assert.Equal(t, "thumb.webp", item.Thumbnail)
	})

	t.Run("discount applied once at add time", func(t *testing.T) {
		item := NewLineItem(model.Product{
			ID:                 7,
			Title:              "Chanel Coco Noir Eau De",
			Price:              129.99,
			DiscountPercentage: 10,
		}, 11, 1)

		assert.InDelta(t, 116.99, item.UnitPrice, 1e-9)
		assert.InDelta(t, 129.99, item.OriginalPrice, 1e-9)
		assert.InDelta(t, 10.0, item.DiscountPercentage, 1e-9)
		assert.InDelta(t, 116.99, item.Subtotal, 1e-9)
	})
}

// TestSummarize tests the cart summary formulas.
func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		items    []model.LineItem
		expected model.Summary
	}{
		{
			name:     "empty cart yields all zeros",
			items:    nil,
			expected: model.Summary{},
		},
		{
			name: "single item adds flat shipping",
			items: []model.LineItem{
				{UnitPrice: 9.99, Quantity: 1, Subtotal: 9.99},
			},
			expected: model.Summary{Subtotal: 9.99, Tax: 1.00, Shipping: 10.00, Total: 20.99},
		},
		{
			name: "canned mock cart totals",
			items: []model.LineItem{
				{UnitPrice: 9.99, Quantity: 2, Subtotal: 19.98},
				{UnitPrice: 129.99, Quantity: 1, Subtotal: 129.99},
				{UnitPrice: 1.99, Quantity: 5, Subtotal: 9.95},
			},
			expected: model.Summary{Subtotal: 159.92, Tax: 15.99, Shipping: 10.00, Total: 185.91},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.items)
			assert.InDelta(t, tt.expected.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.expected.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.expected.Shipping, got.Shipping, 1e-9)
			assert.InDelta(t, tt.expected.Total, got.Total, 1e-9)
		})
	}
}

// TestSummarizeDeterminism ensures the summary is a pure function of the items.
func TestSummarizeDeterminism(t *testing.T) {
	items := []model.LineItem{
		{UnitPrice: 19.99, Quantity: 2, Subtotal: 39.98},
		{UnitPrice: 4.49, Quantity: 4, Subtotal: 17.96},
	}

	first := Summarize(items)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Summarize(items))
	}
	assert.InDelta(t, first.Subtotal+first.Tax+first.Shipping, first.Total, 1e-9)
}
