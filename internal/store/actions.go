package store

import (
	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/pricing"
)

// Action is one transition of the cart state machine. The set of actions is
// closed: the unexported apply method keeps other packages from declaring new
// variants, so every transition the store can make is enumerated in this file.
//
// Each apply is a pure total function of the previous state. Side effects
// (persistence, remote calls) are layered on top by Store and the sync layer.
type Action interface {
	apply(State) State
}

// AddItem adds one unit of a product to the cart.
//
// If a line item for the same product already exists its quantity is
// incremented and the subtotal recomputed from the frozen unit price; the
// price is never re-derived from the product on increment. Otherwise a new
// line item is appended with quantity 1, carrying LineID.
type AddItem struct {
	Product model.Product
	// LineID is the id for a newly appended line. The store allocates it at
	// dispatch time; it is ignored when the product merges into an existing line.
	LineID int64
}

func (a AddItem) apply(s State) State {
	for i, item := range s.Items {
		if item.ProductID == a.Product.ID {
			items := model.CloneItems(s.Items)
			items[i].Quantity++
			items[i].Subtotal = pricing.LineSubtotal(items[i].UnitPrice, items[i].Quantity)
			s.Items = items
			return s
		}
	}

	items := make([]model.LineItem, 0, len(s.Items)+1)
	items = append(items, s.Items...)
	items = append(items, pricing.NewLineItem(a.Product, a.LineID, 1))
	s.Items = items
	return s
}

// UpdateQuantity sets the quantity of a line item (matched by line id, not
// product id). Quantity <= 0 removes the line entirely. Unknown ids are a
// silent no-op so repeated applications stay idempotent.
type UpdateQuantity struct {
	LineID   int64
	Quantity int
}

func (a UpdateQuantity) apply(s State) State {
	if a.Quantity <= 0 {
		return RemoveItem{LineID: a.LineID}.apply(s)
	}

	for i, item := range s.Items {
		if item.ID == a.LineID {
			items := model.CloneItems(s.Items)
			items[i].Quantity = a.Quantity
			items[i].Subtotal = pricing.LineSubtotal(items[i].UnitPrice, a.Quantity)
			s.Items = items
			return s
		}
	}
	return s
}

// RemoveItem removes a line item by id. Unknown ids are a silent no-op.
type RemoveItem struct {
	LineID int64
}

func (a RemoveItem) apply(s State) State {
	for i, item := range s.Items {
		if item.ID == a.LineID {
			items := make([]model.LineItem, 0, len(s.Items)-1)
			items = append(items, s.Items[:i]...)
			items = append(items, s.Items[i+1:]...)
			s.Items = items
			return s
		}
	}
	return s
}

// SetLoading sets the transient request-in-flight flag.
type SetLoading struct {
	Loading bool
}

func (a SetLoading) apply(s State) State {
	s.IsLoading = a.Loading
	return s
}

// SetError sets or clears (empty string) the transient error banner.
type SetError struct {
	Message string
}

func (a SetError) apply(s State) State {
	s.Err = a.Message
	return s
}

// ToggleCart flips the cart panel visibility.
type ToggleCart struct{}

func (ToggleCart) apply(s State) State {
	s.IsOpen = !s.IsOpen
	return s
}

// OpenCart shows the cart panel.
type OpenCart struct{}

func (OpenCart) apply(s State) State {
	s.IsOpen = true
	return s
}

// CloseCart hides the cart panel.
type CloseCart struct{}

func (CloseCart) apply(s State) State {
	s.IsOpen = false
	return s
}

// SetCartData replaces the item list wholesale. It is used for hydration from
// durable storage and for rollback to a pre-mutation snapshot. The summary in
// the payload is accepted for wire compatibility but never trusted: totals are
// always recomputed from the items.
type SetCartData struct {
	Data model.CartData
}

func (a SetCartData) apply(s State) State {
	s.Items = model.CloneItems(a.Data.Items)
	return s
}

// ClearCart empties the cart.
type ClearCart struct{}

func (ClearCart) apply(s State) State {
	s.Items = nil
	return s
}

// mutatesItems reports whether an action can change the item list, which is
// what decides version bumps and persistence writes.
func mutatesItems(a Action) bool {
	switch a.(type) {
	case AddItem, UpdateQuantity, RemoveItem, SetCartData, ClearCart:
		return true
	default:
		return false
	}
}

// Reduce applies a single action to a state. Exposed for tests and for
// consumers that want to project state without a Store; a nil action returns
// the state unchanged.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}
