package store

import (
	"errors"
	"testing"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage records persistence calls for assertions.
type fakeStorage struct {
	data    *model.CartData
	loadErr error
	saveErr error
	saves   int
	deletes int
}

func (f *fakeStorage) Load() (*model.CartData, error) {
	return f.data, f.loadErr
}

func (f *fakeStorage) Save(data model.CartData) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	d := data
	f.data = &d
	return nil
}

func (f *fakeStorage) Delete() error {
	f.deletes++
	f.data = nil
	return nil
}

func mascara() model.Product {
	return model.Product{ID: 1, Title: "Essence Mascara Lash Princess", Price: 9.99, Thumbnail: "mascara.webp"}
}

func perfume() model.Product {
	return model.Product{ID: 7, Title: "Chanel Coco Noir Eau De", Price: 129.99, DiscountPercentage: 10}
}

// TestAddItem_NewAndMerge tests the append vs increment paths.
func TestAddItem_NewAndMerge(t *testing.T) {
	s := New(nil)

	s.Dispatch(AddItem{Product: mascara()})
	state := s.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, int64(1), state.Items[0].ProductID)
	assert.Equal(t, 1, state.Items[0].Quantity)
	assert.InDelta(t, 9.99, state.Items[0].Subtotal, 1e-9)

	s.Dispatch(AddItem{Product: mascara()})
	state = s.State()
	require.Len(t, state.Items, 1, "same product must merge into one line")
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.InDelta(t, 19.98, state.Items[0].Subtotal, 1e-9)

	s.Dispatch(AddItem{Product: perfume()})
	state = s.State()
	require.Len(t, state.Items, 2)
	assert.InDelta(t, 116.99, state.Items[1].UnitPrice, 1e-9)
	assert.NotEqual(t, state.Items[0].ID, state.Items[1].ID)
}

// TestAddItem_RepeatedAdds verifies quantity equals the number of adds and
// the subtotal tracks the frozen unit price exactly.
func TestAddItem_RepeatedAdds(t *testing.T) {
	s := New(nil)

	const adds = 7
	for i := 0; i < adds; i++ {
		s.Dispatch(AddItem{Product: perfume()})
	}

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, adds, items[0].Quantity)
	assert.InDelta(t, pricing.LineSubtotal(items[0].UnitPrice, adds), items[0].Subtotal, 1e-9)
}

// TestAddItem_UnitPriceFrozenOnIncrement verifies increments never re-derive
// the price from the product, even when the catalog price changed.
func TestAddItem_UnitPriceFrozenOnIncrement(t *testing.T) {
	s := New(nil)
	s.Dispatch(AddItem{Product: mascara()})

	changed := mascara()
	changed.Price = 14.99
	s.Dispatch(AddItem{Product: changed})

	items := s.Items()
	require.Len(t, items, 1)
	assert.InDelta(t, 9.99, items[0].UnitPrice, 1e-9)
	assert.InDelta(t, 19.98, items[0].Subtotal, 1e-9)
}

// TestUpdateQuantity covers set, idempotence, removal via zero, and no-ops.
func TestUpdateQuantity(t *testing.T) {
	t.Run("sets quantity and recomputes subtotal", func(t *testing.T) {
		s := New(nil)
		s.Dispatch(AddItem{Product: mascara()})
		id := s.Items()[0].ID

		s.Dispatch(UpdateQuantity{LineID: id, Quantity: 5})

		items := s.Items()
		assert.Equal(t, 5, items[0].Quantity)
		assert.InDelta(t, 49.95, items[0].Subtotal, 1e-9)
	})

	t.Run("applying the same quantity twice is idempotent", func(t *testing.T) {
		s := New(nil)
		s.Dispatch(AddItem{Product: mascara()})
		id := s.Items()[0].ID

		s.Dispatch(UpdateQuantity{LineID: id, Quantity: 3})
		once := s.Items()
		s.Dispatch(UpdateQuantity{LineID: id, Quantity: 3})
		twice := s.Items()

		assert.Equal(t, once, twice)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		s := New(nil)
		s.Dispatch(AddItem{Product: mascara()})
		id := s.Items()[0].ID

		s.Dispatch(UpdateQuantity{LineID: id, Quantity: 0})
		assert.Empty(t, s.Items())
	})

	t.Run("zero quantity equals RemoveItem", func(t *testing.T) {
		viaUpdate := New(nil)
		viaRemove := New(nil)
		for _, s := range []*Store{viaUpdate, viaRemove} {
			s.Dispatch(AddItem{Product: mascara()})
			s.Dispatch(AddItem{Product: perfume()})
		}
		id := viaUpdate.Items()[0].ID

		viaUpdate.Dispatch(UpdateQuantity{LineID: id, Quantity: 0})
		viaRemove.Dispatch(RemoveItem{LineID: viaRemove.Items()[0].ID})

		assert.Equal(t, viaRemove.Items(), viaUpdate.Items())
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		s := New(nil)
		s.Dispatch(AddItem{Product: mascara()})
		before := s.Items()

		s.Dispatch(UpdateQuantity{LineID: 999, Quantity: 5})
		assert.Equal(t, before, s.Items())
	})
}

// TestRemoveItem tests removal and unknown-id no-op.
func TestRemoveItem(t *testing.T) {
	s := New(nil)
	s.Dispatch(AddItem{Product: mascara()})
	s.Dispatch(AddItem{Product: perfume()})

	first := s.Items()[0].ID
	s.Dispatch(RemoveItem{LineID: first})

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].ProductID)

	s.Dispatch(RemoveItem{LineID: 12345})
	assert.Equal(t, items, s.Items())
}

// TestUIFlags verifies panel and transient flag actions leave items alone.
func TestUIFlags(t *testing.T) {
	s := New(nil)
	s.Dispatch(AddItem{Product: mascara()})
	before := s.Items()

	s.Dispatch(ToggleCart{})
	assert.True(t, s.State().IsOpen)
	s.Dispatch(ToggleCart{})
	assert.False(t, s.State().IsOpen)

	s.Dispatch(OpenCart{})
	assert.True(t, s.State().IsOpen)
	s.Dispatch(CloseCart{})
	assert.False(t, s.State().IsOpen)

	s.Dispatch(SetLoading{Loading: true})
	assert.True(t, s.State().IsLoading)

	s.Dispatch(SetError{Message: "Failed to update quantity"})
	assert.Equal(t, "Failed to update quantity", s.State().Err)
	s.Dispatch(SetError{})
	assert.Empty(t, s.State().Err)

	assert.Equal(t, before, s.Items(), "UI flag actions must not touch items")
}

// TestSetCartData verifies wholesale replacement ignores the supplied summary.
func TestSetCartData(t *testing.T) {
	s := New(nil)
	s.Dispatch(AddItem{Product: mascara()})

	snapshot := []model.LineItem{
		{ID: 4, ProductID: 16, Title: "Apple", UnitPrice: 1.99, Quantity: 5, Subtotal: 9.95},
	}
	// Deliberately wrong summary: it must be recomputed, never trusted.
	s.Dispatch(SetCartData{Data: model.CartData{
		Items:   snapshot,
		Summary: model.Summary{Subtotal: 999, Tax: 999, Shipping: 999, Total: 9999},
	}})

	assert.Equal(t, snapshot, s.Items())
	assert.Equal(t, pricing.Summarize(snapshot), s.Summary())
}

// TestClearCart empties the items.
func TestClearCart(t *testing.T) {
	s := New(nil)
	s.Dispatch(AddItem{Product: mascara()})
	s.Dispatch(ClearCart{})
	assert.Empty(t, s.Items())
}

// TestSummaryFormulas checks the worked examples from the pricing model.
func TestSummaryFormulas(t *testing.T) {
	s := New(nil)

	assert.Equal(t, model.Summary{}, s.Summary())

	s.Dispatch(AddItem{Product: mascara()})
	assert.Equal(t, model.Summary{Subtotal: 9.99, Tax: 1.00, Shipping: 10.00, Total: 20.99}, s.Summary())

	summary := s.Summary()
	assert.InDelta(t, summary.Subtotal+summary.Tax+summary.Shipping, summary.Total, 1e-9)
}

// TestPersistence verifies the save/delete side effect of item mutations.
func TestPersistence(t *testing.T) {
	t.Run("non-empty cart is written through", func(t *testing.T) {
		fs := &fakeStorage{}
		s := New(fs)

		s.Dispatch(AddItem{Product: mascara()})
		require.NotNil(t, fs.data)
		assert.Equal(t, s.Items(), fs.data.Items)
		assert.Equal(t, pricing.Summarize(fs.data.Items), fs.data.Summary)

		// UI-only actions do not write.
		saves := fs.saves
		s.Dispatch(ToggleCart{})
		s.Dispatch(SetLoading{Loading: true})
		assert.Equal(t, saves, fs.saves)
	})

	t.Run("emptying the cart deletes the slot", func(t *testing.T) {
		fs := &fakeStorage{}
		s := New(fs)

		s.Dispatch(AddItem{Product: mascara()})
		id := s.Items()[0].ID
		s.Dispatch(RemoveItem{LineID: id})

		assert.Nil(t, fs.data)
		assert.Equal(t, 1, fs.deletes)
	})

	t.Run("storage failures are advisory", func(t *testing.T) {
		fs := &fakeStorage{saveErr: errors.New("disk full")}
		s := New(fs)

		s.Dispatch(AddItem{Product: mascara()})
		assert.Len(t, s.Items(), 1, "in-memory state stands when persistence fails")
	})
}

// TestHydration covers restore-from-storage and the corruption fallback.
func TestHydration(t *testing.T) {
	t.Run("restores persisted items and continues line ids", func(t *testing.T) {
		fs := &fakeStorage{data: &model.CartData{
			Items: []model.LineItem{
				{ID: 5, ProductID: 1, Title: "Essence Mascara Lash Princess", UnitPrice: 9.99, Quantity: 2, Subtotal: 19.98},
			},
		}}
		s := New(fs)

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(5), items[0].ID)

		s.Dispatch(AddItem{Product: perfume()})
		items = s.Items()
		require.Len(t, items, 2)
		assert.Greater(t, items[1].ID, int64(5), "new line ids must not collide with hydrated ones")
	})

	t.Run("corrupt slot hydrates empty", func(t *testing.T) {
		// Storage reports corruption as absent data.
		s := New(&fakeStorage{data: nil})
		assert.Empty(t, s.Items())
	})

	t.Run("load error falls back to empty cart", func(t *testing.T) {
		s := New(&fakeStorage{loadErr: errors.New("io error")})
		assert.Empty(t, s.Items())
	})
}

// TestVersion verifies only item mutations bump the version counter.
func TestVersion(t *testing.T) {
	s := New(nil)
	assert.Equal(t, uint64(0), s.Version())

	s.Dispatch(AddItem{Product: mascara()})
	v1 := s.Version()
	assert.Equal(t, uint64(1), v1)

	s.Dispatch(ToggleCart{})
	s.Dispatch(SetError{Message: "x"})
	assert.Equal(t, v1, s.Version(), "flag actions must not bump the version")

	s.Dispatch(UpdateQuantity{LineID: s.Items()[0].ID, Quantity: 2})
	assert.Equal(t, v1+1, s.Version())
}

// TestStateIsolation verifies accessors return copies, not live state.
func TestStateIsolation(t *testing.T) {
	s := New(nil)
	s.Dispatch(AddItem{Product: mascara()})

	items := s.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, s.Items()[0].Quantity, "mutating a snapshot must not touch the store")
}

// TestReduce covers the exported pure entry point and the nil-action default.
func TestReduce(t *testing.T) {
	state := State{}
	state = Reduce(state, AddItem{Product: mascara(), LineID: 1})
	assert.Len(t, state.Items, 1)

	assert.Equal(t, state, Reduce(state, nil))
}
