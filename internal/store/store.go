// Package store implements the cart state container: a closed set of actions
// applied in dispatch order to an in-process state record, with the durable
// snapshot written as a side effect of every item mutation.
package store

import (
	"sync"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/pricing"
	"github.com/guttosm/cart-service/internal/storage"
	"github.com/rs/zerolog/log"
)

// State is the full cart state record. Items are kept in insertion order,
// which is also display order. IsOpen, IsLoading and Err are UI/transient
// flags and are never persisted.
type State struct {
	Items     []model.LineItem
	IsOpen    bool
	IsLoading bool
	Err       string
}

// Store owns the cart state and its persistence adapter. It is constructed
// once at application start and passed by reference to every consumer; all
// mutations go through Dispatch, which serializes them so the state machine
// stays single-writer.
type Store struct {
	mu      sync.Mutex
	state   State
	version uint64
	nextID  int64
	storage storage.Storage
}

// New creates a Store hydrated from the given storage adapter. A nil adapter
// disables persistence. Hydration failures (missing or corrupt slot) fall
// back to an empty cart and are logged, never fatal.
func New(st storage.Storage) *Store {
	s := &Store{storage: st, nextID: 1}

	if st != nil {
		data, err := st.Load()
		if err != nil {
			log.Warn().Err(err).Msg("Failed to hydrate cart from storage, starting empty")
		} else if data != nil {
			s.state = SetCartData{Data: *data}.apply(s.state)
		}
	}

	for _, item := range s.state.Items {
		if item.ID >= s.nextID {
			s.nextID = item.ID + 1
		}
	}

	return s
}

// Dispatch applies an action to the state. Actions are applied strictly in
// call order with no batching; rollback correctness depends on that ordering.
// When the action touched the item list, the version counter is bumped and
// the snapshot is written through (non-empty cart) or deleted (empty cart).
func (s *Store) Dispatch(action Action) {
	if action == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Appending a new line needs an id; allocate one only when the product
	// does not merge into an existing line.
	if add, ok := action.(AddItem); ok && add.LineID == 0 {
		if !s.containsProductLocked(add.Product.ID) {
			add.LineID = s.nextID
			s.nextID++
		}
		action = add
	}

	s.state = action.apply(s.state)

	if mutatesItems(action) {
		s.version++
		s.persistLocked()
	}
}

// containsProductLocked reports whether a product already has a line item.
func (s *Store) containsProductLocked(productID int64) bool {
	for _, item := range s.state.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// persistLocked writes the current snapshot through to durable storage.
// Failures are advisory: storage is a cache of the session, not its source
// of truth, so errors are logged and the in-memory state stands.
func (s *Store) persistLocked() {
	if s.storage == nil {
		return
	}

	if len(s.state.Items) == 0 {
		if err := s.storage.Delete(); err != nil {
			log.Warn().Err(err).Msg("Failed to delete cart snapshot")
		}
		return
	}

	data := model.CartData{
		Items:   model.CloneItems(s.state.Items),
		Summary: pricing.Summarize(s.state.Items),
	}
	if err := s.storage.Save(data); err != nil {
		log.Warn().Err(err).Msg("Failed to persist cart snapshot")
	}
}

// State returns a copy of the current state; the item slice is deep-copied so
// callers can never alias live store memory.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Items = model.CloneItems(s.state.Items)
	return st
}

// Items returns a deep copy of the current line items, suitable as a
// rollback snapshot.
func (s *Store) Items() []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneItems(s.state.Items)
}

// Summary computes the derived cart summary for the current items.
func (s *Store) Summary() model.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Summarize(s.state.Items)
}

// TotalItems returns the total unit count across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.state.Items {
		total += item.Quantity
	}
	return total
}

// Version returns the item-mutation counter. The sync layer records it when a
// remote call is issued and discards stale resolutions against it.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}
