// Package cartsync implements optimistic synchronization between the local
// cart store and the remote cart gateway.
//
// Every mutation is applied to the local store immediately, so the cart the
// caller observes never waits on the network. The matching remote call is
// issued in the background: adds fire straight away, quantity updates are
// debounced per line item, removals cancel any pending update for the line
// and fire straight away. When a remote call fails, update and remove restore
// the pre-mutation snapshot; add keeps the optimistic state and only surfaces
// the error.
package cartsync

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/gateway"
	"github.com/guttosm/cart-service/internal/metrics"
	"github.com/guttosm/cart-service/internal/store"
	"github.com/rs/zerolog/log"
)

// DefaultWindow is the debounce window for quantity updates.
const DefaultWindow = 500 * time.Millisecond

const (
	msgItemAdded    = "Item added to cart"
	msgCartUpdated  = "Cart updated"
	msgItemRemoved  = "Item removed from cart"
	msgAddFailed    = "Failed to add item to cart"
	msgUpdateFailed = "Failed to update cart"
	msgRemoveFailed = "Failed to remove item from cart"

	outcomeSuccess = "success"
	outcomeError   = "error"
)

// pendingUpdate is a debounced quantity change for one line item. The
// snapshot is the item list before the first local dispatch of the window, so
// a rollback undoes every coalesced step at once.
type pendingUpdate struct {
	timer    *time.Timer
	snapshot []model.LineItem
	quantity int
}

// Syncer coordinates local dispatches with remote confirmations.
type Syncer struct {
	store    *store.Store
	gateway  gateway.Gateway
	notifier Notifier
	window   time.Duration

	mu      sync.Mutex
	pending map[int64]*pendingUpdate
	wg      sync.WaitGroup
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithWindow overrides the debounce window. Values <= 0 keep the default.
func WithWindow(d time.Duration) Option {
	return func(s *Syncer) {
		if d > 0 {
			s.window = d
		}
	}
}

// WithNotifier overrides the outcome notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Syncer) {
		if n != nil {
			s.notifier = n
		}
	}
}

// New creates a Syncer over the given store and gateway.
func New(st *store.Store, gw gateway.Gateway, opts ...Option) *Syncer {
	s := &Syncer{
		store:    st,
		gateway:  gw,
		notifier: LogNotifier{},
		window:   DefaultWindow,
		pending:  make(map[int64]*pendingUpdate),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add applies one unit of the product to the local cart and confirms the add
// remotely in the background.
//
// Add never rolls back: the user saw the item land in the cart, and undoing
// an add over a transient network error is worse than letting the optimistic
// state stand. Failures surface through the error flag and the notifier only.
func (s *Syncer) Add(product model.Product) {
	s.store.Dispatch(store.AddItem{Product: product})
	s.store.Dispatch(store.SetLoading{Loading: true})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		_, err := s.gateway.AddItem(context.Background(), product.ID, 1)
		s.store.Dispatch(store.SetLoading{Loading: false})

		if err != nil {
			metrics.RecordCartMutation(gateway.OpAdd, outcomeError)
			s.store.Dispatch(store.SetError{Message: msgAddFailed})
			s.notifier.Error(msgAddFailed, err.Error())
			return
		}

		metrics.RecordCartMutation(gateway.OpAdd, outcomeSuccess)
		s.store.Dispatch(store.SetError{Message: ""})
		s.notifier.Success(msgItemAdded)
	}()
}

// UpdateQuantity applies a quantity change to the local cart immediately and
// schedules the remote confirmation behind the debounce window. Rapid calls
// for the same line item reset the timer and only the final quantity reaches
// the gateway.
func (s *Syncer) UpdateQuantity(lineID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[lineID]
	if ok {
		p.timer.Stop()
		metrics.CartDebounceCoalescedTotal.Inc()
	} else {
		p = &pendingUpdate{snapshot: s.store.Items()}
		s.pending[lineID] = p
	}
	p.quantity = quantity

	// Dispatch under the lock so the timer can never fire before the local
	// state it confirms has been applied.
	s.store.Dispatch(store.UpdateQuantity{LineID: lineID, Quantity: quantity})
	p.timer = time.AfterFunc(s.window, func() { s.flushUpdate(lineID) })
}

// Remove applies the removal to the local cart immediately and confirms it
// remotely in the background. A pending quantity update for the line is
// cancelled: confirming a quantity for a line the user just removed would
// resurrect it server-side.
func (s *Syncer) Remove(lineID int64) {
	s.mu.Lock()
	var snapshot []model.LineItem
	if p, ok := s.pending[lineID]; ok {
		p.timer.Stop()
		delete(s.pending, lineID)
		snapshot = p.snapshot
	} else {
		snapshot = s.store.Items()
	}
	s.wg.Add(1)
	s.mu.Unlock()

	s.store.Dispatch(store.RemoveItem{LineID: lineID})
	version := s.store.Version()

	go func() {
		defer s.wg.Done()

		s.store.Dispatch(store.SetLoading{Loading: true})
		_, err := s.gateway.RemoveItem(context.Background(), lineID)
		s.store.Dispatch(store.SetLoading{Loading: false})

		if err != nil {
			s.resolveFailure(gateway.OpRemove, snapshot, version, msgRemoveFailed, err)
			return
		}

		metrics.RecordCartMutation(gateway.OpRemove, outcomeSuccess)
		s.store.Dispatch(store.SetError{Message: ""})
		s.notifier.Success(msgItemRemoved)
	}()
}

// Flush fires every pending quantity update immediately, without waiting for
// the debounce windows to elapse. Remote confirmations still resolve in the
// background; use Close to also wait for them.
func (s *Syncer) Flush() {
	s.mu.Lock()
	ids := make([]int64, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		s.flushUpdate(id)
	}
}

// Close flushes pending updates and waits for all in-flight remote
// confirmations to resolve.
func (s *Syncer) Close() {
	s.Flush()
	s.wg.Wait()
}

// flushUpdate claims the pending update for a line item and confirms it
// remotely. It is called from the debounce timer and from Flush; whichever
// claims the entry first wins, the other finds nothing and returns.
func (s *Syncer) flushUpdate(lineID int64) {
	s.mu.Lock()
	p, ok := s.pending[lineID]
	if ok {
		p.timer.Stop()
		delete(s.pending, lineID)
		s.wg.Add(1)
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	defer s.wg.Done()

	// The version is read after every coalesced dispatch has been applied.
	// Any later item mutation invalidates the snapshot for rollback.
	version := s.store.Version()

	s.store.Dispatch(store.SetLoading{Loading: true})
	_, err := s.gateway.UpdateItem(context.Background(), lineID, p.quantity)
	s.store.Dispatch(store.SetLoading{Loading: false})

	if err != nil {
		s.resolveFailure(gateway.OpUpdate, p.snapshot, version, msgUpdateFailed, err)
		return
	}

	metrics.RecordCartMutation(gateway.OpUpdate, outcomeSuccess)
	s.store.Dispatch(store.SetError{Message: ""})
	s.notifier.Success(msgCartUpdated)
}

// resolveFailure handles a rejected remote confirmation: restore the
// pre-mutation snapshot when no newer mutation has landed, flag the error and
// notify. A stale snapshot is discarded rather than clobbering state the user
// has since changed.
func (s *Syncer) resolveFailure(operation string, snapshot []model.LineItem, version uint64, message string, err error) {
	metrics.RecordCartMutation(operation, outcomeError)

	if s.store.Version() == version {
		s.store.Dispatch(store.SetCartData{Data: model.CartData{Items: snapshot}})
		metrics.RecordRollback(operation)
	} else {
		log.Debug().
			Str("operation", operation).
			Uint64("snapshot_version", version).
			Uint64("store_version", s.store.Version()).
			Msg("Skipping stale cart rollback")
	}

	s.store.Dispatch(store.SetError{Message: message})
	s.notifier.Error(message, err.Error())
}
