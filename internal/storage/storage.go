// Package storage provides the durable local slot the cart store persists
// itself into. The slot holds a single JSON snapshot of {items, summary};
// an absent slot means an empty cart, and a corrupt slot is treated as
// absent (logged, never surfaced to the caller).
package storage

import "github.com/guttosm/cart-service/internal/domain/model"

// Storage is the single-slot persistence contract used by the cart store.
//
// Load returns (nil, nil) when the slot is absent or holds data that cannot
// be parsed as a cart snapshot; a non-nil error is reserved for I/O failures
// the caller may want to log. Save overwrites the slot and Delete removes it.
type Storage interface {
	Load() (*model.CartData, error)
	Save(data model.CartData) error
	Delete() error
}
