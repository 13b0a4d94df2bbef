package gateway

import (
	"context"
	"time"

	"github.com/guttosm/cart-service/internal/circuitbreaker"
	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/metrics"
)

// BreakerGateway wraps a Gateway with circuit breaker protection and request
// metrics. When the breaker is open, calls fail fast with
// circuitbreaker.ErrOpen instead of waiting out a network timeout.
type BreakerGateway struct {
	next    Gateway
	breaker *circuitbreaker.Breaker
}

// NewBreakerGateway wraps the given gateway.
func NewBreakerGateway(next Gateway, breaker *circuitbreaker.Breaker) *BreakerGateway {
	return &BreakerGateway{next: next, breaker: breaker}
}

// Breaker exposes the underlying breaker for health reporting.
func (g *BreakerGateway) Breaker() *circuitbreaker.Breaker {
	return g.breaker
}

// FetchCart retrieves the remote snapshot under breaker protection.
func (g *BreakerGateway) FetchCart(ctx context.Context) (*model.CartData, error) {
	return g.execute(ctx, OpFetch, func(ctx context.Context) (*model.CartData, error) {
		return g.next.FetchCart(ctx)
	})
}

// AddItem confirms an add under breaker protection.
func (g *BreakerGateway) AddItem(ctx context.Context, productID int64, quantity int) (*model.CartData, error) {
	return g.execute(ctx, OpAdd, func(ctx context.Context) (*model.CartData, error) {
		return g.next.AddItem(ctx, productID, quantity)
	})
}

// UpdateItem confirms a quantity change under breaker protection.
func (g *BreakerGateway) UpdateItem(ctx context.Context, lineID int64, quantity int) (*model.CartData, error) {
	return g.execute(ctx, OpUpdate, func(ctx context.Context) (*model.CartData, error) {
		return g.next.UpdateItem(ctx, lineID, quantity)
	})
}

// RemoveItem confirms a removal under breaker protection.
func (g *BreakerGateway) RemoveItem(ctx context.Context, lineID int64) (*model.CartData, error) {
	return g.execute(ctx, OpRemove, func(ctx context.Context) (*model.CartData, error) {
		return g.next.RemoveItem(ctx, lineID)
	})
}

func (g *BreakerGateway) execute(
	ctx context.Context,
	operation string,
	fn func(context.Context) (*model.CartData, error),
) (*model.CartData, error) {
	var result *model.CartData

	start := time.Now()
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var callErr error
		result, callErr = fn(ctx)
		return callErr
	})
	metrics.RecordGatewayRequest(operation, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return result, nil
}
