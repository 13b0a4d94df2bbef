package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend down")

func failing(context.Context) error { return errBackend }
func succeeding(context.Context) error { return nil }

// TestBreaker_OpensAfterConsecutiveFailures verifies the failure threshold.
func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b := New(Config{Name: "test", FailureThreshold: 3, SuccessThreshold: 1, Cooldown: time.Minute})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Execute(ctx, failing), errBackend)
	}
	assert.Equal(t, Open, b.State())

	// Calls are rejected without reaching the function.
	called := false
	err := b.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

// TestBreaker_SuccessResetsFailureCount verifies interleaved successes keep
// the circuit closed.
func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := New(Config{Name: "test", FailureThreshold: 3, SuccessThreshold: 1, Cooldown: time.Minute})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.ErrorIs(t, b.Execute(ctx, failing), errBackend)
		require.ErrorIs(t, b.Execute(ctx, failing), errBackend)
		require.NoError(t, b.Execute(ctx, succeeding))
	}
	assert.Equal(t, Closed, b.State())
}

// TestBreaker_RecoversThroughHalfOpen verifies the cooldown -> probe -> close path.
func TestBreaker_RecoversThroughHalfOpen(t *testing.T) {
	b := New(Config{Name: "test", FailureThreshold: 1, SuccessThreshold: 2, Cooldown: 10 * time.Millisecond})
	ctx := context.Background()

	require.ErrorIs(t, b.Execute(ctx, failing), errBackend)
	require.Equal(t, Open, b.State())

	time.Sleep(20 * time.Millisecond)

	require.NoError(t, b.Execute(ctx, succeeding))
	assert.Equal(t, HalfOpen, b.State())
	require.NoError(t, b.Execute(ctx, succeeding))
	assert.Equal(t, Closed, b.State())
}

// TestBreaker_FailedProbeReopens verifies a half-open failure reopens immediately.
func TestBreaker_FailedProbeReopens(t *testing.T) {
	b := New(Config{Name: "test", FailureThreshold: 1, SuccessThreshold: 2, Cooldown: 10 * time.Millisecond})
	ctx := context.Background()

	require.ErrorIs(t, b.Execute(ctx, failing), errBackend)
	time.Sleep(20 * time.Millisecond)

	require.ErrorIs(t, b.Execute(ctx, failing), errBackend)
	assert.Equal(t, Open, b.State())
}

// TestBreaker_Stats verifies health reporting.
func TestBreaker_Stats(t *testing.T) {
	b := New(DefaultConfig("gateway"))
	stats := b.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)

	for i := 0; i < 5; i++ {
		_ = b.Execute(context.Background(), failing)
	}
	stats = b.GetStats()
	assert.Equal(t, "open", stats.State)
	assert.False(t, stats.IsHealthy)
}

// TestState_String covers the state names used in health output.
func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "half-open", HalfOpen.String())
	assert.Equal(t, "unknown", State(99).String())
}
