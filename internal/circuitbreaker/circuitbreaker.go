// Package circuitbreaker implements a three-state circuit breaker used to
// protect the remote cart gateway from hammering a failing backend.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrOpen is returned when the circuit is open and the call was not attempted.
var ErrOpen = errors.New("circuit breaker is open")

// State is the breaker state.
type State int

const (
	// Closed passes calls through and counts consecutive failures.
	Closed State = iota
	// Open rejects calls until the cooldown elapses.
	Open
	// HalfOpen lets probe calls through; successes close the circuit again.
	HalfOpen
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds breaker thresholds.
type Config struct {
	// Name identifies the breaker in logs and health output.
	Name string
	// FailureThreshold is the consecutive-failure count that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the consecutive-success count (while half-open) that closes it.
	SuccessThreshold int
	// Cooldown is how long the circuit stays open before probing.
	Cooldown time.Duration
}

// DefaultConfig returns thresholds suitable for the cart gateway.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Cooldown:         30 * time.Second,
	}
}

// Breaker is a mutex-guarded circuit breaker.
type Breaker struct {
	cfg Config

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	openedAt  time.Time
}

// New creates a closed Breaker with the given configuration.
func New(cfg Config) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 2
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 30 * time.Second
	}
	return &Breaker{cfg: cfg}
}

// Execute runs fn under the breaker. It returns ErrOpen without calling fn
// when the circuit is open and the cooldown has not elapsed; otherwise fn's
// error (if any) is recorded and returned as-is.
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if !b.allow() {
		return ErrOpen
	}

	err := fn(ctx)
	b.record(err == nil)
	return err
}

// allow reports whether a call may proceed, transitioning Open -> HalfOpen
// once the cooldown has elapsed.
func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != Open {
		return true
	}
	if time.Since(b.openedAt) < b.cfg.Cooldown {
		return false
	}

	b.state = HalfOpen
	b.successes = 0
	log.Info().Str("circuit_breaker", b.cfg.Name).Msg("Circuit breaker half-open, probing")
	return true
}

// record accounts one call outcome and drives state transitions.
func (b *Breaker) record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if success {
		b.failures = 0
		if b.state == HalfOpen {
			b.successes++
			if b.successes >= b.cfg.SuccessThreshold {
				b.state = Closed
				b.successes = 0
				log.Info().Str("circuit_breaker", b.cfg.Name).Msg("Circuit breaker closed")
			}
		}
		return
	}

	b.failures++
	b.openedAt = time.Now()

	switch b.state {
	case Closed:
		if b.failures >= b.cfg.FailureThreshold {
			b.state = Open
			log.Warn().
				Str("circuit_breaker", b.cfg.Name).
				Int("failures", b.failures).
				Msg("Circuit breaker opened")
		}
	case HalfOpen:
		// A failed probe reopens immediately.
		b.state = Open
		log.Warn().Str("circuit_breaker", b.cfg.Name).Msg("Circuit breaker reopened after failed probe")
	}
}

// State returns the current state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Stats is a point-in-time view of the breaker for health reporting.
type Stats struct {
	State     string
	Failures  int
	IsHealthy bool
}

// GetStats returns current breaker statistics.
func (b *Breaker) GetStats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Stats{
		State:     b.state.String(),
		Failures:  b.failures,
		IsHealthy: b.state != Open,
	}
}
