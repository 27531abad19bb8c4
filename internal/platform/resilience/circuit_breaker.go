package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker trips after consecutive failures against the engine API
// and probes recovery with a bounded number of half-open requests.
type CircuitBreaker struct {
	mu  sync.Mutex
	cfg CircuitBreakerConfig

	state        CircuitState
	failureStack int
	trippedAt    time.Time
	probesActive int
	probesPassed int
	clock        func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		cfg:   cfg.withDefaults(),
		state: CircuitStateClosed,
		clock: time.Now,
	}
}

// Allow reports whether a request may proceed. An open circuit that has
// cooled past OpenTimeout flips to half-open and admits up to
// HalfOpenMaxReq probe requests.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.clock().Sub(b.trippedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.enter(CircuitStateHalfOpen)
	}

	if b.state == CircuitStateHalfOpen {
		if b.probesActive >= b.cfg.HalfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.probesActive++
	}

	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failureStack = 0
	case CircuitStateHalfOpen:
		b.probeDone()
		b.probesPassed++
		if b.probesPassed >= b.cfg.HalfOpenMaxReq && b.probesActive == 0 {
			b.enter(CircuitStateClosed)
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failureStack++
		if b.failureStack >= b.cfg.FailureThreshold {
			b.enter(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		b.probeDone()
		b.enter(CircuitStateOpen)
	case CircuitStateOpen:
		b.trippedAt = b.clock()
	}
}

// State reports the effective state. A cooled-down open circuit reads as
// half-open even before the next Allow performs the transition.
func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.clock().Sub(b.trippedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}

	return b.state
}

func (b *CircuitBreaker) probeDone() {
	if b.probesActive > 0 {
		b.probesActive--
	}
}

func (b *CircuitBreaker) enter(next CircuitState) {
	b.state = next
	b.probesActive = 0
	b.probesPassed = 0

	switch next {
	case CircuitStateClosed:
		b.failureStack = 0
		b.trippedAt = time.Time{}
	case CircuitStateOpen:
		b.trippedAt = b.clock()
	}
}
