package httpx

import (
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// CircuitBreaker shields the chat path from a repeatedly failing
// upstream completion provider.
type CircuitBreaker interface {
	Execute(fn func() error) error
}

type providerBreaker struct {
	cb *gobreaker.CircuitBreaker
}

// NewCircuitBreaker trips after maxFailures consecutive failures and,
// once timeout has elapsed, probes the provider with a single trial
// request before closing again. There is only one upstream, so a
// single half-open slot is enough.
func NewCircuitBreaker(name string, timeout time.Duration, maxFailures uint32) CircuitBreaker {
	return &providerBreaker{
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
		}),
	}
}

func (b *providerBreaker) Execute(fn func() error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if err != nil {
		return fmt.Errorf("%s unavailable: %w", b.cb.Name(), err)
	}
	return nil
}
