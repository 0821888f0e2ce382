package upstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	outcomeSuccess  = "success"
	outcomeFailure  = "failure"
	outcomeRejected = "rejected"
)

// Config describes how calls to one external provider are throttled and
// cut off when it keeps failing.
type Config struct {
	Name string

	// RequestsPerMinute of zero disables throttling.
	RequestsPerMinute int

	FailureThreshold uint32
	OpenTimeout      time.Duration
	HalfOpenRequests uint32
}

func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		HalfOpenRequests: 1,
	}
}

// Guard wraps calls to an external provider with a rate limiter and a circuit breaker.
type Guard[T any] struct {
	name    string
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[T]
}

func NewGuard[T any](cfg Config) *Guard[T] {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(
			rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)),
			max(1, cfg.RequestsPerMinute/6),
		)
	}

	threshold := max(cfg.FailureThreshold, 1)
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.HalfOpenRequests,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, _, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
		// Callers giving up is not the provider's fault.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(float64(gobreaker.StateClosed))

	return &Guard[T]{
		name:    cfg.Name,
		limiter: limiter,
		breaker: gobreaker.NewCircuitBreaker[T](settings),
	}
}

// Do waits for a rate limit slot and runs fn through the breaker.
func (g *Guard[T]) Do(ctx context.Context, operation string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := g.limiter.Wait(ctx); err != nil {
		metrics.UpstreamRequests.WithLabelValues(g.name, operation, outcomeRejected).Inc()
		return zero, fmt.Errorf("waiting for %s rate limit: %w", g.name, err)
	}

	result, err := g.breaker.Execute(func() (T, error) {
		return fn(ctx)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.UpstreamRequests.WithLabelValues(g.name, operation, outcomeRejected).Inc()
		return zero, fmt.Errorf("%s unavailable: %w", g.name, err)
	case err != nil:
		metrics.UpstreamRequests.WithLabelValues(g.name, operation, outcomeFailure).Inc()
		return zero, err
	}

	metrics.UpstreamRequests.WithLabelValues(g.name, operation, outcomeSuccess).Inc()
	return result, nil
}

func (g *Guard[T]) State() gobreaker.State {
	return g.breaker.State()
}
