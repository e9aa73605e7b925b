package broker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerState is the circuit breaker state exposed on the health
// surface.
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerHalfOpen BreakerState = "half_open"
	BreakerOpen     BreakerState = "open"
)

// BreakerConfig tunes the send-path circuit breaker.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         int
	Timeout          int
	FailureRatio     float64
	ConsecutiveFails uint32
}

type circuitBreaker struct {
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

func newCircuitBreaker(cfg *BreakerConfig, logger *zap.Logger) *circuitBreaker {
	settings := gobreaker.Settings{
		Name:        "broker-send",
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.ConsecutiveFails && failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil
		},
	}

	return &circuitBreaker{
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

// execute runs fn through the breaker, mapping breaker rejections onto
// the unavailable error kind.
func (cb *circuitBreaker) execute(ctx context.Context, fn func() error) error {
	_, err := cb.cb.Execute(func() (interface{}, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			return nil, fn()
		}
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			cb.logger.Warn("Circuit breaker is open, send blocked")
			return fmt.Errorf("%w: circuit breaker is open", ErrUnavailable)
		}
		if errors.Is(err, gobreaker.ErrTooManyRequests) {
			cb.logger.Warn("Circuit breaker: too many requests")
			return fmt.Errorf("%w: too many requests", ErrUnavailable)
		}
		return err
	}

	return nil
}

func (cb *circuitBreaker) state() BreakerState {
	switch cb.cb.State() {
	case gobreaker.StateHalfOpen:
		return BreakerHalfOpen
	case gobreaker.StateOpen:
		return BreakerOpen
	default:
		return BreakerClosed
	}
}

func (cb *circuitBreaker) counts() (requests, failures uint32) {
	c := cb.cb.Counts()
	return c.Requests, c.TotalFailures
}
