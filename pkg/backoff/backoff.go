package backoff

import (
	"context"
	"math/rand"
	"time"
)

type Operation = func() error

// Strategy computes the wait before retry attempt n (0-based).
type Strategy interface {
	Next(attempt int) time.Duration
}

// Exponential is a capped exponential strategy with absolute jitter.
type Exponential struct {
	Initial time.Duration
	Max     time.Duration
	Factor  float64
	Jitter  time.Duration
}

func DefaultExponential() *Exponential {
	return &Exponential{
		Initial: 300 * time.Millisecond,
		Max:     20 * time.Second,
		Factor:  2.15,
		Jitter:  50 * time.Millisecond,
	}
}

func (e *Exponential) Next(attempt int) time.Duration {
	delay := float64(e.Initial)
	for i := 0; i < attempt; i++ {
		delay *= e.Factor
	}
	if delay > float64(e.Max) {
		delay = float64(e.Max)
	}
	if e.Jitter > 0 {
		delay += rand.Float64() * float64(e.Jitter)
	}
	return time.Duration(delay)
}

// Retrier runs an operation until it succeeds, the attempt budget is
// exhausted, or the context is done.
type Retrier struct {
	strategy   Strategy
	maxRetries int
}

func NewRetrier(strategy Strategy, maxRetries int) *Retrier {
	return &Retrier{strategy: strategy, maxRetries: maxRetries}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(DefaultExponential(), 5)
}

func (r *Retrier) Do(ctx context.Context, op Operation) error {
	var err error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if attempt == r.maxRetries {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.strategy.Next(attempt)):
		}
	}
	return err
}
