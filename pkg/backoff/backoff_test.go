package backoff

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetrier(maxRetries int) *Retrier {
	return NewRetrier(&Exponential{
		Initial: time.Millisecond,
		Max:     5 * time.Millisecond,
		Factor:  2,
	}, maxRetries)
}

func TestRetrier_SuccessOnFirstTry(t *testing.T) {
	ctx := context.Background()

	counter := 0
	err := fastRetrier(5).Do(ctx, func() error {
		counter++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != 1 {
		t.Errorf("expected 1 attempt, got %d", counter)
	}
}

func TestRetrier_SuccessAfterRetries(t *testing.T) {
	ctx := context.Background()

	counter := 0
	err := fastRetrier(5).Do(ctx, func() error {
		counter++
		if counter < 3 {
			return errors.New("temporary error")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != 3 {
		t.Errorf("expected 3 attempts, got %d", counter)
	}
}

func TestRetrier_MaxRetriesExceeded(t *testing.T) {
	ctx := context.Background()

	expectedErr := errors.New("permanent error")
	counter := 0
	err := fastRetrier(2).Do(ctx, func() error {
		counter++
		return expectedErr
	})
	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}
	if counter != 3 {
		t.Errorf("expected 3 attempts, got %d", counter)
	}
}

func TestRetrier_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fastRetrier(5).Do(ctx, func() error {
		return errors.New("always fails")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestExponential_Next(t *testing.T) {
	e := &Exponential{Initial: 100 * time.Millisecond, Max: 300 * time.Millisecond, Factor: 2}

	if got := e.Next(0); got != 100*time.Millisecond {
		t.Errorf("attempt 0: got %v", got)
	}
	if got := e.Next(1); got != 200*time.Millisecond {
		t.Errorf("attempt 1: got %v", got)
	}
	// Capped at Max from attempt 2 on.
	if got := e.Next(5); got != 300*time.Millisecond {
		t.Errorf("attempt 5: got %v", got)
	}
}
