package graphsync

import (
	"context"
	"time"
)

// RefreshPolicy decides how long a scheduled refresh waits before
// fetching. It is an injectable strategy so the eventual-consistency
// window can be tuned, or replaced wholesale, without touching call
// sites.
type RefreshPolicy interface {
	Wait(ctx context.Context) error
}

// FixedDelay waits a constant duration. The 500ms default matches the
// observed visibility lag of the backing store.
type FixedDelay struct {
	Delay time.Duration
}

func (p FixedDelay) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.Delay):
		return nil
	}
}

func DefaultPolicy() RefreshPolicy {
	return FixedDelay{Delay: 500 * time.Millisecond}
}
