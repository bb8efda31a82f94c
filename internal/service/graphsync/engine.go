package graphsync

import (
	"context"
	"sync"

	"github.com/zayeemZaki/ai-memory-app/internal/core"
	"github.com/zayeemZaki/ai-memory-app/pkg/log"
)

// Gateway is the fetch dependency; satisfied by gateway.Gateway.
type Gateway interface {
	Graph(ctx context.Context, sessionID string) (core.GraphSnapshot, error)
}

// Engine owns the visualized graph snapshot. Every refresh replaces the
// snapshot wholesale; snapshots are never merged. Overlapping fetches
// are possible (nothing cancels an in-flight request); a monotonic
// sequence guard discards responses that arrive after a later-dispatched
// response has been applied.
type Engine struct {
	mu        sync.Mutex
	gw        Gateway
	sessionID string
	policy    RefreshPolicy

	snapshot    core.GraphSnapshot
	nextSeq     uint64
	appliedSeq  uint64
	refreshTick int
	closed      bool

	events chan struct{}
}

func NewEngine(gw Gateway, sessionID string, policy RefreshPolicy) *Engine {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Engine{
		gw:        gw,
		sessionID: sessionID,
		policy:    policy,
		events:    make(chan struct{}, 16),
	}
}

// Events signals a snapshot replacement. Coalescing channel; consumers
// re-read Snapshot on receipt.
func (e *Engine) Events() <-chan struct{} {
	return e.events
}

// Snapshot returns the currently held snapshot.
func (e *Engine) Snapshot() core.GraphSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot
}

// RefreshCount reports how many refreshes have been applied. Used by the
// shell to reheat the layout on change.
func (e *Engine) RefreshCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.refreshTick
}

// Refresh fetches a full snapshot for the session and replaces the held
// one. A failed fetch keeps the previous snapshot and only logs: the
// graph is a secondary view, so there is no user-visible error state.
func (e *Engine) Refresh(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.nextSeq++
	seq := e.nextSeq
	e.mu.Unlock()

	snap, err := e.gw.Graph(ctx, e.sessionID)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("graph refresh failed, keeping previous snapshot")
		return err
	}

	e.mu.Lock()
	if e.closed || seq < e.appliedSeq {
		// A later-dispatched response has already been applied; this one
		// is stale.
		e.mu.Unlock()
		return nil
	}
	e.appliedSeq = seq
	e.snapshot = snap
	e.refreshTick++
	e.mu.Unlock()
	e.notify()
	return nil
}

// ScheduleRefresh arranges a refresh after the policy's wait, covering
// the store's eventual consistency: an immediate fetch after add_fact
// would race the write's visibility. The wait is a heuristic, not a
// correctness guarantee.
func (e *Engine) ScheduleRefresh(ctx context.Context) {
	go func() {
		if err := e.policy.Wait(ctx); err != nil {
			return
		}
		e.mu.Lock()
		closed := e.closed
		e.mu.Unlock()
		if closed {
			return
		}
		_ = e.Refresh(ctx)
	}()
}

func (e *Engine) notify() {
	select {
	case e.events <- struct{}{}:
	default:
	}
}

// Close stops future refreshes from applying. In-flight fetches finish
// but their responses are dropped.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}
