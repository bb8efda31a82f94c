package chat

import (
	"sync"

	"github.com/zayeemZaki/ai-memory-app/internal/core"
)

// reveal is the state of one typewriter run: the complete reply held in
// memory, revealed one rune at a time into the draft message it owns.
// Cancellation is explicit so the task dies with the engine, never as a
// free-running timer.
type reveal struct {
	msgID   int64
	full    []rune
	n       int
	action  core.Action
	details *core.Details

	cancel     chan struct{}
	cancelOnce sync.Once
}

func newReveal(msgID int64, resp core.ChatResponse) *reveal {
	return &reveal{
		msgID:   msgID,
		full:    []rune(resp.Response),
		action:  resp.Action,
		details: resp.Details,
		cancel:  make(chan struct{}),
	}
}

// Step reveals the next rune and returns the visible prefix. done is
// true once the whole reply is visible; a reveal of length N completes
// in exactly N steps.
func (r *reveal) Step() (text string, done bool) {
	if r.n < len(r.full) {
		r.n++
	}
	return string(r.full[:r.n]), r.n == len(r.full)
}

func (r *reveal) Full() string { return string(r.full) }
func (r *reveal) Len() int     { return len(r.full) }
func (r *reveal) Done() bool   { return r.n >= len(r.full) }

func (r *reveal) Cancel() {
	r.cancelOnce.Do(func() { close(r.cancel) })
}
