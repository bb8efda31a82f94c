package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/zayeemZaki/ai-memory-app/internal/core"
	"github.com/zayeemZaki/ai-memory-app/pkg/log"
)

// Gateway is the outbound dependency of the engine; satisfied by
// gateway.Gateway and by test doubles.
type Gateway interface {
	Chat(ctx context.Context, req core.ChatRequest) (core.ChatResponse, error)
}

// Engine owns the message transcript: request dispatch, the optimistic
// two-phase append, and the typewriter reveal of assistant replies.
// Requests are strictly serialized by the busy flag; at most one
// conversational request is ever in flight.
type Engine struct {
	mu         sync.Mutex
	gw         Gateway
	sessionID  string
	tick       time.Duration
	now        func() time.Time
	transcript []core.Message
	busy       bool
	reveal     *reveal
	closed     bool

	onAddFact func(core.Details)
	events    chan struct{}
}

// NewEngine constructs the engine. tick is the typewriter interval; zero
// selects the 20ms default.
func NewEngine(gw Gateway, sessionID string, tick time.Duration) *Engine {
	if tick <= 0 {
		tick = 20 * time.Millisecond
	}
	return &Engine{
		gw:        gw,
		sessionID: sessionID,
		tick:      tick,
		now:       time.Now,
		events:    make(chan struct{}, 64),
	}
}

// SetOnAddFact registers the graph refresh trigger, invoked after a
// successful add_fact reply is finalized.
func (e *Engine) SetOnAddFact(fn func(core.Details)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onAddFact = fn
}

// Events signals that the transcript or busy flag changed. The channel
// coalesces; consumers re-read state on every receipt.
func (e *Engine) Events() <-chan struct{} {
	return e.events
}

// Transcript returns a copy of the message sequence.
func (e *Engine) Transcript() []core.Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]core.Message, len(e.transcript))
	copy(out, e.transcript)
	return out
}

func (e *Engine) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// Submit dispatches one conversational turn. Blank input or an in-flight
// request makes it a silent no-op (returns false): user-level "nothing
// to do", not an error.
func (e *Engine) Submit(ctx context.Context, text string, action core.Action) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	e.mu.Lock()
	if e.busy || e.closed {
		e.mu.Unlock()
		return false
	}
	e.busy = true

	history := e.historyLocked()
	userMsg := core.Message{
		ID:     e.now().UnixNano(),
		Role:   core.RoleUser,
		Text:   text,
		Status: core.StatusPending,
	}
	e.transcript = append(e.transcript, userMsg)
	e.mu.Unlock()
	e.notify()

	go e.run(ctx, userMsg.ID, text, action, history)
	return true
}

// historyLocked re-expresses the prior transcript as role-tagged history.
// Assistant turns map to the "model" role; failed turns are excluded. The
// busy gate holds through the reveal, so every entry here is finalized
// text.
func (e *Engine) historyLocked() []core.HistoryEntry {
	history := make([]core.HistoryEntry, 0, len(e.transcript))
	for _, m := range e.transcript {
		if m.Status == core.StatusFailed {
			continue
		}
		role := core.RoleUser
		if m.Role == core.RoleAssistant {
			role = core.RoleModel
		}
		history = append(history, core.HistoryEntry{Role: role, Content: m.Text})
	}
	return history
}

func (e *Engine) run(ctx context.Context, userMsgID int64, text string, action core.Action, history []core.HistoryEntry) {
	resp, err := e.gw.Chat(ctx, core.ChatRequest{
		Message:    text,
		ActionType: action,
		History:    history,
		SessionID:  e.sessionID,
	})

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}

	if err != nil {
		e.busy = false
		log.FromCtx(ctx).Error().Err(err).Msg("chat request failed")
		e.setStatusLocked(userMsgID, core.StatusFailed)
		e.transcript = append(e.transcript, core.Message{
			ID:     e.now().UnixNano(),
			Role:   core.RoleAssistant,
			Text:   fmt.Sprintf("Error: %v", err),
			Status: core.StatusFailed,
		})
		e.mu.Unlock()
		e.notify()
		return
	}

	e.setStatusLocked(userMsgID, core.StatusConfirmed)

	// busy stays set through the reveal: the turn is processed only once
	// the reply is fully visible, so there is never more than one
	// streaming draft in the transcript.
	draft := core.Message{
		ID:     e.now().UnixNano(),
		Role:   core.RoleAssistant,
		Text:   "",
		Status: core.StatusStreaming,
	}
	e.transcript = append(e.transcript, draft)
	rv := newReveal(draft.ID, resp)
	e.reveal = rv
	e.mu.Unlock()
	e.notify()

	e.runReveal(rv)
}

// runReveal advances the typewriter one rune per tick until completion
// or cancellation. This is a pure presentation effect: the full text is
// already held in memory, and only completion or engine teardown stops
// it — never a network event. An empty reply finalizes without a tick.
func (e *Engine) runReveal(rv *reveal) {
	if rv.Len() == 0 {
		e.advanceReveal(rv)
		return
	}

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for !rv.Done() {
		select {
		case <-rv.cancel:
			return
		case <-ticker.C:
		}
		if !e.advanceReveal(rv) {
			return
		}
	}
}

// advanceReveal applies one typewriter step under the engine lock. It
// returns false when the engine has been closed, which is checked before
// every mutation so teardown cannot write into disposed state.
func (e *Engine) advanceReveal(rv *reveal) bool {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}
	text, done := rv.Step()
	e.setTextLocked(rv.msgID, text)
	var fact *core.Details
	var onAddFact func(core.Details)
	if done {
		e.finalizeLocked(rv)
		if rv.action == core.ActionAddFact {
			d := core.Details{}
			if rv.details != nil {
				d = *rv.details
			}
			fact = &d
			onAddFact = e.onAddFact
		}
	}
	e.mu.Unlock()
	e.notify()

	if fact != nil && onAddFact != nil {
		onAddFact(*fact)
	}
	return true
}

func (e *Engine) finalizeLocked(rv *reveal) {
	for i := range e.transcript {
		if e.transcript[i].ID == rv.msgID {
			e.transcript[i].Text = rv.Full()
			e.transcript[i].Status = core.StatusConfirmed
			e.transcript[i].Action = rv.action
			e.transcript[i].Details = rv.details
			break
		}
	}
	if e.reveal == rv {
		e.reveal = nil
	}
	e.busy = false
}

func (e *Engine) setStatusLocked(id int64, status core.MessageStatus) {
	for i := range e.transcript {
		if e.transcript[i].ID == id {
			e.transcript[i].Status = status
			return
		}
	}
}

func (e *Engine) setTextLocked(id int64, text string) {
	for i := range e.transcript {
		if e.transcript[i].ID == id {
			e.transcript[i].Text = text
			return
		}
	}
}

func (e *Engine) notify() {
	select {
	case e.events <- struct{}{}:
	default:
	}
}

// Close tears the engine down. The liveness flag stops any in-flight
// response handler and the reveal task from writing into disposed state.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	if e.reveal != nil {
		e.reveal.Cancel()
	}
}
