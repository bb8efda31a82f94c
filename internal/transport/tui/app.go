package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zayeemZaki/ai-memory-app/internal/core"
	"github.com/zayeemZaki/ai-memory-app/internal/layout"
	"github.com/zayeemZaki/ai-memory-app/internal/service/chat"
	"github.com/zayeemZaki/ai-memory-app/internal/service/graphsync"
)

// splitWidth is the narrowest terminal that fits both panels side by
// side; below it the panels stack behind tab selection.
const splitWidth = 100

type focusArea int

const (
	focusChat focusArea = iota
	focusGraph
)

type (
	frameMsg      time.Time
	chatEventMsg  struct{}
	graphEventMsg struct{}
)

// Model is the shell: it wires the session-scoped engines together and
// owns responsive layout and panel focus. Pure composition; all state
// machines live in the engines.
type Model struct {
	ctx      context.Context
	chatEng  *chat.Engine
	graphEng *graphsync.Engine
	sim      *layout.Simulation

	chat  *chatPane
	graph *graphPane
	focus focusArea

	frameInterval time.Duration
	width, height int
	sessionID     string
}

func newModel(ctx context.Context, chatEng *chat.Engine, graphEng *graphsync.Engine, sim *layout.Simulation, sessionID string, frameInterval time.Duration) *Model {
	return &Model{
		ctx:           ctx,
		chatEng:       chatEng,
		graphEng:      graphEng,
		sim:           sim,
		chat:          newChatPane(),
		graph:         newGraphPane(sim),
		frameInterval: frameInterval,
		sessionID:     sessionID,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.chat.spin.Tick,
		m.frameTick(),
		m.waitChatEvent(),
		m.waitGraphEvent(),
		m.refreshNow(),
	)
}

func (m *Model) frameTick() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) waitChatEvent() tea.Cmd {
	return func() tea.Msg {
		<-m.chatEng.Events()
		return chatEventMsg{}
	}
}

func (m *Model) waitGraphEvent() tea.Cmd {
	return func() tea.Msg {
		<-m.graphEng.Events()
		return graphEventMsg{}
	}
}

func (m *Model) refreshNow() tea.Cmd {
	return func() tea.Msg {
		_ = m.graphEng.Refresh(m.ctx)
		return nil
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case frameMsg:
		m.graph.tickFrame()
		return m, m.frameTick()

	case chatEventMsg:
		m.chat.setTranscript(m.chatEng.Transcript(), m.chatEng.Busy())
		return m, m.waitChatEvent()

	case graphEventMsg:
		m.sim.SetSnapshot(m.graphEng.Snapshot())
		return m, m.waitGraphEvent()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.chat.spin, cmd = m.chat.spin.Update(msg)
		if m.chatEng.Busy() {
			m.chat.setTranscript(m.chatEng.Transcript(), true)
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.focus == focusChat {
			m.focus = focusGraph
			m.chat.ta.Blur()
		} else {
			m.focus = focusChat
			m.chat.ta.Focus()
		}
		return m, nil
	}

	if m.focus == focusGraph {
		return m.handleGraphKey(msg)
	}
	return m.handleChatKey(msg)
}

func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Plain Enter submits; the busy flag and blank input make this
		// a silent no-op when there is nothing to do.
		if m.chatEng.Submit(m.ctx, m.chat.ta.Value(), m.chat.action) {
			m.chat.ta.Reset()
		}
		return m, nil
	case "alt+enter":
		// Modifier-held Enter inserts a literal newline instead.
		m.chat.ta.InsertString("\n")
		return m, nil
	case "ctrl+a":
		m.chat.toggleAction()
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.chat.vp, cmd = m.chat.vp.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.chat.ta, cmd = m.chat.ta.Update(msg)
	return m, cmd
}

func (m *Model) handleGraphKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const panStep = 4
	switch msg.String() {
	case "left", "h":
		m.graph.pan(-panStep, 0)
	case "right", "l":
		m.graph.pan(panStep, 0)
	case "up", "k":
		m.graph.pan(0, -panStep)
	case "down", "j":
		m.graph.pan(0, panStep)
	case "+", "=":
		m.graph.zoomBy(1.25)
	case "-", "_":
		m.graph.zoomBy(0.8)
	case "n":
		m.graph.cycleSelection(1)
	case "p":
		m.graph.cycleSelection(-1)
	case "enter":
		m.graph.focusSelected()
	case "r":
		return m, m.refreshNow()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) resize() {
	headerHeight := 2
	if m.width >= splitWidth {
		chatWidth := m.width * 2 / 5
		graphWidth := m.width - chatWidth - 4
		m.chat.setSize(chatWidth-2, m.height-headerHeight-2)
		m.graph.setSize(graphWidth, m.height-headerHeight-4)
	} else {
		m.chat.setSize(m.width-4, m.height-headerHeight-2)
		m.graph.setSize(m.width-4, m.height-headerHeight-4)
	}
}

func (m *Model) View() string {
	if m.width == 0 {
		return "loading…"
	}

	header := titleStyle.Render(core.AppName+" "+core.AppVersion) +
		subtleStyle.Render("  "+m.sessionID)

	chatView := m.paneFrame(focusChat).Render(m.chat.view(m.focus == focusChat))
	graphView := m.paneFrame(focusGraph).Render(m.graph.view())

	if m.width >= splitWidth {
		return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, chatView, " ", graphView)
	}

	// Narrow terminal: one panel at a time, tab switches.
	if m.focus == focusGraph {
		return header + "\n" + graphView
	}
	return header + "\n" + chatView
}

func (m *Model) paneFrame(area focusArea) lipgloss.Style {
	if m.focus == area {
		return focusedPaneStyle
	}
	return paneStyle
}
