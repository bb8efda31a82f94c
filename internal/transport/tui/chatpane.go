package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/zayeemZaki/ai-memory-app/internal/core"
	"github.com/zayeemZaki/ai-memory-app/pkg/conv"
)

// chatPane owns the transcript viewport and the composer.
type chatPane struct {
	ta     textarea.Model
	vp     viewport.Model
	spin   spinner.Model
	action core.Action

	width, height int
}

func newChatPane() *chatPane {
	ta := textarea.New()
	ta.Placeholder = "Tell me a fact, or ask a question…"
	ta.Prompt = "┃ "
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &chatPane{
		ta:     ta,
		vp:     viewport.New(40, 10),
		spin:   sp,
		action: core.ActionAddFact,
	}
}

func (c *chatPane) setSize(width, height int) {
	c.width, c.height = width, height
	c.ta.SetWidth(width)
	c.vp.Width = width
	// Very short terminals would otherwise drive this negative.
	vh := height - c.ta.Height() - 2
	if vh < 1 {
		vh = 1
	}
	c.vp.Height = vh
}

// toggleAction flips the client-side intent hint. The server is free to
// reinterpret it.
func (c *chatPane) toggleAction() {
	if c.action == core.ActionAddFact {
		c.action = core.ActionAskQuestion
	} else {
		c.action = core.ActionAddFact
	}
}

// setTranscript re-renders the message log into the viewport and keeps
// it scrolled to the latest entry.
func (c *chatPane) setTranscript(messages []core.Message, busy bool) {
	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(renderMessage(m))
		sb.WriteString("\n")
	}
	if busy {
		sb.WriteString(subtleStyle.Render(c.spin.View() + " thinking…"))
		sb.WriteString("\n")
	}
	c.vp.SetContent(lipgloss.NewStyle().Width(c.vp.Width).Render(sb.String()))
	c.vp.GotoBottom()
}

func renderMessage(m core.Message) string {
	switch {
	case m.IsError():
		return errorStyle.Render(m.Text)
	case m.Role == core.RoleUser:
		return userMsgStyle.Render("You ▸ ") + m.Text
	case m.IsStreaming():
		return botMsgStyle.Render(core.AppName+" ▸ ") + m.Text + "▌"
	default:
		out := botMsgStyle.Render(core.AppName+" ▸ ") + conv.MarkdownToPlain([]byte(m.Text))
		if m.Action == core.ActionAddFact && m.Details != nil {
			out += "\n" + detailStyle.Render(fmt.Sprintf("  +%d entities, +%d relationships",
				m.Details.NodesCreated, m.Details.EdgesCreated))
		}
		return out
	}
}

func (c *chatPane) view(focused bool) string {
	actionLabel := "fact"
	if c.action == core.ActionAskQuestion {
		actionLabel = "question"
	}
	bar := subtleStyle.Render("mode: ") + actionOnStyle.Render(actionLabel) +
		subtleStyle.Render("  (ctrl+a to switch, enter to send, alt+enter for newline)")

	var composer string
	if focused {
		composer = c.ta.View()
	} else {
		composer = subtleStyle.Render(c.ta.View())
	}

	return c.vp.View() + "\n" + bar + "\n" + composer
}
