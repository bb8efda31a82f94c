package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zayeemZaki/ai-memory-app/internal/core"
)

func TestChatPaneSetSizeClampsViewport(t *testing.T) {
	c := newChatPane()

	c.setSize(40, 2)
	assert.Equal(t, 1, c.vp.Height, "viewport height must never go below one row")

	c.setSize(40, 20)
	assert.Equal(t, 20-c.ta.Height()-2, c.vp.Height)
}

func TestToggleAction(t *testing.T) {
	c := newChatPane()
	assert.Equal(t, core.ActionAddFact, c.action)
	c.toggleAction()
	assert.Equal(t, core.ActionAskQuestion, c.action)
	c.toggleAction()
	assert.Equal(t, core.ActionAddFact, c.action)
}

func TestRenderMessageVariants(t *testing.T) {
	errOut := renderMessage(core.Message{Role: core.RoleAssistant, Text: "Error: boom", Status: core.StatusFailed})
	assert.Contains(t, errOut, "boom")

	userOut := renderMessage(core.Message{Role: core.RoleUser, Text: "hello", Status: core.StatusConfirmed})
	assert.Contains(t, userOut, "You")
	assert.Contains(t, userOut, "hello")

	factOut := renderMessage(core.Message{
		Role:    core.RoleAssistant,
		Text:    "Got it!",
		Status:  core.StatusConfirmed,
		Action:  core.ActionAddFact,
		Details: &core.Details{NodesCreated: 2, EdgesCreated: 1},
	})
	assert.Contains(t, factOut, "+2 entities, +1 relationships")
}
