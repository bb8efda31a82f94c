package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zayeemZaki/ai-memory-app/internal/layout"
	"github.com/zayeemZaki/ai-memory-app/internal/service/chat"
	"github.com/zayeemZaki/ai-memory-app/internal/service/graphsync"
)

// Service runs the terminal UI as a managed service.
type Service struct {
	chatEng       *chat.Engine
	graphEng      *graphsync.Engine
	sim           *layout.Simulation
	sessionID     string
	frameInterval time.Duration

	prog *tea.Program
}

func NewService(chatEng *chat.Engine, graphEng *graphsync.Engine, sim *layout.Simulation, sessionID string, frameInterval time.Duration) *Service {
	return &Service{
		chatEng:       chatEng,
		graphEng:      graphEng,
		sim:           sim,
		sessionID:     sessionID,
		frameInterval: frameInterval,
	}
}

func (s *Service) Start(ctx context.Context) error {
	model := newModel(ctx, s.chatEng, s.graphEng, s.sim, s.sessionID, s.frameInterval)
	s.prog = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := s.prog.Run()
	return err
}

func (s *Service) Shutdown(ctx context.Context) error {
	if s.prog != nil {
		s.prog.Quit()
	}
	return nil
}
