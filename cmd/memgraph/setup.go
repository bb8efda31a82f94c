package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/zayeemZaki/ai-memory-app/internal/config"
	"github.com/zayeemZaki/ai-memory-app/internal/core"
	"github.com/zayeemZaki/ai-memory-app/internal/gateway"
	"github.com/zayeemZaki/ai-memory-app/internal/layout"
	"github.com/zayeemZaki/ai-memory-app/internal/service/chat"
	"github.com/zayeemZaki/ai-memory-app/internal/service/graphsync"
	"github.com/zayeemZaki/ai-memory-app/internal/session"
	"github.com/zayeemZaki/ai-memory-app/internal/transport/tui"
	"github.com/zayeemZaki/ai-memory-app/pkg/backoff"
	"github.com/zayeemZaki/ai-memory-app/pkg/log"
	"github.com/zayeemZaki/ai-memory-app/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	backendCfg := config.NewBackendConfig(ctx)

	// 2. Backend gateway
	gw := gateway.New(backendCfg.BaseURL, backendCfg.APISecret)
	if err := checkBackend(ctx, gw); err != nil {
		logger.Fatal().Err(err).Str("base_url", backendCfg.BaseURL).Msg("backend is not reachable")
	}

	// 3. Session
	// Every launch starts from a clean slate; only globally promoted
	// knowledge carries over between sessions.
	sess := session.New()
	logger.Info().Str("session_id", sess.ID).Msg("session opened")

	// 4. Chat engine
	chatEng := chat.NewEngine(gw, sess.ID, time.Duration(appCfg.TypewriterTickMS)*time.Millisecond)

	// 5. Graph synchronization
	graphEng := graphsync.NewEngine(gw, sess.ID, graphsync.FixedDelay{
		Delay: time.Duration(appCfg.RefreshDelayMS) * time.Millisecond,
	})

	// A completed add_fact schedules a refresh so the new entities show
	// up once the backend has settled.
	chatEng.SetOnAddFact(func(d core.Details) {
		logger.Debug().
			Int("nodes_created", d.NodesCreated).
			Int("edges_created", d.EdgesCreated).
			Msg("fact stored, scheduling graph refresh")
		graphEng.ScheduleRefresh(ctx)
	})

	// 6. Layout + UI
	sim := layout.NewSimulation(appCfg.ChargeStrength, appCfg.LinkDistance)
	ui := tui.NewService(chatEng, graphEng, sim, sess.ID,
		time.Duration(appCfg.FrameIntervalMS)*time.Millisecond)
	services = append(services, ui)

	// Engine teardown runs after the UI is gone: it stops the typewriter
	// task and drops any in-flight graph responses.
	services = append(services, srv.NewCleanup(func() error {
		chatEng.Close()
		graphEng.Close()
		return nil
	}))

	return services
}

// checkBackend verifies the backend answers its health probe before the
// UI takes over the terminal, retrying while it comes up.
func checkBackend(ctx context.Context, gw *gateway.Gateway) error {
	return backoff.NewDefaultRetrier().Do(ctx, func() error {
		return gw.Health(ctx)
	})
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
