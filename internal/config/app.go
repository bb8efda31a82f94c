package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/zayeemZaki/ai-memory-app/pkg/log"
)

type AppConfig struct {
	// Presentation timing
	TypewriterTickMS int `env:"TYPEWRITER_TICK_MS" envDefault:"20"`
	FrameIntervalMS  int `env:"FRAME_INTERVAL_MS" envDefault:"50"`

	// The backing store is eventually consistent; a graph refresh after
	// add_fact waits this long before fetching.
	RefreshDelayMS int `env:"GRAPH_REFRESH_DELAY_MS" envDefault:"500"`

	// Force layout tuning
	ChargeStrength float64 `env:"GRAPH_CHARGE_STRENGTH" envDefault:"-120"`
	LinkDistance   float64 `env:"GRAPH_LINK_DISTANCE" envDefault:"14"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}
