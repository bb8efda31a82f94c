package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/zayeemZaki/ai-memory-app/pkg/log"
)

type BackendConfig struct {
	BaseURL   string `env:"API_BASE_URL" envDefault:"http://localhost:5001"`
	APISecret string `env:"API_SECRET,required,notEmpty"`
}

func NewBackendConfig(ctx context.Context) *BackendConfig {
	c := &BackendConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Backend config")
	}
	return c
}
