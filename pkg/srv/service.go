package srv

import (
	"context"
	"errors"

	"github.com/zayeemZaki/ai-memory-app/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service and blocks until the context is cancelled or
// any service returns. Quitting the foreground UI therefore tears the
// whole process down, the same as an interrupt. All services are then
// shut down in order.
func Run(ctx context.Context, services ...Service) {
	logger := log.FromCtx(ctx)

	done := make(chan error, len(services))
	for _, service := range services {
		go func(service Service) {
			done <- service.Start(ctx)
		}(service)
	}

	select {
	case <-ctx.Done():
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("service exited with error")
		}
	}

	for _, service := range services {
		if err := service.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", service)
		}
	}
}
