package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/zayeemZaki/ai-memory-app/internal/config"
	"github.com/zayeemZaki/ai-memory-app/pkg/log"
	"github.com/zayeemZaki/ai-memory-app/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the MemGraph terminal client",
	Long:  `Connects to the backend, opens a fresh session and starts the chat and graph interface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// The TUI owns stdout, so logs go to a file under the runtime path.
		if err := os.MkdirAll(config.GetRuntimePath(), 0o755); err != nil {
			return err
		}
		logFile, closeLog := log.OpenLogFile(config.GetLogPath())
		defer closeLog()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx, logFile)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting memgraph")

		services := NewServices(ctx)
		srv.Run(ctx, services...)

		logger.Info().Msg("memgraph has been shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
