package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zayeemZaki/ai-memory-app/internal/config"
	"github.com/zayeemZaki/ai-memory-app/pkg/log"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "memgraph",
	Short: "MemGraph — a conversational knowledge graph",
	Long:  `MemGraph is a terminal client for a conversational knowledge graph: tell it facts, ask it questions, and watch the graph grow.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context, w io.Writer) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug, w)
}
