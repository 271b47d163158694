// Package main is the entry point for the vellum CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/velldocs/vellum/internal/config"
	"github.com/velldocs/vellum/internal/embeddings"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vellum",
		Short:         "Generate text embeddings with a deterministic offline fallback",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newEmbedCommand(), newModeCommand())
	return cmd
}

// newLogger builds the JSON logger on stderr so command output on
// stdout stays machine-readable.
func newLogger(level string) *slog.Logger {
	logLevel := slog.LevelInfo
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// newService wires the embedding orchestrator from loaded config.
func newService(cfg *config.Config, logger *slog.Logger) *embeddings.Service {
	var provider embeddings.Provider
	if cfg.Mode == embeddings.ModeProvider {
		provider = embeddings.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Dimension)
	}
	return embeddings.NewService(embeddings.Config{
		Mode:          cfg.Mode,
		Dimension:     cfg.Dimension,
		MaxInputChars: cfg.MaxInputChars,
		CacheSize:     cfg.CacheSize,
	}, provider, logger)
}
