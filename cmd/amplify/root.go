package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Amplify/internal/config"
	"github.com/MikeSquared-Agency/Amplify/internal/scoring"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amplify",
		Short: "Amplify - score post drafts for feed-ranking friendliness",
		Long: `Amplify estimates how a social feed ranking algorithm is likely to treat a
draft post and suggests concrete improvements.

Run it as an HTTP service with "serve" or score a single draft with "score".`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "path to config file")

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newScoreCommand())
	cmd.AddCommand(newWeightsCommand())
	cmd.AddCommand(newLexiconCommand())

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}

// loadConfig reads --config and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newEngine builds a scoring engine from the scoring section.
func newEngine(cfg *config.Config, logger *slog.Logger) (*scoring.Engine, error) {
	variant, err := cfg.Variant()
	if err != nil {
		return nil, err
	}
	opts := []scoring.Option{
		scoring.WithVariant(variant),
		scoring.WithWeights(cfg.Scoring.Weights),
		scoring.WithLogger(logger),
	}
	if cfg.Scoring.LexiconPath != "" {
		lex, err := scoring.LoadLexicon(cfg.Scoring.LexiconPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scoring.WithLexicon(lex))
	}
	return scoring.NewEngine(opts...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
