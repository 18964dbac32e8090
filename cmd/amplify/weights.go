package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newWeightsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "weights",
		Short: "Print the scoring weights in use as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, discardLogger())
			if err != nil {
				return err
			}
			return writeYAML(cmd, engine.Weights())
		},
	}
}

func newLexiconCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon",
		Short: "Print the keyword lexicon in use as YAML",
		Long: `Print the keyword lexicon in use as YAML.

The output can be edited and passed back through scoring.lexicon_path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, discardLogger())
			if err != nil {
				return err
			}
			return writeYAML(cmd, engine.Lexicon())
		},
	}
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
