package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration t2048 would play with, as YAML.

Search order:
  --config <path>
  ~/.t2048/config.yaml
  ./configs/t2048.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
