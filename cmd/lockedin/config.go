package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/locked-in/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration LOCKED IN would use, as YAML.

Configuration is searched in order:
  1. --config <path>
  2. ~/.lockedin/config.yaml
  3. ./configs/lockedin.yaml
  4. Built-in defaults

The output is a valid config file and can be saved and edited:
  lockedin config > ~/.lockedin/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if err := config.Write(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
}
