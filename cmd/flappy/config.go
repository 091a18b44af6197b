package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config
search and the --difficulty preset are applied.

Examples:
  flappy config show
  flappy config show --format toml > ~/.flappy/configs/flappy.toml
  flappy config show --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a configuration file",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigValidate,
}

func init() {
	configShowCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want yaml or toml)\n", flagFormat)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Encode(cfg, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

func runConfigValidate(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(args[0])
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok\n", args[0])
}
