package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocketberry/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The file is looked up in this order: --config, then
~/.rocketberry/configs/rocketberry.yaml, then ./configs/rocketberry.yaml,
then the embedded defaults. Redirect the output to start a custom config.

Examples:
  rocketberry config
  rocketberry config --defaults > ~/.rocketberry/configs/rocketberry.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded defaults, ignoring config files")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, data)
	return nil
}
