package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/balloon-shooter/internal/config"
)

var flagShowDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the next game would use, after the search order
--config -> ~/.arcade/configs/balloon.yaml -> ./configs/balloon.yaml -> defaults.

Use --defaults to print the built-in file, a good starting point for a custom config:
  balloon config --defaults > ~/.arcade/configs/balloon.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagShowDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadBalloon(flagConfig)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: failed to encode: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
