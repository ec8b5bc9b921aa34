package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirror-lane/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.mirrorlane/configs/mirror.yaml or ./configs/mirror.yaml and edit it
to change the lane, the sprite catalog or the timing.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), string(config.GetDefaultYAML()))
	},
}
