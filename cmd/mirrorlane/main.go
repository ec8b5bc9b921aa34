// mirrorlane is a terminal game about spotting mirrored sprite frames.
//
// Usage:
//
//	mirrorlane play            - Play in the terminal
//	mirrorlane simulate        - Run the game headless with an autoplayer
//	mirrorlane strategies      - List autoplay strategies
//	mirrorlane config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mirrorlane",
	Short: "Mirror Lane - pick the frames whose rows mirror each other",
	Long: `Mirror Lane scrolls frames of animal sprites across the terminal.
Each frame has a top row and a bottom row. Pick the frames whose rows
match sprite for sprite to score.

Available commands:
  play        - Play in the terminal
  simulate    - Run headless with an autoplayer and print a summary
  strategies  - List autoplay strategies
  config      - Print the default configuration

Examples:
  mirrorlane play
  mirrorlane play --config ./my-mirror.yaml --sound
  mirrorlane simulate --seconds 120 --strategy random
  mirrorlane config > ~/.mirrorlane/configs/mirror.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mirrorlane",
		Level:           level,
	})
	return logger, nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
