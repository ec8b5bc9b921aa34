package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mirror-lane/internal/config"
	"github.com/vovakirdan/mirror-lane/internal/core"
	"github.com/vovakirdan/mirror-lane/internal/games/mirror"
	"github.com/vovakirdan/mirror-lane/internal/platform/audio"
	"github.com/vovakirdan/mirror-lane/internal/platform/tui"
)

var (
	flagConfig  string
	flagSound   bool
	flagVolume  float64
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Mirror Lane",
	Long: `Start playing Mirror Lane in the terminal.

Controls:
  Click         - Pick the frame under the pointer
  Left/Right    - Move the cursor one frame
  Space/Enter   - Pick the frame above the cursor
  P/Esc         - Pause
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Examples:
  mirrorlane play
  mirrorlane play --sound
  mirrorlane play --config ./my-mirror.yaml --log-file ~/mirror.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play tones for correct and wrong picks")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.3, "Sound volume, 0 to 1")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(expandPath(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	cfg, err := config.LoadMirror(flagConfig)
	if err != nil {
		return err
	}

	game, err := mirror.New(cfg, logger.WithPrefix("mirrorlane/game"))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{Logger: logger}
	if flagSound {
		player := audio.NewPlayer(flagVolume, logger.WithPrefix("mirrorlane/audio"))
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable, playing muted", "err", err)
		} else {
			defer player.Close()
			opts.Cues = player
		}
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	state, err := tui.Run(game, rt, opts)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Printf("Score: %d in %d seconds\n", state.Score, state.Elapsed)
	return nil
}
