package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirror-lane/internal/config"
	"github.com/vovakirdan/mirror-lane/internal/core"
	"github.com/vovakirdan/mirror-lane/internal/games/mirror"
	mirrorcore "github.com/vovakirdan/mirror-lane/internal/games/mirror/core"
	"github.com/vovakirdan/mirror-lane/internal/registry"
)

var (
	flagSimConfig   string
	flagSeconds     int
	flagStrategy    string
	flagSelectEvery int
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless with an autoplayer",
	Long: `Runs Mirror Lane without a terminal UI. An autoplay strategy picks
frames at a fixed cadence and a summary is printed at the end.

Examples:
  mirrorlane simulate
  mirrorlane simulate --seconds 600 --strategy random --seed 42
  mirrorlane simulate --strategy idle --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().IntVar(&flagSeconds, "seconds", 60, "Simulated seconds to run")
	simulateCmd.Flags().StringVar(&flagStrategy, "strategy", "perfect", "Autoplay strategy (see 'mirrorlane strategies')")
	simulateCmd.Flags().IntVar(&flagSelectEvery, "select-every", 30, "Ticks between autoplayer decisions")
}

// simOptions configures a headless run.
type simOptions struct {
	Seconds     int
	TickRate    int
	SelectEvery int
	Seed        int64
	Strategy    registry.Strategy
}

// simSummary is what a headless run reports.
type simSummary struct {
	Score     int
	Elapsed   int
	Stats     mirrorcore.Stats
	Simulated time.Duration
	Wall      time.Duration
}

// Accuracy returns the share of selections that matched, in percent.
func (s simSummary) Accuracy() float64 {
	if s.Stats.Selections == 0 {
		return 0
	}
	return 100 * float64(s.Stats.Matches) / float64(s.Stats.Selections)
}

// simulate drives game for the requested time, letting the strategy pick
// every SelectEvery ticks.
func simulate(game *mirror.Game, opts simOptions) simSummary {
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: opts.TickRate, Seed: opts.Seed}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	game.Reset(rt)

	start := time.Now()
	ticks := opts.Seconds * rt.TickRate
	for i := 0; i < ticks; i++ {
		selected := mirrorcore.NoFrame
		if opts.SelectEvery > 0 && i%opts.SelectEvery == 0 {
			selected = opts.Strategy.Choose(game.Engine().Frames(), game.Visible())
		}
		game.Advance(selected)
	}

	state := game.State()
	return simSummary{
		Score:     state.Score,
		Elapsed:   state.Elapsed,
		Stats:     game.Engine().Stats(),
		Simulated: time.Duration(game.Engine().Clock() * float64(time.Second)),
		Wall:      time.Since(start),
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if flagSeconds <= 0 {
		return fmt.Errorf("--seconds must be positive, got %d", flagSeconds)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	strategy, err := registry.Create(flagStrategy, seed)
	if err != nil {
		return err
	}

	cfg, err := config.LoadMirror(flagSimConfig)
	if err != nil {
		return err
	}

	runID := uuid.New()
	logger = logger.With("run", runID.String())

	game, err := mirror.New(cfg, logger.WithPrefix("mirrorlane/game"))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("simulation started", "strategy", flagStrategy, "seconds", flagSeconds, "seed", seed)
	summary := simulate(game, simOptions{
		Seconds:     flagSeconds,
		TickRate:    flagFPS,
		SelectEvery: flagSelectEvery,
		Seed:        seed,
		Strategy:    strategy,
	})
	logger.Info("simulation finished", "score", summary.Score, "wall", summary.Wall)

	printSummary(cmd.OutOrStdout(), runID, flagStrategy, seed, summary)
	return nil
}

func printSummary(w io.Writer, runID uuid.UUID, strategy string, seed int64, s simSummary) {
	fmt.Fprintf(w, "Run %s (strategy %s, seed %d)\n", runID, strategy, seed)
	fmt.Fprintf(w, "  Simulated:   %s in %s wall time\n",
		durafmt.Parse(s.Simulated).LimitFirstN(2).Format(shortUnits),
		durafmt.Parse(s.Wall).LimitFirstN(2).Format(shortUnits))
	fmt.Fprintf(w, "  Ticks:       %s\n", humanize.Comma(int64(s.Stats.Ticks)))
	fmt.Fprintf(w, "  Respawned:   %s frames\n", humanize.Comma(int64(s.Stats.Respawned)))
	fmt.Fprintf(w, "  Selections:  %s (%s matched, %s missed)\n",
		humanize.Comma(int64(s.Stats.Selections)),
		humanize.Comma(int64(s.Stats.Matches)),
		humanize.Comma(int64(s.Stats.Misses)))
	fmt.Fprintf(w, "  Accuracy:    %s%%\n", humanize.FtoaWithDigits(s.Accuracy(), 1))
	fmt.Fprintf(w, "  Score:       %d after %d seconds\n", s.Score, s.Elapsed)
}
