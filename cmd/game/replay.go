package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/game"
	"github.com/younwookim/motogame/internal/application/replay"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
	"github.com/younwookim/motogame/internal/infrastructure/config"
	"github.com/younwookim/motogame/internal/infrastructure/logging"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run without a window",
	Long: `Feed a recording made with --record back through the game without
opening a window or playing audio, then print where it ended.

The run is reproduced exactly when it was recorded with --mute; with audio
the intro length depends on the narration.

Examples:
  motogame replay run.json
  motogame replay run.json --config ./game.yaml`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runReplay,
}

// replayResult is where a re-simulated run ended
type replayResult struct {
	Screen state.Screen
	Frames int
	Runs   int
	Coins  int
	Won    bool
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	res, err := simulate(cfg, *data, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run:    %s (seed %d)\n", data.RunID, data.Seed)
	fmt.Fprintf(out, "screen: %s\n", res.Screen)
	fmt.Fprintf(out, "frames: %d/%d\n", res.Frames, len(data.Frames))
	fmt.Fprintf(out, "runs:   %d\n", res.Runs)
	fmt.Fprintf(out, "coins:  %d (won: %t)\n", res.Coins, res.Won)
	return nil
}

// simulate replays data on the null backend
func simulate(cfg *config.GameConfig, data replay.ReplayData, logger *log.Logger) (replayResult, error) {
	null := &asset.Null{}
	resources, err := asset.Load(null, cfg.Assets, logger)
	if err != nil {
		return replayResult{}, err
	}

	ctx := &scene.Context{
		Config:    cfg,
		Resources: resources,
		Audio:     null,
		Session:   scene.NewSession(),
		Logger:    logger,
	}
	world := system.NewWorld(cfg, rand.New(rand.NewSource(data.Seed)))

	g, err := game.New(ctx, game.Scenes(ctx, world), state.Menu, game.Options{})
	if err != nil {
		resources.Release()
		return replayResult{}, err
	}
	defer g.Close()

	frames, err := replay.NewReplayer(data).Play(g)
	if err != nil {
		return replayResult{}, err
	}

	coins := ctx.Session.LastCoins
	if g.Screen() == state.Playing || g.Screen() == state.WinDelay {
		coins = world.Collected
	}
	return replayResult{
		Screen: g.Screen(),
		Frames: frames,
		Runs:   ctx.Session.Runs,
		Coins:  coins,
		Won:    ctx.Session.LastWon,
	}, nil
}
