// motogame is a side-scrolling motorbike runner.
//
// Usage:
//
//	motogame                 - Play the game
//	motogame replay <file>   - Re-simulate a recorded run headless
//
// Global flags:
//
//	--config <path>     - External YAML/TOML config (default: embedded)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/game"
	"github.com/younwookim/motogame/internal/application/replay"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
	"github.com/younwookim/motogame/internal/infrastructure/config"
	"github.com/younwookim/motogame/internal/infrastructure/ebitenbackend"
	"github.com/younwookim/motogame/internal/infrastructure/logging"
)

// recordAuto is the value of a bare --record
const recordAuto = "auto"

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// Game flags
	flagAssets string
	flagSeed   int64
	flagRecord string
	flagWatch  bool
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "motogame",
	Short: "Moto Run - dodge barriers and collect coins",
	Long: `Moto Run is a side-scrolling motorbike runner.
Ride along the road, dodge the barriers and collect coins until the finish.

Controls:
  Up/Down, Left/Right - Ride
  Enter               - Select
  Escape              - Back / skip intro

Examples:
  motogame
  motogame --seed 42 --record=run.json --mute
  motogame --record
  motogame --config ./game.yaml --watch --log-level debug
  motogame replay run.json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config (default: embedded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Assets directory (overrides the config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to a replay file (e.g. --record=replay.json; bare --record picks a timestamped name)")
	rootCmd.Flags().Lookup("record").NoOptDefVal = recordAuto
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes; applied on the next menu")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio; recordings made muted replay exactly")

	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads --config, or the embedded default
func loadConfig() (*config.GameConfig, error) {
	if flagConfig != "" {
		return config.LoadFile(flagConfig)
	}
	return loadDefaultConfig()
}

func loadDefaultConfig() (*config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").Load("game.yaml")
}

func runGame(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagAssets != "" {
		cfg.Assets.BasePath = flagAssets
	}
	if err := checkFlags(); err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var audio asset.Audio = &asset.Null{}
	if !flagMute {
		a := ebitenbackend.NewAudio(cfg.Audio.SampleRate, cfg.Audio.MusicVolume, cfg.Audio.SoundVolume)
		defer a.Close()
		audio = a
	}

	resources, err := asset.Load(ebitenbackend.NewLoader(cfg.Audio.SampleRate), cfg.Assets, logger)
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}

	ctx := &scene.Context{
		Config:    cfg,
		Resources: resources,
		Audio:     audio,
		Session:   scene.NewSession(),
		Logger:    logger,
	}
	world := system.NewWorld(cfg, rand.New(rand.NewSource(seed)))

	opts := game.Options{
		Input:  ebitenbackend.NewInput(),
		Clock:  game.NewMonotonicClock(),
		Canvas: ebitenbackend.NewCanvas,
	}
	if flagWatch {
		w, err := config.NewWatcher(flagConfig, logger)
		if err != nil {
			resources.Release()
			return err
		}
		defer func() { _ = w.Close() }()
		opts.Watcher = w
	}
	var recorder *replay.Recorder
	if flagRecord != "" {
		recorder = replay.NewRecorder(seed)
		opts.Recorder = recorder
	}

	g, err := game.New(ctx, game.Scenes(ctx, world), state.Menu, opts)
	if err != nil {
		resources.Release()
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("starting", "seed", seed, "muted", flagMute)
	runErr := ebiten.RunGame(g)

	if recorder != nil {
		filename := flagRecord
		if filename == recordAuto {
			filename = ""
		}
		saveRecording(recorder, filename, logger)
	}
	return runErr
}

// checkFlags rejects flag combinations the game cannot honor
func checkFlags() error {
	if flagWatch && flagConfig == "" {
		return fmt.Errorf("--watch needs --config")
	}
	// a reload is not part of the recording, so the replay would diverge
	if flagWatch && flagRecord != "" {
		return fmt.Errorf("--watch cannot be combined with --record")
	}
	return nil
}

// saveRecording writes r to filename, or to a timestamped name when it is empty
func saveRecording(r *replay.Recorder, filename string, logger *log.Logger) {
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	r.Stop()
	if err := r.Save(filename); err != nil {
		logger.Error("failed to save replay", "file", filename, "err", err)
		return
	}
	logger.Info("replay saved", "file", filename, "frames", r.FrameCount())
}
