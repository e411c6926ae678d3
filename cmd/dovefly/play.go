package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dovefly/internal/assets"
	"github.com/vovakirdan/dovefly/internal/audio"
	"github.com/vovakirdan/dovefly/internal/config"
	"github.com/vovakirdan/dovefly/internal/game"
	"github.com/vovakirdan/dovefly/internal/platform/tui"
	"github.com/vovakirdan/dovefly/internal/registry"
)

var (
	flagDisplay string
	flagSound   bool
	flagSeed    int64
	flagAssets  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play DoveFly on this terminal",
	Long: `Start DoveFly on the local terminal. The terminal must be at least 80x40.

Controls:
  Space/Up/W/K  - Start a round, flap
  Q/Esc/Ctrl+C  - Quit

Examples:
  dovefly play
  dovefly play --display tcell
  dovefly play --seed 42 --sound
  dovefly play --assets ./art`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDisplay, "display", "",
		fmt.Sprintf("Display backend: %s (default from config)", strings.Join(config.Displays(), ", ")))
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with .ascii art overriding the built-in set")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	backend := cfg.Display.Backend
	if flagDisplay != "" {
		backend = flagDisplay
	}
	if !registry.Exists(backend) {
		return fmt.Errorf("unknown display %q", backend)
	}
	sound := cfg.Sound.Enabled || flagSound

	// The tcell backend checks its own size once the screen is up
	if backend == tui.Name {
		if err := checkTerminal(); err != nil {
			return err
		}
	}

	logOut, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut, "dovefly")
	logger.Debug("config loaded", "source", cfgSource)

	lib, err := assets.Open(assetsDir())
	if err != nil {
		return err
	}
	scene, err := game.LoadScene(lib)
	if err != nil {
		return err
	}

	display, err := registry.Create(backend, registry.Options{
		Width:  game.ScreenW,
		Height: game.ScreenH,
		Color:  cfg.Display.Color,
	})
	if err != nil {
		return err
	}

	opts := game.Options{
		Seed:   flagSeed,
		Logger: logger,
	}
	if sound {
		sounds := audio.New(logger)
		if err := sounds.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer sounds.Close()
			opts.Sounds = sounds
		}
	}

	engine := game.New(scene, display, display, opts)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = display.Run(ctx, engine.Run)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	snap := engine.Score()
	logger.Info("session finished", "rounds", engine.Rounds(), "score", snap.Points, "distance", snap.Distance)
	return err
}

// assetsDir resolves the asset directory: flag, then config, then built-in.
func assetsDir() string {
	if flagAssets != "" {
		return flagAssets
	}
	return cfg.Assets.Dir
}

// checkTerminal fails when stdout is a terminal smaller than the game.
func checkTerminal() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return nil
	}
	// One extra row for the help line
	needW, needH := game.ScreenW, game.ScreenH+1
	if w < needW || h < needH {
		return fmt.Errorf("terminal is %dx%d, DoveFly needs at least %dx%d", w, h, needW, needH)
	}
	return nil
}

// openLog opens the log file for appending, or discards logs when path is empty.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
