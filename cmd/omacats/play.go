package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/omacats/platformer/internal/config"
	"github.com/omacats/platformer/internal/core"
	"github.com/omacats/platformer/internal/platform/tui"
	"github.com/omacats/platformer/internal/storage"
	"github.com/omacats/platformer/internal/telemetry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a play session.

Controls:
  Left/Right, A/D - Walk
  Up/W            - Jump (press twice for Sue's double jump)
  Space           - Attack
  X               - Switch to the next cat
  P               - Pause
  Esc             - Abandon the run (score discarded)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Gentler enemy and level growth per round
  normal - Default progression
  hard   - Steeper growth per round
  fixed  - Every round plays like round one

Examples:
  omacats play
  omacats play --difficulty easy
  omacats play --config ./my-game.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log telemetry events to stderr")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := config.LoadGame(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&game, preset)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var emitter telemetry.Emitter = telemetry.NopEmitter{}
	if flagVerbose {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "omacats"})
		logger.SetLevel(log.DebugLevel)
		emitter = telemetry.NewLogEmitter(logger)
	}

	runErr := tui.Run(game, store, cfg, emitter, defaultPlayerName())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// defaultPlayerName suggests the OS username for leaderboard entry.
func defaultPlayerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		name := u.Username
		if len(name) > storage.MaxNameLen {
			name = name[:storage.MaxNameLen]
		}
		return name
	}
	return "cat"
}
