package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagSeed     int64
	flagSlot     string
	flagLoadFile string
	flagLogFile  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  WASD/Arrows - Slide tiles
  U           - Undo (limited per game)
  N           - New game
  Ctrl+S      - Save to the slot
  Ctrl+L      - Load from the slot
  ?           - More keys
  Q/Ctrl+C    - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --slot weekend
  t2048 play --load ./game.txt`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagSlot, "slot", tui.DefaultSlot, "Save slot used by ctrl+s and ctrl+l")
	playCmd.Flags().StringVar(&flagLoadFile, "load", "", "Start from a save file")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write game log to a file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := cfg.Runtime(seed)
	rc.ScreenW = width
	rc.ScreenH = height

	game := t2048.New(cfg.Rules(), rand.New(rand.NewSource(seed)))
	if flagLoadFile != "" {
		data, err := os.ReadFile(flagLoadFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading save file: %v\n", err)
			os.Exit(1)
		}
		if err := game.Deserialize(string(data)); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", flagLoadFile, err)
			os.Exit(1)
		}
	}

	// The TUI owns the terminal, so game logs go to a file or nowhere.
	gameLog := io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		gameLog = f
	}
	playLogger := log.NewWithOptions(gameLog, log.Options{ReportTimestamp: true, Prefix: "t2048"})
	playLogger.SetLevel(logger.GetLevel())

	// Open storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open database, scores and saves disabled", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	playLogger.Info("game started", "seed", seed, "slot", flagSlot)
	runErr := tui.Run(game, tui.Options{
		Store:   store,
		Slot:    flagSlot,
		Logger:  playLogger,
		Runtime: rc,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
