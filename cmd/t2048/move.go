package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagMoveSlot string
	flagMoveSeed int64
)

var moveCmd = &cobra.Command{
	Use:   "move <direction>...",
	Short: "Play moves on a saved game without the TUI",
	Long: `Apply moves to the game in a save slot, store it back and print the board.

Directions are up/down/left/right or w/s/a/d; u or undo takes back a
step. A missing slot starts a new game.

Examples:
  t2048 move left up left
  t2048 move --slot bot w a s d u`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runMove,
}

func init() {
	moveCmd.Flags().StringVar(&flagMoveSlot, "slot", tui.DefaultSlot, "Save slot to play")
	moveCmd.Flags().Int64Var(&flagMoveSeed, "seed", 0, "RNG seed for new tiles (0 = random based on time)")
	rootCmd.AddCommand(moveCmd)
}

func runMove(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	seed := flagMoveSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := t2048.New(cfg.Rules(), rand.New(rand.NewSource(seed)))

	return withStore(func(store *storage.Store) error {
		sv, err := store.LoadGame(flagMoveSlot)
		switch {
		case errors.Is(err, storage.ErrSaveNotFound):
			logger.Info("starting a new game", "slot", flagMoveSlot)
		case err != nil:
			return err
		default:
			if err := game.Deserialize(sv.Payload); err != nil {
				return fmt.Errorf("slot %q: %w", flagMoveSlot, err)
			}
		}

		wasOver := game.Status().Over()
		for _, arg := range args {
			if err := applyMove(game, arg); err != nil {
				return err
			}
		}

		payload, err := game.Serialize()
		if err != nil {
			return err
		}
		if err := store.SaveGame(flagMoveSlot, payload, game.Score()); err != nil {
			return err
		}
		if game.Status().Over() && !wasOver {
			if _, err := store.SaveScore(game.ID(), game.Score(), t2048.MaxTile(game.Tiles())); err != nil {
				logger.Warn("could not save score", "err", err)
			}
		}

		printGame(game)
		return nil
	})
}

// applyMove plays one command-line word. Blocked moves and spent undos are
// logged and skipped.
func applyMove(game *t2048.Game, word string) error {
	if word == "u" || word == "undo" {
		if !game.Undo() {
			logger.Warn("cannot undo", "undos", game.UndosRemaining())
		}
		return nil
	}

	dir, ok := t2048.ParseDirection(strings.ToLower(word))
	if !ok {
		return fmt.Errorf("unknown move %q", word)
	}
	moved, err := game.Play(dir)
	if err != nil {
		return err
	}
	if !moved {
		logger.Warn("move does nothing", "move", dir, "status", game.Status())
	}
	return nil
}

func printGame(game *t2048.Game) {
	screen := core.NewScreen(t2048.MinScreenW, t2048.MinScreenH)
	game.Render(screen)
	for y := range screen.Height() {
		fmt.Fprintln(os.Stdout, strings.TrimRight(screen.Row(y), " "))
	}

	snap := game.Snapshot()
	fmt.Printf("score %d  undos %d  tiles %d  max tile %d  %s\n",
		snap.Score, snap.UndosRemaining, t2048.CountTiles(snap.Board), snap.MaxTile, snap.State)
}
