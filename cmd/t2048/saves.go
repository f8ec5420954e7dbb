package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Manage saved games",
	Long: `List saved game slots, or move games between slots and files.

A save file holds the same text the game writes to its slot, so a
game exported from one machine can be imported or played on another.

Examples:
  t2048 saves
  t2048 saves export default ./game.txt
  t2048 saves import ./game.txt weekend
  t2048 saves delete weekend`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSavesList,
}

var savesExportCmd = &cobra.Command{
	Use:          "export <slot> <file>",
	Short:        "Write a saved game to a file (- for stdout)",
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runSavesExport,
}

var savesImportCmd = &cobra.Command{
	Use:          "import <file> <slot>",
	Short:        "Check a save file and store it in a slot",
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runSavesImport,
}

var savesDeleteCmd = &cobra.Command{
	Use:          "delete <slot>",
	Short:        "Delete a saved game",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesExportCmd)
	savesCmd.AddCommand(savesImportCmd)
	savesCmd.AddCommand(savesDeleteCmd)
}

// withStore opens the configured database for the duration of fn.
func withStore(fn func(store *storage.Store) error) error {
	cfg := loadConfig()
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func runSavesList(_ *cobra.Command, _ []string) error {
	return withStore(func(store *storage.Store) error {
		saves, err := store.ListSaves()
		if err != nil {
			return err
		}
		if len(saves) == 0 {
			fmt.Println("No saved games.")
			return nil
		}

		fmt.Printf("  %-20s  %-10s  %s\n", "Slot", "Score", "Saved")
		fmt.Printf("  %-20s  %-10s  %s\n", "----", "-----", "-----")
		for _, sv := range saves {
			fmt.Printf("  %-20s  %-10d  %s\n", sv.Slot, sv.Score, sv.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	})
}

func runSavesExport(_ *cobra.Command, args []string) error {
	slot, path := args[0], args[1]
	return withStore(func(store *storage.Store) error {
		sv, err := store.LoadGame(slot)
		if err != nil {
			return err
		}
		if path == "-" {
			_, err = fmt.Print(sv.Payload)
			return err
		}
		if err := os.WriteFile(path, []byte(sv.Payload), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("exported", "slot", slot, "file", path)
		return nil
	})
}

func runSavesImport(_ *cobra.Command, args []string) error {
	path, slot := args[0], args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	cfg := loadConfig()
	// Restoring into a throwaway game checks the file against the rules.
	game := t2048.New(cfg.Rules(), rand.New(rand.NewSource(1)))
	if err := game.Deserialize(string(data)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return withStore(func(store *storage.Store) error {
		if err := store.SaveGame(slot, string(data), game.Score()); err != nil {
			return err
		}
		logger.Info("imported", "file", path, "slot", slot, "score", game.Score())
		return nil
	})
}

func runSavesDelete(_ *cobra.Command, args []string) error {
	slot := args[0]
	return withStore(func(store *storage.Store) error {
		err := store.DeleteSave(slot)
		if errors.Is(err, storage.ErrSaveNotFound) {
			return fmt.Errorf("no save in slot %q", slot)
		}
		if err != nil {
			return err
		}
		logger.Info("deleted", "slot", slot)
		return nil
	})
}
