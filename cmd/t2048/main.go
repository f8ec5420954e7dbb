// t2048 plays 2048 in the terminal.
//
// Usage:
//
//	t2048 play               - Play a game
//	t2048 scores             - Show high scores
//	t2048 saves              - List, export, import and delete saved games
//	t2048 move <dir>...      - Play moves on a saved game without the TUI
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Use a specific config file
//	--db <path>     - Set database path (default: ~/.t2048/t2048.db)
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "t2048"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the sliding tile game 2048 for the terminal.

Available commands:
  play     - Play a game
  scores   - View high scores
  saves    - Manage saved games
  move     - Play moves on a saved game without the TUI
  serve    - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 scores
  t2048 saves export default ./game.txt
  t2048 serve --ssh :2048`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores and saves database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	logger.Debug("config loaded", "db", cfg.Storage.DBPath, "win_tile", cfg.Game.WinTile, "max_undos", cfg.Game.MaxUndos)
	return cfg
}
