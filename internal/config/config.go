// Package config provides YAML-based configuration loading for 2048.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Config contains all 2048 settings.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig defines rules and pacing.
type GameConfig struct {
	MaxUndos     int `yaml:"max_undos"`
	WinTile      int `yaml:"win_tile"`
	SpawnDelayMs int `yaml:"spawn_delay_ms"`
	TickRate     int `yaml:"tick_rate"`
}

// StorageConfig locates the score and save database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Validate reports every setting that cannot be used.
func (c Config) Validate() error {
	var errs []error

	if c.Game.MaxUndos < 0 {
		errs = append(errs, fmt.Errorf("game.max_undos must be >= 0, got %d", c.Game.MaxUndos))
	}
	if c.Game.WinTile < 4 || !t2048.ValidTile(c.Game.WinTile) {
		errs = append(errs, fmt.Errorf("game.win_tile must be a power of two in 4..%d, got %d", t2048.MaxTileValue, c.Game.WinTile))
	}
	if c.Game.SpawnDelayMs < 0 {
		errs = append(errs, fmt.Errorf("game.spawn_delay_ms must be >= 0, got %d", c.Game.SpawnDelayMs))
	}
	if c.Game.TickRate <= 0 || c.Game.TickRate > 240 {
		errs = append(errs, fmt.Errorf("game.tick_rate must be in 1..240, got %d", c.Game.TickRate))
	}
	if c.Storage.DBPath == "" {
		errs = append(errs, errors.New("storage.db_path must be set"))
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout_minutes must be >= 0, got %d", c.Server.IdleTimeoutMinutes))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Rules returns the engine rules.
func (c Config) Rules() t2048.Rules {
	return t2048.Rules{
		MaxUndos: c.Game.MaxUndos,
		WinTile:  c.Game.WinTile,
	}
}

// SpawnDelay returns the new-tile delay.
func (c Config) SpawnDelay() time.Duration {
	return time.Duration(c.Game.SpawnDelayMs) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout; zero disables it.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMinutes) * time.Minute
}

// Runtime builds the front-end settings. A zero seed is left for the
// caller to fill from the clock.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = c.Game.TickRate
	rc.Seed = seed
	rc.SpawnDelay = c.SpawnDelay()
	return rc
}
