package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded config does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "game:\n  max_undos: 5\n  spawn_delay_ms: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.MaxUndos != 5 || cfg.Game.SpawnDelayMs != 0 {
		t.Errorf("overrides not applied: %+v", cfg.Game)
	}
	// Unset keys keep their defaults.
	if cfg.Game.WinTile != 2048 || cfg.Server.Address != ":2048" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("game: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("game:\n  win_tile: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "game.win_tile") {
		t.Errorf("Load of invalid values: err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"negative undos", func(c *Config) { c.Game.MaxUndos = -1 }, "game.max_undos"},
		{"win tile not a power of two", func(c *Config) { c.Game.WinTile = 100 }, "game.win_tile"},
		{"win tile too small", func(c *Config) { c.Game.WinTile = 2 }, "game.win_tile"},
		{"win tile unreachable", func(c *Config) { c.Game.WinTile = 1 << 20 }, "game.win_tile"},
		{"negative delay", func(c *Config) { c.Game.SpawnDelayMs = -5 }, "game.spawn_delay_ms"},
		{"zero tick rate", func(c *Config) { c.Game.TickRate = 0 }, "game.tick_rate"},
		{"no db path", func(c *Config) { c.Storage.DBPath = "" }, "storage.db_path"},
		{"negative idle timeout", func(c *Config) { c.Server.IdleTimeoutMinutes = -1 }, "server.idle_timeout_minutes"},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Validate() = %v, want mention of %s", err, tt.field)
			}
		})
	}
}

func TestDerivedSettings(t *testing.T) {
	cfg := Default()

	if got := cfg.SpawnDelay(); got != 150*time.Millisecond {
		t.Errorf("SpawnDelay = %v", got)
	}
	if got := cfg.IdleTimeout(); got != 10*time.Minute {
		t.Errorf("IdleTimeout = %v", got)
	}

	rules := cfg.Rules()
	if rules.MaxUndos != 3 || rules.WinTile != 2048 {
		t.Errorf("Rules = %+v", rules)
	}

	rc := cfg.Runtime(42)
	if rc.Seed != 42 || rc.TickRate != 30 || rc.SpawnDelay != 150*time.Millisecond {
		t.Errorf("Runtime = %+v", rc)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.t2048/t2048.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".t2048", "t2048.db"); got != want {
		t.Errorf("ExpandPath = %q, want %q", got, want)
	}

	for _, p := range []string{"/tmp/x.db", "rel/x.db", "~other/x.db", ""} {
		if got, _ := ExpandPath(p); got != p {
			t.Errorf("ExpandPath(%q) = %q, want unchanged", p, got)
		}
	}
}
