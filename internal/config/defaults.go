package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration, used when no YAML source
// can be read.
func Default() Config {
	return Config{
		Game: GameConfig{
			MaxUndos:     3,
			WinTile:      2048,
			SpawnDelayMs: 150,
			TickRate:     30,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/t2048.db",
		},
		Server: ServerConfig{
			Address:            ":2048",
			HostKey:            "~/.t2048/ssh_host_ed25519",
			IdleTimeoutMinutes: 10,
		},
	}
}
