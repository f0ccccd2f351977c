package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		UI: UIConfig{
			EmptyGlyph: "•",
			Theme:      ThemeColor,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/history.db",
		},
	}
}
