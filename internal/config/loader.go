package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserConfigDir is the per-user configuration directory under $HOME.
const UserConfigDir = ".t2048"

// Load resolves the effective configuration. A non-empty customPath must
// exist and parse; otherwise the search order is ~/.t2048/config.yaml, then
// ./config.yaml, then the embedded defaults. Missing files in the search
// path are skipped, a file that exists but fails to parse is an error.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		cfg, err := loadFile(path)
		if err == nil {
			return cfg, nil
		}
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	cfg, err := parse(defaultConfigYAML)
	if err != nil {
		// The embedded defaults are part of the binary.
		return Default(), nil
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, UserConfigDir, "config.yaml"))
	}
	paths = append(paths, "config.yaml")
	return paths
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}
