// Package config provides YAML-based configuration loading for the
// terminal 2048 game: UI presentation settings and the history database
// location.
package config

// Config is the top-level application configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
}

// UIConfig defines presentation settings for the board renderer.
type UIConfig struct {
	// EmptyGlyph is drawn in the center of empty cells.
	EmptyGlyph string `yaml:"empty_glyph"`
	// Theme selects the tile color scheme: "color" or "mono".
	Theme string `yaml:"theme"`
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	// DBPath is the history database location. A leading ~ expands to the
	// user's home directory.
	DBPath string `yaml:"db_path"`
}

// Themes recognized by the renderer.
const (
	ThemeColor = "color"
	ThemeMono  = "mono"
)

// Normalize fills in defaults for any zero-valued fields so a partial YAML
// file still yields a usable config.
func (c *Config) Normalize() {
	def := Default()
	if c.UI.EmptyGlyph == "" {
		c.UI.EmptyGlyph = def.UI.EmptyGlyph
	}
	if c.UI.Theme != ThemeColor && c.UI.Theme != ThemeMono {
		c.UI.Theme = def.UI.Theme
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
}
