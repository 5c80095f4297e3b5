package storage

// Config holds configuration for the persistence directory.
type Config struct {
	// Dir overrides the data directory. Empty means the per-user config
	// directory (e.g. ~/.config/game-launcher).
	Dir string `mapstructure:"dir" default:""`
}
