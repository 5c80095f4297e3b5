package config

import (
	"reflect"
	"strings"

	"game-launcher/core/logger"
	"game-launcher/core/server"
	"game-launcher/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SteamConfig overrides Steam platform detection.
type SteamConfig struct {
	// Root points at the Steam installation directory. Empty means detect.
	Root string `mapstructure:"root" default:""`
}

// EpicConfig overrides Epic platform detection.
type EpicConfig struct {
	// Manifests points at the Epic manifests directory. Empty means detect.
	Manifests string `mapstructure:"manifests" default:""`
}

// GogConfig overrides GOG platform detection.
type GogConfig struct {
	// Database points at the Galaxy sqlite database. Empty means detect.
	Database string `mapstructure:"database" default:""`
}

// StoresConfig groups the per-platform detection overrides. They exist for
// unusual installs; normally detection finds everything on its own.
type StoresConfig struct {
	Steam SteamConfig `mapstructure:"steam"`
	Epic  EpicConfig  `mapstructure:"epic"`
	Gog   GogConfig   `mapstructure:"gog"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Data holds configuration for the JSON persistence directory.
	Data storage.Config `mapstructure:"data"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Stores holds the per-platform detection overrides.
	Stores StoresConfig `mapstructure:"stores"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
