package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8090"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// Enabled controls whether the HTTP server starts. The CLI commands work
	// without it.
	Enabled bool `mapstructure:"enabled" default:"true"`
}
