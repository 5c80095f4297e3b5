// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// only defines the configuration structure embedded by core/config.
//
// # Configuration
//
// The Config struct defines the HTTP port, the optional API key, and whether
// the server starts at all. The launcher is fully usable from the CLI with
// the server disabled.
package server
