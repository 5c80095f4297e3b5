// Package utils provides common utility functions for the launcher.
// It includes conversion helpers for values read out of text manifests,
// where everything arrives as a string, and a cross-platform URI opener.
package utils
