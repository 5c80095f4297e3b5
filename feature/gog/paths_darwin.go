//go:build darwin

package gog

import (
	"os"
	"path/filepath"
)

func detectPlatform() Paths {
	var paths Paths

	if pathExists("/Applications/GOG Galaxy.app") {
		paths.Client = "/Applications/GOG Galaxy.app"
	}

	if home, err := os.UserHomeDir(); err == nil {
		db := filepath.Join(home,
			"Library", "Application Support", "GOG.com", "Galaxy", "storage", "galaxy-2.0.db")
		if fileExists(db) {
			paths.Database = db
		}
	}

	return paths
}
