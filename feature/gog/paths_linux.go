//go:build !windows && !darwin

package gog

import (
	"os"
	"path/filepath"
)

// Galaxy has no native Linux build, but a Wine install leaves its database
// in a prefix we can still read.
func detectPlatform() Paths {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}
	}

	for _, candidate := range []string{
		filepath.Join(home, ".wine", "drive_c", "ProgramData", "GOG.com", "Galaxy", "storage", "galaxy-2.0.db"),
		filepath.Join(home, "Games", "gog-galaxy", "storage", "galaxy-2.0.db"),
	} {
		if fileExists(candidate) {
			return Paths{Database: candidate}
		}
	}

	return Paths{}
}
