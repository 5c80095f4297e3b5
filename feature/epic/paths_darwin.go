//go:build darwin

package epic

import (
	"os"
	"path/filepath"
)

func detectPlatform() Paths {
	var paths Paths

	if pathExists("/Applications/Epic Games Launcher.app") {
		paths.Launcher = "/Applications/Epic Games Launcher.app"
	}

	if home, err := os.UserHomeDir(); err == nil {
		manifests := filepath.Join(home,
			"Library", "Application Support", "Epic", "EpicGamesLauncher", "Data", "Manifests")
		if dirExists(manifests) {
			paths.Manifests = manifests
		}
	}

	return paths
}
