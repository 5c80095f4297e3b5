//go:build windows

package epic

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

const defaultManifests = `C:\ProgramData\Epic\EpicGamesLauncher\Data\Manifests`

func detectPlatform() Paths {
	var paths Paths

	if appData := registryAppDataPath(); appData != "" {
		manifests := filepath.Join(appData, "Manifests")
		if dirExists(manifests) {
			paths.Manifests = manifests
		}
	}
	if paths.Manifests == "" && dirExists(defaultManifests) {
		paths.Manifests = defaultManifests
	}

	for _, candidate := range []string{
		`C:\Program Files (x86)\Epic Games\Launcher\Portal\Binaries\Win32\EpicGamesLauncher.exe`,
		`C:\Program Files\Epic Games\Launcher\Portal\Binaries\Win64\EpicGamesLauncher.exe`,
	} {
		if fileExists(candidate) {
			paths.Launcher = candidate
			break
		}
	}

	return paths
}

func registryAppDataPath() string {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\WOW6432Node\Epic Games\EpicGamesLauncher`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer key.Close()

	value, _, err := key.GetStringValue("AppDataPath")
	if err != nil {
		return ""
	}
	return value
}
