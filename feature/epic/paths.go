package epic

import "os"

// Paths is an immutable snapshot of the local Epic Games Launcher
// installation. Zero-value fields mean the component was not found.
type Paths struct {
	// Launcher is the launcher executable or app bundle.
	Launcher string
	// Manifests is the directory holding per-game install manifests.
	Manifests string
}

// DetectPaths locates the Epic Games Launcher. A non-empty manifests
// directory overrides detection of that component only; the launcher itself
// is still detected from its platform locations.
func DetectPaths(manifests string) Paths {
	paths := detectPlatform()
	if manifests != "" {
		if dirExists(manifests) {
			paths.Manifests = manifests
		} else {
			paths.Manifests = ""
		}
	}
	return paths
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
