package steam

import (
	"os"
	"path/filepath"
	"strings"

	"game-launcher/core/utils"
)

// Paths is an immutable snapshot of the local Steam installation. Zero-value
// fields mean the component was not found; that is the normal state on a
// machine without Steam.
type Paths struct {
	// Root is the Steam installation directory.
	Root string
	// Exe is the Steam client executable.
	Exe string
}

// DetectPaths locates the Steam installation. A non-empty root overrides
// detection entirely; it is still verified to exist.
func DetectPaths(root string) Paths {
	if root != "" {
		if !dirExists(root) {
			return Paths{}
		}
		return Paths{Root: root, Exe: findClientExe(root)}
	}
	return detectPlatform()
}

// DetectSteamID reads config/loginusers.vdf under the Steam root and returns
// the id of the most recently logged-in user, or "" when none can be found.
// Account ids in the file are 17-digit quoted keys; the entry whose
// MostRecent flag is set wins, otherwise the first id seen.
func (p Paths) DetectSteamID() string {
	if p.Root == "" {
		return ""
	}

	content, err := os.ReadFile(filepath.Join(p.Root, "config", "loginusers.vdf"))
	if err != nil {
		return ""
	}

	var currentID, mostRecentID string
	for _, line := range strings.Split(string(content), "\n") {
		key, value, ok := parseVDFLine(line)
		if !ok {
			// Lines like `"76561198012345678"` open a user block and have no
			// value part.
			trimmed := strings.Trim(strings.TrimSpace(line), "\"")
			if isSteamID(trimmed) {
				currentID = trimmed
			}
			continue
		}

		if key == "mostrecent" && utils.ToBool(value) && currentID != "" {
			mostRecentID = currentID
		}
	}

	if mostRecentID != "" {
		return mostRecentID
	}
	return currentID
}

func isSteamID(s string) bool {
	if len(s) != 17 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
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
