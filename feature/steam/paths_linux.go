//go:build !windows && !darwin

package steam

import (
	"os"
	"os/exec"
	"path/filepath"
)

func detectPlatform() Paths {
	var root string
	if home, err := os.UserHomeDir(); err == nil {
		candidates := []string{
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".local", "share", "Steam"),
			filepath.Join(home, ".steam"),
		}
		for _, c := range candidates {
			if dirExists(c) && dirExists(filepath.Join(c, "steamapps")) {
				root = c
				break
			}
		}
	}

	return Paths{Root: root, Exe: findClientExe(root)}
}

func findClientExe(string) string {
	if exe, err := exec.LookPath("steam"); err == nil {
		return exe
	}
	for _, c := range []string{"/usr/bin/steam", "/usr/local/bin/steam"} {
		if fileExists(c) {
			return c
		}
	}
	return ""
}
