//go:build darwin

package steam

import "os"

func detectPlatform() Paths {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}
	}

	root := home + "/Library/Application Support/Steam"
	if !dirExists(root) {
		root = ""
	}

	return Paths{Root: root, Exe: findClientExe(root)}
}

func findClientExe(string) string {
	const app = "/Applications/Steam.app"
	if pathExists(app) {
		return app
	}
	return ""
}
