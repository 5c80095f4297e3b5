//go:build windows

package steam

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

func detectPlatform() Paths {
	root := registryInstallPath()
	if root == "" || !dirExists(root) {
		root = firstExistingDir(
			`C:\Program Files (x86)\Steam`,
			`C:\Program Files\Steam`,
		)
	}
	if root == "" {
		return Paths{}
	}
	return Paths{Root: root, Exe: findClientExe(root)}
}

func registryInstallPath() string {
	for _, keyPath := range []string{
		`SOFTWARE\WOW6432Node\Valve\Steam`,
		`SOFTWARE\Valve\Steam`,
	} {
		key, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		value, _, err := key.GetStringValue("InstallPath")
		key.Close()
		if err == nil && value != "" {
			return value
		}
	}
	return ""
}

func findClientExe(root string) string {
	exe := filepath.Join(root, "steam.exe")
	if fileExists(exe) {
		return exe
	}
	return ""
}

func firstExistingDir(candidates ...string) string {
	for _, c := range candidates {
		if dirExists(c) {
			return c
		}
	}
	return ""
}
