//go:build windows

package gog

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

const defaultDatabase = `C:\ProgramData\GOG.com\Galaxy\storage\galaxy-2.0.db`

func detectPlatform() Paths {
	var paths Paths

	if clientDir := registryClientDir(); clientDir != "" {
		exe := filepath.Join(clientDir, "GalaxyClient.exe")
		if fileExists(exe) {
			paths.Client = exe
		}
	}
	if paths.Client == "" {
		for _, candidate := range []string{
			`C:\Program Files (x86)\GOG Galaxy\GalaxyClient.exe`,
			`C:\Program Files\GOG Galaxy\GalaxyClient.exe`,
		} {
			if fileExists(candidate) {
				paths.Client = candidate
				break
			}
		}
	}

	if fileExists(defaultDatabase) {
		paths.Database = defaultDatabase
	}

	return paths
}

func registryClientDir() string {
	for _, root := range []string{
		`SOFTWARE\WOW6432Node\GOG.com\GalaxyClient\paths`,
		`SOFTWARE\GOG.com\GalaxyClient\paths`,
	} {
		key, err := registry.OpenKey(registry.LOCAL_MACHINE, root, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		value, _, err := key.GetStringValue("client")
		key.Close()
		if err == nil && value != "" {
			return value
		}
	}
	return ""
}
