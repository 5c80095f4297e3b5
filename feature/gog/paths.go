package gog

import "os"

// Paths is an immutable snapshot of the local GOG Galaxy installation.
// Zero-value fields mean the component was not found.
type Paths struct {
	// Client is the Galaxy client executable or app bundle.
	Client string
	// Database is the galaxy-2.0.db file Galaxy maintains.
	Database string
}

// DetectPaths locates GOG Galaxy. A non-empty database path overrides
// detection of that component only; it is still verified to exist.
func DetectPaths(database string) Paths {
	paths := detectPlatform()
	if database != "" {
		if fileExists(database) {
			paths.Database = database
		} else {
			paths.Database = ""
		}
	}
	return paths
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
