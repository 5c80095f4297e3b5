package steam

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"game-launcher/core/library"
	"game-launcher/core/utils"
)

// parseVDFLine extracts a `"key" "value"` pair from one line of Valve's text
// format. The key comes back lowercased; the raw format does not capitalize
// consistently. Lines without both parts (braces, section heads, blanks)
// report ok=false.
func parseVDFLine(line string) (key, value string, ok bool) {
	parts := strings.Split(line, "\"")
	if len(parts) < 4 {
		return "", "", false
	}
	return strings.ToLower(parts[1]), parts[3], true
}

// parseVDFMap flattens a VDF document into a key/value map. Nesting is
// discarded; for the manifests read here every interesting key is unique.
func parseVDFMap(content string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		if key, value, ok := parseVDFLine(strings.TrimSpace(line)); ok {
			values[key] = value
		}
	}
	return values
}

// ParseManifest reads one appmanifest_*.acf file into a Game. appid and name
// are required; a manifest missing either is a parse failure the caller
// skips. The install directory resolves relative to the manifest under the
// common/ subfolder and is only recorded when it exists on disk.
func ParseManifest(path string) (library.Game, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return library.Game{}, fmt.Errorf("reading manifest: %w", err)
	}

	values := parseVDFMap(string(content))

	appID, ok := values["appid"]
	if !ok {
		return library.Game{}, fmt.Errorf("%w: missing appid in %s", library.ErrParse, filepath.Base(path))
	}
	name, ok := values["name"]
	if !ok {
		return library.Game{}, fmt.Errorf("%w: missing name in %s", library.ErrParse, filepath.Base(path))
	}

	game := library.NewGame(appID, name, library.StoreSteam)
	game.Installed = true

	if installDir := values["installdir"]; installDir != "" {
		installPath := filepath.Join(filepath.Dir(path), "common", installDir)
		if dirExists(installPath) {
			game.InstallPath = installPath
		}
	}

	if size := utils.ToInt(values["sizeondisk"]); size > 0 {
		game.SizeBytes = uint64(size)
	}

	game.CoverURL = cdnURL(appID, library.ArtworkCover)
	game.HeroURL = cdnURL(appID, library.ArtworkHero)
	game.IconURL = cdnURL(appID, library.ArtworkIcon)

	return game, nil
}

// ParseLibraryFolders extracts every "path" entry from libraryfolders.vdf,
// keeping only folders that exist. When none survive, the vdf's
// grandparent directory (the Steam root) is the sole library folder.
func ParseLibraryFolders(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading library folders: %w", err)
	}

	var folders []string
	for _, line := range strings.Split(string(content), "\n") {
		key, value, ok := parseVDFLine(strings.TrimSpace(line))
		if !ok || key != "path" {
			continue
		}
		folder := strings.ReplaceAll(value, `\\`, `\`)
		if dirExists(folder) {
			folders = append(folders, folder)
		}
	}

	if len(folders) == 0 {
		folders = append(folders, filepath.Dir(filepath.Dir(path)))
	}

	return folders, nil
}
