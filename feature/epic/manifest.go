package epic

import (
	"fmt"
	"os"
	"path/filepath"

	"game-launcher/core/library"

	"github.com/goccy/go-json"
)

// installManifest mirrors the launcher's .item files. Field names follow the
// launcher's PascalCase convention.
type installManifest struct {
	AppName              string `json:"AppName"`
	DisplayName          string `json:"DisplayName"`
	InstallLocation      string `json:"InstallLocation"`
	LaunchExecutable     string `json:"LaunchExecutable"`
	AppVersionString     string `json:"AppVersionString"`
	InstallSize          uint64 `json:"InstallSize"`
	BIsIncompleteInstall bool   `json:"bIsIncompleteInstall"`
}

// ParseManifest reads one launcher .item manifest into a Game. AppName,
// DisplayName, InstallLocation and LaunchExecutable are all required; a
// manifest flagged as an incomplete install is also a parse failure since
// the game cannot run. The install location is recorded as written even when
// the directory no longer exists, but the executable only when it is present
// on disk.
func ParseManifest(path string) (library.Game, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return library.Game{}, fmt.Errorf("reading manifest: %w", err)
	}

	var manifest installManifest
	if err := json.Unmarshal(content, &manifest); err != nil {
		return library.Game{}, fmt.Errorf("%w: %s: %v", library.ErrParse, filepath.Base(path), err)
	}

	if manifest.AppName == "" || manifest.DisplayName == "" ||
		manifest.InstallLocation == "" || manifest.LaunchExecutable == "" {
		return library.Game{}, fmt.Errorf("%w: missing required fields in %s", library.ErrParse, filepath.Base(path))
	}
	if manifest.BIsIncompleteInstall {
		return library.Game{}, fmt.Errorf("%w: incomplete install in %s", library.ErrParse, filepath.Base(path))
	}

	game := library.NewGame(manifest.AppName, manifest.DisplayName, library.StoreEpic)
	game.Installed = true
	game.InstallPath = manifest.InstallLocation
	game.Version = manifest.AppVersionString
	game.SizeBytes = manifest.InstallSize

	executable := filepath.Join(manifest.InstallLocation, manifest.LaunchExecutable)
	if fileExists(executable) {
		game.Executable = executable
	}

	return game, nil
}
