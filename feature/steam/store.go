package steam

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"game-launcher/core/library"
	"game-launcher/core/utils"

	"go.uber.org/zap"
)

const cdnBase = "https://steamcdn-a.akamaihd.net/steam/apps"

// Store is the Steam platform integration.
type Store struct {
	paths  Paths
	logger *zap.Logger
}

// NewStore detects the local Steam installation and builds the adapter.
// A non-empty root skips detection (config override).
func NewStore(root string, logger *zap.Logger) *Store {
	return NewStoreWithPaths(DetectPaths(root), logger)
}

// NewStoreWithPaths builds the adapter over a fixed path snapshot.
func NewStoreWithPaths(paths Paths, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{paths: paths, logger: logger}
}

func (s *Store) StoreID() string     { return "steam" }
func (s *Store) DisplayName() string { return "Steam" }
func (s *Store) IsAvailable() bool   { return s.paths.Root != "" }
func (s *Store) ClientPath() string  { return s.paths.Exe }

// Paths exposes the detected path snapshot.
func (s *Store) Paths() Paths { return s.paths }

// GetInstalledGames walks every Steam library folder and parses each
// appmanifest it finds. Unparsable manifests are logged and skipped; they
// never abort the scan.
func (s *Store) GetInstalledGames() ([]library.Game, error) {
	if s.paths.Root == "" {
		return nil, nil
	}

	folders, err := s.libraryFolders()
	if err != nil {
		return nil, err
	}

	var games []library.Game
	for _, folder := range folders {
		steamapps := filepath.Join(folder, "steamapps")
		entries, err := os.ReadDir(steamapps)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, "appmanifest_") || !strings.HasSuffix(name, ".acf") {
				continue
			}

			game, err := ParseManifest(filepath.Join(steamapps, name))
			if err != nil {
				s.logger.Warn("skipping unparsable manifest",
					zap.String("file", name),
					zap.Error(err))
				continue
			}
			games = append(games, game)
		}
	}

	return games, nil
}

func (s *Store) libraryFolders() ([]string, error) {
	vdfPath := filepath.Join(s.paths.Root, "steamapps", "libraryfolders.vdf")
	if !fileExists(vdfPath) {
		return []string{s.paths.Root}, nil
	}
	return ParseLibraryFolders(vdfPath)
}

// LaunchGame starts the game through the Steam client's -applaunch flag.
func (s *Store) LaunchGame(gameID string) error {
	if s.paths.Exe == "" {
		return fmt.Errorf("%w: steam executable not found", library.ErrLaunch)
	}
	if err := launchClient(s.paths.Exe, gameID); err != nil {
		return fmt.Errorf("%w: %v", library.ErrLaunch, err)
	}
	return nil
}

// InstallGame asks the Steam client to start installing a game through the
// steam://install/ protocol handler.
func (s *Store) InstallGame(gameID string) error {
	if err := utils.OpenURI("steam://install/" + gameID); err != nil {
		return fmt.Errorf("%w: %v", library.ErrLaunch, err)
	}
	return nil
}

// ArtworkURL builds a Steam CDN artwork URL. Every artwork type has a
// public source.
func (s *Store) ArtworkURL(gameID string, art library.ArtworkType) string {
	return cdnURL(gameID, art)
}

func cdnURL(appID string, art library.ArtworkType) string {
	switch art {
	case library.ArtworkCover:
		return fmt.Sprintf("%s/%s/library_600x900.jpg", cdnBase, appID)
	case library.ArtworkHero:
		return fmt.Sprintf("%s/%s/library_hero.jpg", cdnBase, appID)
	case library.ArtworkLogo:
		return fmt.Sprintf("%s/%s/logo.png", cdnBase, appID)
	default:
		return fmt.Sprintf("%s/%s/header.jpg", cdnBase, appID)
	}
}
