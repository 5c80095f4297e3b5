package epic

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"game-launcher/core/library"
	"game-launcher/core/utils"

	"go.uber.org/zap"
)

// Store is the Epic Games platform integration.
type Store struct {
	paths  Paths
	logger *zap.Logger
}

// NewStore detects the local launcher installation and builds the adapter.
// A non-empty manifests directory skips detection of that component (config
// override).
func NewStore(manifests string, logger *zap.Logger) *Store {
	return NewStoreWithPaths(DetectPaths(manifests), logger)
}

// NewStoreWithPaths builds the adapter over a fixed path snapshot.
func NewStoreWithPaths(paths Paths, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{paths: paths, logger: logger}
}

func (s *Store) StoreID() string     { return "epic" }
func (s *Store) DisplayName() string { return "Epic Games Store" }
func (s *Store) IsAvailable() bool   { return s.paths.Launcher != "" }
func (s *Store) ClientPath() string  { return s.paths.Launcher }

// Paths exposes the detected path snapshot.
func (s *Store) Paths() Paths { return s.paths }

// GetInstalledGames parses every .item manifest the launcher wrote.
// Unparsable or incomplete manifests are logged and skipped.
func (s *Store) GetInstalledGames() ([]library.Game, error) {
	if s.paths.Manifests == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(s.paths.Manifests)
	if err != nil {
		return nil, fmt.Errorf("reading manifests dir: %w", err)
	}

	var games []library.Game
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".item") {
			continue
		}

		game, err := ParseManifest(filepath.Join(s.paths.Manifests, name))
		if err != nil {
			s.logger.Warn("skipping unparsable manifest",
				zap.String("file", name),
				zap.Error(err))
			continue
		}
		games = append(games, game)
	}

	return games, nil
}

// LaunchGame starts the game through the launcher's protocol handler. The
// launcher handles its own session; no executable path is needed.
func (s *Store) LaunchGame(gameID string) error {
	uri := fmt.Sprintf("com.epicgames.launcher://apps/%s?action=launch", gameID)
	if err := utils.OpenURI(uri); err != nil {
		return fmt.Errorf("%w: %v", library.ErrLaunch, err)
	}
	return nil
}

// InstallGame asks the launcher to start installing a game.
func (s *Store) InstallGame(gameID string) error {
	uri := fmt.Sprintf("com.epicgames.launcher://apps/%s?action=install", gameID)
	if err := utils.OpenURI(uri); err != nil {
		return fmt.Errorf("%w: %v", library.ErrLaunch, err)
	}
	return nil
}

// ArtworkURL always returns "". Epic has no predictable public artwork URL;
// image links come from catalog metadata fetched during a sync.
func (s *Store) ArtworkURL(string, library.ArtworkType) string { return "" }
