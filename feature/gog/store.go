package gog

import (
	"fmt"

	"game-launcher/core/library"
	"game-launcher/core/utils"

	"go.uber.org/zap"
)

const artworkBase = "https://images.gog-statics.com"

// Store is the GOG Galaxy platform integration. Galaxy exposes no ownership
// API the launcher can use, so everything here reads local state.
type Store struct {
	paths  Paths
	logger *zap.Logger
}

// NewStore detects the local Galaxy installation and builds the adapter.
// A non-empty database path skips detection of that component (config
// override).
func NewStore(database string, logger *zap.Logger) *Store {
	return NewStoreWithPaths(DetectPaths(database), logger)
}

// NewStoreWithPaths builds the adapter over a fixed path snapshot.
func NewStoreWithPaths(paths Paths, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{paths: paths, logger: logger}
}

func (s *Store) StoreID() string     { return "gog" }
func (s *Store) DisplayName() string { return "GOG Galaxy" }
func (s *Store) ClientPath() string  { return s.paths.Client }
func (s *Store) IsAvailable() bool   { return s.paths.Client != "" }

// Paths exposes the detected path snapshot.
func (s *Store) Paths() Paths { return s.paths }

// GetInstalledGames reads the installed catalog from Galaxy's database.
func (s *Store) GetInstalledGames() ([]library.Game, error) {
	if s.paths.Database == "" {
		return nil, nil
	}
	return QueryInstalledGames(s.paths.Database)
}

// LaunchGame starts the game through Galaxy's protocol handler. The OS
// resolves the handler, so no client path is needed here.
func (s *Store) LaunchGame(gameID string) error {
	if err := utils.OpenURI("goggalaxy://runGame/" + gameID); err != nil {
		return fmt.Errorf("%w: %v", library.ErrLaunch, err)
	}
	return nil
}

// ArtworkURL builds a GOG statics artwork URL from the product id.
func (s *Store) ArtworkURL(gameID string, art library.ArtworkType) string {
	return artworkURL(gameID, art)
}

func artworkURL(productID string, art library.ArtworkType) string {
	switch art {
	case library.ArtworkHero:
		return fmt.Sprintf("%s/%s_background.jpg", artworkBase, productID)
	case library.ArtworkLogo:
		return fmt.Sprintf("%s/%s_logo.png", artworkBase, productID)
	case library.ArtworkIcon:
		return fmt.Sprintf("%s/%s_icon.png", artworkBase, productID)
	default:
		return fmt.Sprintf("%s/%s_cover.jpg", artworkBase, productID)
	}
}

func applyArtwork(game *library.Game) {
	game.CoverURL = artworkURL(game.ID, library.ArtworkCover)
	game.HeroURL = artworkURL(game.ID, library.ArtworkHero)
	game.IconURL = artworkURL(game.ID, library.ArtworkIcon)
}
