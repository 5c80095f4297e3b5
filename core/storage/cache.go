package storage

import (
	"game-launcher/core/library"
)

// GameMetadata is the catalog side table for a remotely owned game: fields
// the ownership APIs return that have no slot on the unified Game record.
type GameMetadata struct {
	Description string   `json:"description,omitempty"`
	Developers  []string `json:"developers,omitempty"`
	Publishers  []string `json:"publishers,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Platforms   []string `json:"platforms,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
}

// GamesCache is the persisted result of the last ownership sync per platform.
// Timestamps are unix seconds; zero means never synced.
type GamesCache struct {
	SteamOwned    []library.Game `json:"steam_owned,omitempty"`
	SteamLastSync uint64         `json:"steam_last_sync,omitempty"`

	EpicOwned    []library.Game          `json:"epic_owned,omitempty"`
	EpicLastSync uint64                  `json:"epic_last_sync,omitempty"`
	EpicMetadata map[string]GameMetadata `json:"epic_metadata,omitempty"`
}

// LoadGamesCache reads games_cache.json. A missing file yields an empty cache.
func (s *Storage) LoadGamesCache() (GamesCache, error) {
	var cache GamesCache
	_, err := s.readFile(gamesCacheFile, &cache)
	return cache, err
}

// SaveGamesCache writes games_cache.json.
func (s *Storage) SaveGamesCache(cache GamesCache) error {
	return s.writeFile(gamesCacheFile, cache, 0o644)
}
