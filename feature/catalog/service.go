package catalog

import (
	"fmt"

	"game-launcher/core/library"
	"game-launcher/core/reconcile"
	"game-launcher/core/storage"

	"go.uber.org/zap"
)

// SteamConnector is the slice of the Steam Web API client the catalog needs
// for account management.
type SteamConnector interface {
	ValidateCredentials() (bool, error)
	GetGameDetails(appID string) (*storage.GameMetadata, error)
}

// EpicConnector is the slice of the Epic services client the catalog needs
// for account management.
type EpicConnector interface {
	LoginURL() string
	Authenticate(code string) error
	VerifyCredentials() (bool, error)
}

// StoreInfo is the per-platform status row the API exposes.
type StoreInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Available  bool   `json:"available"`
	ClientPath string `json:"client_path,omitempty"`
	Connected  bool   `json:"connected"`
}

// Service exposes the unified catalog: local library reads, launch dispatch
// with play-history recording, ownership syncs, and platform account
// management.
type Service struct {
	lib        *library.Library
	reconciler *reconcile.Service
	store      *storage.Storage
	sources    map[library.StoreType]reconcile.OwnedSource
	steam      SteamConnector
	epic       EpicConnector

	// steamID is the locally detected account id, used when connecting
	// Steam without an explicit id.
	steamID string

	logger *zap.Logger
}

// NewService wires the catalog service. Connectors may be nil when a
// platform's online side is not configured; sources drive the sync
// endpoints.
func NewService(lib *library.Library, reconciler *reconcile.Service, store *storage.Storage,
	sources []reconcile.OwnedSource, steam SteamConnector, epic EpicConnector,
	steamID string, logger *zap.Logger) *Service {

	if logger == nil {
		logger = zap.NewNop()
	}

	byStore := make(map[library.StoreType]reconcile.OwnedSource, len(sources))
	for _, src := range sources {
		byStore[src.Store()] = src
	}

	return &Service{
		lib:        lib,
		reconciler: reconciler,
		store:      store,
		sources:    byStore,
		steam:      steam,
		epic:       epic,
		steamID:    steamID,
		logger:     logger,
	}
}

// Games re-scans every store and returns the full local catalog.
func (s *Service) Games() ([]library.Game, error) {
	return s.lib.RefreshAll()
}

// InstalledGames re-scans and returns only the installed subset.
func (s *Service) InstalledGames() ([]library.Game, error) {
	if _, err := s.lib.RefreshAll(); err != nil {
		return nil, err
	}
	return s.lib.GetInstalledGames(), nil
}

// Game looks up one cached game by unique key.
func (s *Service) Game(uniqueKey string) (library.Game, error) {
	game, ok := s.lib.FindGame(uniqueKey)
	if !ok {
		return library.Game{}, fmt.Errorf("%w: %s", library.ErrGameNotFound, uniqueKey)
	}
	return game, nil
}

// Launch records the launch in play history and dispatches to the owning
// store. Returns the recorded launch timestamp.
func (s *Service) Launch(uniqueKey string) (uint64, error) {
	launchedAt, err := s.store.RecordGameLaunch(uniqueKey)
	if err != nil {
		return 0, err
	}
	if err := s.lib.LaunchGame(uniqueKey); err != nil {
		return 0, err
	}

	s.logger.Info("game launched", zap.String("game", uniqueKey))
	return launchedAt, nil
}

// Stores reports the status of every registered platform.
func (s *Service) Stores() ([]StoreInfo, error) {
	creds, err := s.store.LoadCredentials()
	if err != nil {
		return nil, err
	}

	stores := s.lib.Stores()
	infos := make([]StoreInfo, 0, len(stores))
	for _, st := range stores {
		info := StoreInfo{
			ID:         st.StoreID(),
			Name:       st.DisplayName(),
			Available:  st.IsAvailable(),
			ClientPath: st.ClientPath(),
		}
		switch library.StoreType(info.ID) {
		case library.StoreSteam:
			info.Connected = creds.Steam != nil
		case library.StoreEpic:
			info.Connected = creds.Epic != nil
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Sync runs a full ownership sync for one platform.
func (s *Service) Sync(st library.StoreType) ([]library.Game, error) {
	src, ok := s.sources[st]
	if !ok {
		return nil, fmt.Errorf("%w: no ownership source for %s", library.ErrStoreNotFound, st)
	}
	return s.reconciler.Sync(src)
}

// Owned returns the cached owned list for one platform, re-merged against
// the current local scan. No network call is made.
func (s *Service) Owned(st library.StoreType) ([]library.Game, uint64, error) {
	return s.reconciler.Cached(st)
}

// ConnectSteam stores and validates a Steam Web API key. An empty steamID
// falls back to the locally detected account.
func (s *Service) ConnectSteam(apiKey, steamID string) error {
	if s.steam == nil {
		return fmt.Errorf("%w: steam", library.ErrStoreNotFound)
	}
	if steamID == "" {
		steamID = s.steamID
	}
	if apiKey == "" || steamID == "" {
		return fmt.Errorf("%w: api key and steam id are required", library.ErrAuthRequired)
	}

	if err := s.store.SaveSteamCredentials(storage.SteamCredentials{APIKey: apiKey, SteamID: steamID}); err != nil {
		return err
	}

	ok, err := s.steam.ValidateCredentials()
	if err != nil {
		return err
	}
	if !ok {
		// Roll the rejected key back out.
		if clearErr := s.store.ClearSteamData(); clearErr != nil {
			s.logger.Warn("clearing rejected steam credentials failed", zap.Error(clearErr))
		}
		return fmt.Errorf("%w: steam rejected the api key", library.ErrAuthRequired)
	}
	return nil
}

// EpicLoginURL returns the browser address where the user obtains an
// authorization code.
func (s *Service) EpicLoginURL() (string, error) {
	if s.epic == nil {
		return "", fmt.Errorf("%w: epic", library.ErrStoreNotFound)
	}
	return s.epic.LoginURL(), nil
}

// ConnectEpic exchanges a web-login authorization code for tokens.
func (s *Service) ConnectEpic(code string) error {
	if s.epic == nil {
		return fmt.Errorf("%w: epic", library.ErrStoreNotFound)
	}
	if code == "" {
		return fmt.Errorf("%w: authorization code is required", library.ErrAuthRequired)
	}
	return s.epic.Authenticate(code)
}

// Disconnect wipes a platform's credentials and cached ownership.
func (s *Service) Disconnect(st library.StoreType) error {
	switch st {
	case library.StoreSteam:
		return s.store.ClearSteamData()
	case library.StoreEpic:
		return s.store.ClearEpicData()
	default:
		return fmt.Errorf("%w: %s has no stored credentials", library.ErrStoreNotFound, st)
	}
}

// Settings returns the persisted launcher settings.
func (s *Service) Settings() (storage.Settings, error) {
	return s.store.LoadSettings()
}

// SaveSettings persists the launcher settings.
func (s *Service) SaveSettings(settings storage.Settings) error {
	return s.store.SaveSettings(settings)
}

// GameDetails fetches Steam store-page details for one app.
func (s *Service) GameDetails(appID string) (*storage.GameMetadata, error) {
	if s.steam == nil {
		return nil, fmt.Errorf("%w: steam", library.ErrStoreNotFound)
	}
	return s.steam.GetGameDetails(appID)
}

// EpicGameDetails returns the cached catalog metadata for one Epic app. The
// cache is filled during Epic ownership syncs; a nil result means no entry
// exists yet for that app name.
func (s *Service) EpicGameDetails(appName string) (*storage.GameMetadata, error) {
	cache, err := s.store.LoadGamesCache()
	if err != nil {
		return nil, err
	}
	key := library.NewGame(appName, "", library.StoreEpic).UniqueKey()
	meta, ok := cache.EpicMetadata[key]
	if !ok {
		return nil, nil
	}
	return &meta, nil
}
