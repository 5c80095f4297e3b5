package reconcile

import (
	"fmt"
	"time"

	"game-launcher/core/library"
	"game-launcher/core/storage"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Service runs ownership syncs: remote fetch, local refresh, merge, persist.
type Service struct {
	lib    *library.Library
	store  *storage.Storage
	logger *zap.Logger
}

// NewService creates a reconcile service over the given library and storage.
func NewService(lib *library.Library, store *storage.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{lib: lib, store: store, logger: logger}
}

// Sync fetches the remote owned catalog and refreshes the local scan in
// parallel, merges them, and persists the merged list with a fresh sync
// timestamp. The merged list, not the raw remote one, is what gets cached.
func (s *Service) Sync(src OwnedSource) ([]library.Game, error) {
	var owned OwnedResult

	tasks := pool.New().WithErrors()
	tasks.Go(func() error {
		result, err := src.FetchOwnedGames()
		if err != nil {
			return err
		}
		owned = result
		return nil
	})
	tasks.Go(func() error {
		_, err := s.lib.RefreshAll()
		return err
	})
	if err := tasks.Wait(); err != nil {
		return nil, err
	}

	merged := Merge(owned.Games, s.lib.GetInstalledGames())

	if err := s.persist(src.Store(), merged, owned.Metadata); err != nil {
		return nil, err
	}

	s.logger.Info("ownership sync complete",
		zap.String("store", string(src.Store())),
		zap.Int("owned", len(merged)))

	return merged, nil
}

// Cached returns the last synced owned list for the platform, re-merged
// against a fresh local scan. No network call is made, so install-state
// freshness does not depend on re-fetching ownership. The re-merged list is
// returned but not persisted.
func (s *Service) Cached(st library.StoreType) ([]library.Game, uint64, error) {
	cache, err := s.store.LoadGamesCache()
	if err != nil {
		return nil, 0, err
	}

	var owned []library.Game
	var lastSync uint64
	switch st {
	case library.StoreSteam:
		owned, lastSync = cache.SteamOwned, cache.SteamLastSync
	case library.StoreEpic:
		owned, lastSync = cache.EpicOwned, cache.EpicLastSync
	default:
		return nil, 0, fmt.Errorf("%w: no ownership cache for %s", library.ErrStoreNotFound, st)
	}

	if _, err := s.lib.RefreshAll(); err != nil {
		return nil, 0, err
	}

	return Merge(owned, s.lib.GetInstalledGames()), lastSync, nil
}

func (s *Service) persist(st library.StoreType, merged []library.Game, metadata map[string]storage.GameMetadata) error {
	cache, err := s.store.LoadGamesCache()
	if err != nil {
		return err
	}

	now := uint64(time.Now().Unix())
	switch st {
	case library.StoreSteam:
		cache.SteamOwned = merged
		cache.SteamLastSync = now
	case library.StoreEpic:
		cache.EpicOwned = merged
		cache.EpicLastSync = now
		if metadata != nil {
			cache.EpicMetadata = metadata
		}
	default:
		return fmt.Errorf("%w: no ownership cache for %s", library.ErrStoreNotFound, st)
	}

	return s.store.SaveGamesCache(cache)
}
