package library

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Library aggregates games from all registered stores into one cached
// catalog. The store registry is populated once at startup; the catalog is a
// single shared resource guarded by a read/write lock and replaced wholesale
// on every refresh, never patched.
type Library struct {
	stores map[string]Store
	order  []string

	mu    sync.RWMutex
	games []Game

	logger *zap.Logger
}

// NewLibrary creates an empty library. Stores are registered afterwards with
// RegisterStore; the catalog stays empty until the first RefreshAll.
func NewLibrary(logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{
		stores: make(map[string]Store),
		logger: logger,
	}
}

// RegisterStore adds a store to the registry keyed by its StoreID. The last
// registration for a given id wins. Registration is a one-time setup step and
// is not safe to interleave with refreshes.
func (l *Library) RegisterStore(s Store) {
	id := s.StoreID()
	if _, seen := l.stores[id]; !seen {
		l.order = append(l.order, id)
	}
	l.stores[id] = s
}

// StoreCount returns the number of registered stores.
func (l *Library) StoreCount() int {
	return len(l.stores)
}

// RefreshAll re-scans every available store and replaces the cached catalog.
// Store scans run concurrently; a failing store contributes zero games and is
// logged, it never aborts the refresh. The result is sorted by
// case-insensitive name ascending with the original discovery order preserved
// for equal names.
func (l *Library) RefreshAll() ([]Game, error) {
	scans := pool.NewWithResults[[]Game]().WithMaxGoroutines(4)

	for _, id := range l.order {
		store := l.stores[id]
		storeID := id
		scans.Go(func() []Game {
			if !store.IsAvailable() {
				return nil
			}
			games, err := store.GetInstalledGames()
			if err != nil {
				l.logger.Warn("store scan failed",
					zap.String("store", storeID),
					zap.Error(err))
				return nil
			}
			return games
		})
	}

	var all []Game
	for _, games := range scans.Wait() {
		all = append(all, games...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return strings.ToLower(all[i].Name) < strings.ToLower(all[j].Name)
	})

	l.mu.Lock()
	l.games = all
	l.mu.Unlock()

	return append([]Game(nil), all...), nil
}

// GetGames returns a copy of the cached catalog. It never triggers a re-scan.
func (l *Library) GetGames() []Game {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Game(nil), l.games...)
}

// GetInstalledGames returns the cached games with Installed set.
func (l *Library) GetInstalledGames() []Game {
	l.mu.RLock()
	defer l.mu.RUnlock()

	installed := make([]Game, 0, len(l.games))
	for _, g := range l.games {
		if g.Installed {
			installed = append(installed, g)
		}
	}
	return installed
}

// FindGame looks up a cached game by its unique key ("store:id"). The second
// return value reports whether a match was found; absence is not an error.
func (l *Library) FindGame(uniqueKey string) (Game, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, g := range l.games {
		if g.UniqueKey() == uniqueKey {
			return g, true
		}
	}
	return Game{}, false
}

// LaunchGame splits the unique key on its first colon and delegates to the
// owning store. A key without a separator and a key naming an unregistered
// store are both reported, with distinct messages.
func (l *Library) LaunchGame(uniqueKey string) error {
	storeID, gameID, ok := strings.Cut(uniqueKey, ":")
	if !ok {
		return fmt.Errorf("%w: malformed key %q", ErrGameNotFound, uniqueKey)
	}

	store, ok := l.stores[storeID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStoreNotFound, storeID)
	}

	return store.LaunchGame(gameID)
}

// AvailableStores lists the ids of registered stores whose platform client
// was detected on this machine.
func (l *Library) AvailableStores() []string {
	available := make([]string, 0, len(l.order))
	for _, id := range l.order {
		if l.stores[id].IsAvailable() {
			available = append(available, id)
		}
	}
	return available
}

// Stores returns every registered store in registration order.
func (l *Library) Stores() []Store {
	stores := make([]Store, 0, len(l.order))
	for _, id := range l.order {
		stores = append(stores, l.stores[id])
	}
	return stores
}

// GetStore returns the registered store for the given id.
func (l *Library) GetStore(storeID string) (Store, bool) {
	s, ok := l.stores[storeID]
	return s, ok
}
