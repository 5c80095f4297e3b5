package library

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore is a configurable in-memory Store implementation.
type fakeStore struct {
	id        string
	available bool
	games     []Game
	scanErr   error
	launched  []string
	launchErr error
}

func (f *fakeStore) StoreID() string     { return f.id }
func (f *fakeStore) DisplayName() string { return f.id }
func (f *fakeStore) IsAvailable() bool   { return f.available }
func (f *fakeStore) ClientPath() string  { return "" }

func (f *fakeStore) GetInstalledGames() ([]Game, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	return f.games, nil
}

func (f *fakeStore) LaunchGame(gameID string) error {
	f.launched = append(f.launched, gameID)
	return f.launchErr
}

func (f *fakeStore) ArtworkURL(gameID string, art ArtworkType) string { return "" }

func installedGame(id, name string, store StoreType) Game {
	g := NewGame(id, name, store)
	g.Installed = true
	return g
}

func TestLibrary_RefreshAll_SortsByName(t *testing.T) {
	lib := NewLibrary(zap.NewNop())
	lib.RegisterStore(&fakeStore{
		id:        "steam",
		available: true,
		games: []Game{
			installedGame("2", "zebra", StoreSteam),
			installedGame("1", "Apple", StoreSteam),
		},
	})
	lib.RegisterStore(&fakeStore{
		id:        "epic",
		available: true,
		games: []Game{
			installedGame("3", "banana", StoreEpic),
		},
	})

	games, err := lib.RefreshAll()
	require.NoError(t, err)
	require.Len(t, games, 3)

	// Case-insensitive ascending.
	assert.Equal(t, "Apple", games[0].Name)
	assert.Equal(t, "banana", games[1].Name)
	assert.Equal(t, "zebra", games[2].Name)
}

func TestLibrary_RefreshAll_EqualNamesKeepDiscoveryOrder(t *testing.T) {
	lib := NewLibrary(zap.NewNop())
	lib.RegisterStore(&fakeStore{
		id:        "steam",
		available: true,
		games: []Game{
			installedGame("1", "DOOM", StoreSteam),
			installedGame("2", "Quake", StoreSteam),
		},
	})
	lib.RegisterStore(&fakeStore{
		id:        "epic",
		available: true,
		games: []Game{
			installedGame("3", "doom", StoreEpic),
			installedGame("4", "quake", StoreEpic),
		},
	})

	// Names equal modulo case must come out in registration order, every
	// time: the sort is stable and store results are collected in
	// registration order regardless of scan timing.
	for i := 0; i < 25; i++ {
		games, err := lib.RefreshAll()
		require.NoError(t, err)
		require.Len(t, games, 4)

		assert.Equal(t, "steam:1", games[0].UniqueKey())
		assert.Equal(t, "epic:3", games[1].UniqueKey())
		assert.Equal(t, "steam:2", games[2].UniqueKey())
		assert.Equal(t, "epic:4", games[3].UniqueKey())
	}
}

func TestLibrary_RefreshAll_SkipsUnavailableStores(t *testing.T) {
	lib := NewLibrary(zap.NewNop())
	lib.RegisterStore(&fakeStore{
		id:        "steam",
		available: false,
		games:     []Game{installedGame("1", "Hidden", StoreSteam)},
	})
	lib.RegisterStore(&fakeStore{
		id:        "gog",
		available: true,
		games:     []Game{installedGame("2", "Visible", StoreGog)},
	})

	games, err := lib.RefreshAll()
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Visible", games[0].Name)
}

func TestLibrary_RefreshAll_StoreFailureContributesNothing(t *testing.T) {
	lib := NewLibrary(zap.NewNop())
	lib.RegisterStore(&fakeStore{
		id:        "steam",
		available: true,
		scanErr:   fmt.Errorf("vdf unreadable"),
	})
	lib.RegisterStore(&fakeStore{
		id:        "epic",
		available: true,
		games:     []Game{installedGame("1", "Survivor", StoreEpic)},
	})

	games, err := lib.RefreshAll()
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Survivor", games[0].Name)
}

func TestLibrary_RefreshAll_ReplacesCache(t *testing.T) {
	store := &fakeStore{
		id:        "steam",
		available: true,
		games:     []Game{installedGame("1", "First", StoreSteam)},
	}
	lib := NewLibrary(zap.NewNop())
	lib.RegisterStore(store)

	_, err := lib.RefreshAll()
	require.NoError(t, err)
	assert.Len(t, lib.GetGames(), 1)

	store.games = []Game{
		installedGame("2", "Second", StoreSteam),
		installedGame("3", "Third", StoreSteam),
	}
	_, err = lib.RefreshAll()
	require.NoError(t, err)

	games := lib.GetGames()
	require.Len(t, games, 2)
	_, found := lib.FindGame("steam:1")
	assert.False(t, found)
}

func TestLibrary_GetInstalledGames(t *testing.T) {
	owned := NewGame("2", "Owned Only", StoreSteam)
	lib := NewLibrary(zap.NewNop())
	lib.RegisterStore(&fakeStore{
		id:        "steam",
		available: true,
		games:     []Game{installedGame("1", "Installed", StoreSteam), owned},
	})

	_, err := lib.RefreshAll()
	require.NoError(t, err)

	installed := lib.GetInstalledGames()
	require.Len(t, installed, 1)
	assert.Equal(t, "Installed", installed[0].Name)
}

func TestLibrary_FindGame(t *testing.T) {
	lib := NewLibrary(zap.NewNop())
	lib.RegisterStore(&fakeStore{
		id:        "steam",
		available: true,
		games:     []Game{installedGame("440", "Team Fortress 2", StoreSteam)},
	})
	_, err := lib.RefreshAll()
	require.NoError(t, err)

	g, ok := lib.FindGame("steam:440")
	require.True(t, ok)
	assert.Equal(t, "Team Fortress 2", g.Name)

	_, ok = lib.FindGame("steam:999")
	assert.False(t, ok)
}

func TestLibrary_LaunchGame(t *testing.T) {
	steam := &fakeStore{id: "steam", available: true}
	lib := NewLibrary(zap.NewNop())
	lib.RegisterStore(steam)

	t.Run("dispatches to owning store", func(t *testing.T) {
		err := lib.LaunchGame("steam:440")
		require.NoError(t, err)
		assert.Equal(t, []string{"440"}, steam.launched)
	})

	t.Run("malformed key", func(t *testing.T) {
		err := lib.LaunchGame("no-separator")
		assert.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("unknown store", func(t *testing.T) {
		err := lib.LaunchGame("origin:1")
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestLibrary_AvailableStores(t *testing.T) {
	lib := NewLibrary(zap.NewNop())
	lib.RegisterStore(&fakeStore{id: "steam", available: true})
	lib.RegisterStore(&fakeStore{id: "epic", available: false})
	lib.RegisterStore(&fakeStore{id: "gog", available: true})

	assert.Equal(t, []string{"steam", "gog"}, lib.AvailableStores())
	assert.Equal(t, 3, lib.StoreCount())
}
