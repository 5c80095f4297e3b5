package gog

import (
	"path/filepath"
	"testing"

	"game-launcher/core/library"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newGalaxyDB creates a galaxy-2.0.db lookalike for tests to populate.
func newGalaxyDB(t *testing.T) (string, *gorm.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "galaxy-2.0.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		_ = sqlDB.Close()
	})

	for _, stmt := range []string{
		"CREATE TABLE InstalledBaseProducts (productId TEXT PRIMARY KEY)",
		"CREATE TABLE LibraryReleases (releaseKey TEXT PRIMARY KEY, title TEXT)",
		"CREATE TABLE ProductConfiguration (productId TEXT PRIMARY KEY, installPath TEXT)",
		"CREATE TABLE GamePieceTypes (id INTEGER PRIMARY KEY, type TEXT)",
		"CREATE TABLE GamePieces (releaseKey TEXT, gamePieceTypeId INTEGER, value TEXT)",
		"INSERT INTO GamePieceTypes (id, type) VALUES (1, 'title')",
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return path, db
}

func TestQueryInstalledGames(t *testing.T) {
	path, db := newGalaxyDB(t)
	require.NoError(t, db.Exec("INSERT INTO InstalledBaseProducts VALUES ('456')").Error)
	require.NoError(t, db.Exec("INSERT INTO LibraryReleases VALUES ('gog_456', 'Ignored')").Error)
	require.NoError(t, db.Exec("INSERT INTO GamePieces VALUES ('gog_456', 1, 'Foo')").Error)
	require.NoError(t, db.Exec("INSERT INTO ProductConfiguration VALUES ('456', '/games/foo')").Error)

	games, err := QueryInstalledGames(path)
	require.NoError(t, err)
	require.Len(t, games, 1)

	game := games[0]
	assert.Equal(t, "456", game.ID)
	assert.Equal(t, "Foo", game.Name)
	assert.Equal(t, library.StoreGog, game.Store)
	assert.Equal(t, "gog:456", game.UniqueKey())
	assert.True(t, game.Installed)
	assert.Equal(t, "/games/foo", game.InstallPath)
	assert.Equal(t, "https://images.gog-statics.com/456_cover.jpg", game.CoverURL)
}

func TestQueryInstalledGames_TitleFallbacks(t *testing.T) {
	path, db := newGalaxyDB(t)
	// 100 has a LibraryReleases title but no title piece; 200 has neither.
	require.NoError(t, db.Exec("INSERT INTO InstalledBaseProducts VALUES ('100'), ('200')").Error)
	require.NoError(t, db.Exec("INSERT INTO LibraryReleases VALUES ('gog_100', 'From Releases')").Error)

	games, err := QueryInstalledGames(path)
	require.NoError(t, err)
	require.Len(t, games, 2)

	byID := make(map[string]string, len(games))
	for _, g := range games {
		byID[g.ID] = g.Name
	}
	assert.Equal(t, "From Releases", byID["100"])
	assert.Equal(t, "GOG Game 200", byID["200"])
}

func TestQueryInstalledGames_LibraryReleasesFallback(t *testing.T) {
	path, db := newGalaxyDB(t)
	// Nothing installed per InstalledBaseProducts; the library listing is
	// all we have.
	require.NoError(t, db.Exec("INSERT INTO LibraryReleases VALUES ('gog_789', 'Bar')").Error)
	require.NoError(t, db.Exec("INSERT INTO LibraryReleases VALUES ('steam_1', 'Not Ours')").Error)

	games, err := QueryInstalledGames(path)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "789", games[0].ID)
	assert.Equal(t, "Bar", games[0].Name)
	assert.True(t, games[0].Installed)
}

func TestQueryInstalledGames_ReleasesWithoutTitleColumn(t *testing.T) {
	// Older Galaxy schemas keep LibraryReleases as a bare release list and
	// record titles only as GamePieces facts.
	path := filepath.Join(t.TempDir(), "galaxy-2.0.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		_ = sqlDB.Close()
	})

	for _, stmt := range []string{
		"CREATE TABLE LibraryReleases (releaseKey TEXT PRIMARY KEY)",
		"CREATE TABLE GamePieceTypes (id INTEGER PRIMARY KEY, type TEXT)",
		"CREATE TABLE GamePieces (releaseKey TEXT, gamePieceTypeId INTEGER, value TEXT)",
		"INSERT INTO GamePieceTypes (id, type) VALUES (1, 'title')",
		"INSERT INTO LibraryReleases VALUES ('gog_300'), ('gog_400')",
		"INSERT INTO GamePieces VALUES ('gog_300', 1, 'From Pieces')",
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	games, err := QueryInstalledGames(path)
	require.NoError(t, err)
	require.Len(t, games, 2)

	byID := make(map[string]string, len(games))
	for _, g := range games {
		byID[g.ID] = g.Name
	}
	assert.Equal(t, "From Pieces", byID["300"])
	assert.Equal(t, "GOG Game 400", byID["400"])
}

func TestQueryInstalledGames_MissingDatabase(t *testing.T) {
	_, err := QueryInstalledGames(filepath.Join(t.TempDir(), "nope.db"))
	assert.ErrorIs(t, err, library.ErrDatabase)
}

func TestStore_GetInstalledGames_NoDatabase(t *testing.T) {
	store := NewStoreWithPaths(Paths{}, nil)

	games, err := store.GetInstalledGames()
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestStore_ArtworkURL(t *testing.T) {
	store := NewStoreWithPaths(Paths{}, nil)

	tests := []struct {
		art  library.ArtworkType
		want string
	}{
		{library.ArtworkCover, "https://images.gog-statics.com/456_cover.jpg"},
		{library.ArtworkHero, "https://images.gog-statics.com/456_background.jpg"},
		{library.ArtworkLogo, "https://images.gog-statics.com/456_logo.png"},
		{library.ArtworkIcon, "https://images.gog-statics.com/456_icon.png"},
	}
	for _, tt := range tests {
		t.Run(tt.art.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, store.ArtworkURL("456", tt.art))
		})
	}
}
