package catalog_test

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"game-launcher/core/library"
	"game-launcher/core/reconcile"
	"game-launcher/core/storage"
	"game-launcher/feature/catalog"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	id        string
	name      string
	available bool
	games     []library.Game
	launched  []string
}

func (f *fakeStore) StoreID() string                           { return f.id }
func (f *fakeStore) DisplayName() string                       { return f.name }
func (f *fakeStore) IsAvailable() bool                         { return f.available }
func (f *fakeStore) ClientPath() string                        { return "" }
func (f *fakeStore) GetInstalledGames() ([]library.Game, error) { return f.games, nil }
func (f *fakeStore) LaunchGame(gameID string) error {
	f.launched = append(f.launched, gameID)
	return nil
}
func (f *fakeStore) ArtworkURL(string, library.ArtworkType) string { return "" }

type fakeSource struct {
	store library.StoreType
	games []library.Game
}

func (f *fakeSource) Store() library.StoreType { return f.store }
func (f *fakeSource) FetchOwnedGames() (reconcile.OwnedResult, error) {
	return reconcile.OwnedResult{Games: f.games}, nil
}

func installedGame(id, name string, st library.StoreType) library.Game {
	g := library.NewGame(id, name, st)
	g.Installed = true
	g.InstallPath = "/games/" + id
	return g
}

func newTestApp(t *testing.T) (*fiber.App, *fakeStore, *storage.Storage) {
	t.Helper()

	store := &fakeStore{
		id:        "steam",
		name:      "Steam",
		available: true,
		games: []library.Game{
			installedGame("440", "Team Fortress 2", library.StoreSteam),
			installedGame("570", "Dota 2", library.StoreSteam),
		},
	}

	lib := library.NewLibrary(nil)
	lib.RegisterStore(store)

	files, err := storage.New(storage.Config{Dir: t.TempDir()})
	require.NoError(t, err)

	rec := reconcile.NewService(lib, files, nil)
	source := &fakeSource{store: library.StoreSteam, games: []library.Game{
		library.NewGame("440", "Team Fortress 2", library.StoreSteam),
		library.NewGame("220", "Half-Life 2", library.StoreSteam),
	}}

	svc := catalog.NewService(lib, rec, files,
		[]reconcile.OwnedSource{source}, nil, nil, "", nil)

	app := fiber.New()
	require.NoError(t, catalog.NewFeature(svc).Load(app))
	return app, store, files
}

func decodeGames(t *testing.T, body io.Reader) []library.Game {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var games []library.Game
	require.NoError(t, json.Unmarshal(raw, &games))
	return games
}

func TestHandleListGames(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/games/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	games := decodeGames(t, resp.Body)
	require.Len(t, games, 2)
	// Sorted case-insensitively by name.
	assert.Equal(t, "Dota 2", games[0].Name)
	assert.Equal(t, "Team Fortress 2", games[1].Name)
}

func TestHandleGetGame(t *testing.T) {
	app, _, _ := newTestApp(t)

	// Prime the catalog.
	_, err := app.Test(httptest.NewRequest("GET", "/games/", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/games/steam:440", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/games/steam:999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleLaunchGame(t *testing.T) {
	app, store, files := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/games/steam:440/launch", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"440"}, store.launched)

	history, err := files.LoadPlayHistory()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), history["steam:440"].LaunchCount)
}

func TestHandleLaunchGame_UnknownStore(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/games/origin:1/launch", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleListStores(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/stores/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var infos []catalog.StoreInfo
	require.NoError(t, json.Unmarshal(raw, &infos))

	require.Len(t, infos, 1)
	assert.Equal(t, "steam", infos[0].ID)
	assert.True(t, infos[0].Available)
	assert.False(t, infos[0].Connected)
}

func TestHandleSyncAndOwned(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/sync/steam", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	games := decodeGames(t, resp.Body)
	require.Len(t, games, 2)

	byID := make(map[string]library.Game)
	for _, g := range games {
		byID[g.ID] = g
	}
	assert.True(t, byID["440"].Installed)
	assert.False(t, byID["220"].Installed)

	resp, err = app.Test(httptest.NewRequest("GET", "/owned/steam", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var cached struct {
		Games    []library.Game `json:"games"`
		LastSync uint64         `json:"last_sync"`
	}
	require.NoError(t, json.Unmarshal(raw, &cached))
	assert.Len(t, cached.Games, 2)
	assert.NotZero(t, cached.LastSync)
}

func TestHandleSync_UnknownStore(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/sync/gog", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleConnectSteam_NotConfigured(t *testing.T) {
	app, _, _ := newTestApp(t)

	body := bytes.NewBufferString(`{"api_key":"k","steam_id":"76561198000000001"}`)
	req := httptest.NewRequest("POST", "/stores/steam/connect", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleSettings_RoundTrip(t *testing.T) {
	app, _, _ := newTestApp(t)

	body := bytes.NewBufferString(`{"launch_on_startup":true,"launch_fullscreen":true}`)
	req := httptest.NewRequest("PUT", "/settings", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/settings", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var settings storage.Settings
	require.NoError(t, json.Unmarshal(raw, &settings))
	assert.True(t, settings.LaunchOnStartup)
	assert.True(t, settings.LaunchFullscreen)
}

func TestHandleDisconnect(t *testing.T) {
	app, _, files := newTestApp(t)
	require.NoError(t, files.SaveSteamCredentials(storage.SteamCredentials{APIKey: "k", SteamID: "id"}))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/stores/steam/credentials", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	creds, err := files.LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds.Steam)
}

func TestHandleEpicGameDetails(t *testing.T) {
	app, _, files := newTestApp(t)
	require.NoError(t, files.SaveGamesCache(storage.GamesCache{
		EpicMetadata: map[string]storage.GameMetadata{
			"epic:Sugar": {
				Description: "A car soccer game.",
				Developers:  []string{"Psyonix LLC"},
				Publishers:  []string{"Psyonix LLC"},
			},
		},
	}))

	resp, err := app.Test(httptest.NewRequest("GET", "/details/epic/Sugar", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var meta storage.GameMetadata
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "A car soccer game.", meta.Description)
	assert.Equal(t, []string{"Psyonix LLC"}, meta.Publishers)
}

func TestHandleEpicGameDetails_Unknown(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/details/epic/NoSuchApp", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
