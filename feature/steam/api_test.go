package steam

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"game-launcher/core/library"
	"game-launcher/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, handler http.Handler) (*API, *storage.Storage) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := storage.New(storage.Config{Dir: t.TempDir()})
	require.NoError(t, err)

	api := NewAPI(store)
	api.apiBase = srv.URL
	api.storeBase = srv.URL
	return api, store
}

func connectSteam(t *testing.T, store *storage.Storage) {
	t.Helper()
	require.NoError(t, store.SaveSteamCredentials(storage.SteamCredentials{
		APIKey:  "test-key",
		SteamID: "76561198000000001",
	}))
}

func TestAPI_FetchOwnedGames(t *testing.T) {
	api, store := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/IPlayerService/GetOwnedGames/v1/", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "76561198000000001", r.URL.Query().Get("steamid"))
		assert.Equal(t, "1", r.URL.Query().Get("include_appinfo"))

		w.Write([]byte(`{"response":{"game_count":2,"games":[
			{"appid":440,"name":"Team Fortress 2","playtime_forever":120,"rtime_last_played":1700000000},
			{"appid":730,"name":"","playtime_forever":0}
		]}}`))
	}))
	connectSteam(t, store)

	result, err := api.FetchOwnedGames()
	require.NoError(t, err)
	require.Len(t, result.Games, 2)

	tf2 := result.Games[0]
	assert.Equal(t, "440", tf2.ID)
	assert.Equal(t, "Team Fortress 2", tf2.Name)
	assert.Equal(t, library.StoreSteam, tf2.Store)
	assert.False(t, tf2.Installed)
	assert.Equal(t, uint64(120), tf2.PlaytimeMinutes)
	assert.Equal(t, uint64(1700000000), tf2.LastPlayed)
	assert.NotEmpty(t, tf2.CoverURL)

	// A blank api name falls back to a placeholder.
	assert.Equal(t, "App 730", result.Games[1].Name)
}

func TestAPI_FetchOwnedGames_NotConnected(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without credentials")
	}))

	_, err := api.FetchOwnedGames()
	assert.ErrorIs(t, err, library.ErrAuthRequired)
}

func TestAPI_FetchOwnedGames_RejectedKey(t *testing.T) {
	api, store := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	connectSteam(t, store)

	_, err := api.FetchOwnedGames()
	assert.ErrorIs(t, err, library.ErrAuthRequired)
}

func TestAPI_FetchOwnedGames_ServerError(t *testing.T) {
	api, store := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	connectSteam(t, store)

	_, err := api.FetchOwnedGames()
	assert.ErrorIs(t, err, library.ErrNetwork)
}

func TestAPI_ValidateCredentials(t *testing.T) {
	status := http.StatusOK
	api, store := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ISteamUser/GetPlayerSummaries/v2/", r.URL.Path)
		w.WriteHeader(status)
	}))
	connectSteam(t, store)

	ok, err := api.ValidateCredentials()
	require.NoError(t, err)
	assert.True(t, ok)

	status = http.StatusUnauthorized
	ok, err = api.ValidateCredentials()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAPI_GetGameDetails(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appdetails", r.URL.Path)
		assert.Equal(t, "440", r.URL.Query().Get("appids"))

		w.Write([]byte(`{"440":{"success":true,"data":{
			"name":"Team Fortress 2",
			"short_description":"Nine classes.",
			"developers":["Valve"],
			"publishers":["Valve"],
			"platforms":{"windows":true,"mac":true,"linux":true},
			"genres":[{"id":"1","description":"Action"},{"id":"37","description":"Free To Play"}],
			"release_date":{"coming_soon":false,"date":"10 Oct, 2007"}
		}}}`))
	}))

	details, err := api.GetGameDetails("440")
	require.NoError(t, err)
	require.NotNil(t, details)

	assert.Equal(t, "Nine classes.", details.Description)
	assert.Equal(t, []string{"Valve"}, details.Developers)
	assert.Equal(t, []string{"Action", "Free To Play"}, details.Genres)
	assert.Equal(t, []string{"Windows", "macOS", "Linux"}, details.Platforms)
	assert.Equal(t, "10 Oct, 2007", details.ReleaseDate)
}

func TestAPI_GetGameDetails_Unsuccessful(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"999999":{"success":false}}`))
	}))

	details, err := api.GetGameDetails("999999")
	require.NoError(t, err)
	assert.Nil(t, details)
}
