package steam

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"game-launcher/core/library"
	"game-launcher/core/reconcile"
	"game-launcher/core/storage"

	"github.com/goccy/go-json"
)

const (
	apiBase   = "https://api.steampowered.com"
	storeBase = "https://store.steampowered.com"
)

// API is the Steam Web API client. Credentials (Web API key + SteamID) come
// from storage; the ownership endpoint is a single keyed GET, no pagination.
type API struct {
	client    *http.Client
	store     *storage.Storage
	apiBase   string
	storeBase string
}

// NewAPI builds the client with transport-level connect/read timeouts. No
// automatic retries.
func NewAPI(store *storage.Storage) *API {
	return &API{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
			},
		},
		store:     store,
		apiBase:   apiBase,
		storeBase: storeBase,
	}
}

// Store identifies the platform for the reconcile service.
func (a *API) Store() library.StoreType { return library.StoreSteam }

type ownedGamesResponse struct {
	Response struct {
		GameCount uint32      `json:"game_count"`
		Games     []ownedGame `json:"games"`
	} `json:"response"`
}

type ownedGame struct {
	AppID           uint64 `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever uint64 `json:"playtime_forever"`
	RtimeLastPlayed uint64 `json:"rtime_last_played"`
}

// FetchOwnedGames retrieves the full owned catalog for the stored account.
// Games come back with installed state unset; merging against the local scan
// is the reconcile service's job.
func (a *API) FetchOwnedGames() (reconcile.OwnedResult, error) {
	creds, err := a.credentials()
	if err != nil {
		return reconcile.OwnedResult{}, err
	}

	endpoint := fmt.Sprintf(
		"%s/IPlayerService/GetOwnedGames/v1/?key=%s&steamid=%s&include_appinfo=1&include_played_free_games=1&format=json",
		a.apiBase, url.QueryEscape(creds.APIKey), url.QueryEscape(creds.SteamID),
	)

	body, err := a.get(endpoint)
	if err != nil {
		return reconcile.OwnedResult{}, err
	}

	var parsed ownedGamesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return reconcile.OwnedResult{}, fmt.Errorf("%w: owned games response: %v", library.ErrParse, err)
	}

	games := make([]library.Game, 0, len(parsed.Response.Games))
	for _, g := range parsed.Response.Games {
		appID := fmt.Sprintf("%d", g.AppID)
		name := g.Name
		if name == "" {
			name = "App " + appID
		}

		game := library.NewGame(appID, name, library.StoreSteam)
		game.PlaytimeMinutes = g.PlaytimeForever
		game.LastPlayed = g.RtimeLastPlayed
		game.CoverURL = cdnURL(appID, library.ArtworkCover)
		game.HeroURL = cdnURL(appID, library.ArtworkHero)
		game.IconURL = cdnURL(appID, library.ArtworkIcon)

		games = append(games, game)
	}

	return reconcile.OwnedResult{Games: games}, nil
}

// ValidateCredentials makes a cheap player-summary call to verify the stored
// key and id are accepted.
func (a *API) ValidateCredentials() (bool, error) {
	creds, err := a.credentials()
	if err != nil {
		return false, err
	}

	endpoint := fmt.Sprintf(
		"%s/ISteamUser/GetPlayerSummaries/v2/?key=%s&steamids=%s",
		a.apiBase, url.QueryEscape(creds.APIKey), url.QueryEscape(creds.SteamID),
	)

	resp, err := a.client.Get(endpoint)
	if err != nil {
		return false, fmt.Errorf("%w: %v", library.ErrNetwork, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

type appDetailsWrapper struct {
	Success bool `json:"success"`
	Data    *struct {
		Name             string   `json:"name"`
		ShortDescription string   `json:"short_description"`
		AboutTheGame     string   `json:"about_the_game"`
		Developers       []string `json:"developers"`
		Publishers       []string `json:"publishers"`
		Platforms        struct {
			Windows bool `json:"windows"`
			Mac     bool `json:"mac"`
			Linux   bool `json:"linux"`
		} `json:"platforms"`
		Genres []struct {
			Description string `json:"description"`
		} `json:"genres"`
		ReleaseDate struct {
			Date string `json:"date"`
		} `json:"release_date"`
	} `json:"data"`
}

// GetGameDetails looks up store-page details for one app. A missing or
// unsuccessful entry yields nil, not an error; the app may simply be
// delisted.
func (a *API) GetGameDetails(appID string) (*storage.GameMetadata, error) {
	endpoint := fmt.Sprintf("%s/api/appdetails?appids=%s", a.storeBase, url.QueryEscape(appID))

	body, err := a.get(endpoint)
	if err != nil {
		return nil, err
	}

	// The response is keyed by app id.
	var parsed map[string]appDetailsWrapper
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: appdetails response: %v", library.ErrParse, err)
	}

	wrapper, ok := parsed[appID]
	if !ok || !wrapper.Success || wrapper.Data == nil {
		return nil, nil
	}
	data := wrapper.Data

	var platforms []string
	if data.Platforms.Windows {
		platforms = append(platforms, "Windows")
	}
	if data.Platforms.Mac {
		platforms = append(platforms, "macOS")
	}
	if data.Platforms.Linux {
		platforms = append(platforms, "Linux")
	}

	var genres []string
	for _, g := range data.Genres {
		genres = append(genres, g.Description)
	}

	description := data.ShortDescription
	if description == "" {
		description = data.AboutTheGame
	}

	return &storage.GameMetadata{
		Description: description,
		Developers:  data.Developers,
		Publishers:  data.Publishers,
		Genres:      genres,
		Platforms:   platforms,
		ReleaseDate: data.ReleaseDate.Date,
	}, nil
}

func (a *API) credentials() (storage.SteamCredentials, error) {
	creds, err := a.store.LoadCredentials()
	if err != nil {
		return storage.SteamCredentials{}, err
	}
	if creds.Steam == nil || creds.Steam.APIKey == "" || creds.Steam.SteamID == "" {
		return storage.SteamCredentials{}, fmt.Errorf("%w: steam is not connected", library.ErrAuthRequired)
	}
	return *creds.Steam, nil
}

func (a *API) get(endpoint string) ([]byte, error) {
	resp, err := a.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", library.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: steam api rejected the key (%d)", library.ErrAuthRequired, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: steam api returned %d", library.ErrNetwork, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
