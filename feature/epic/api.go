package epic

import (
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"game-launcher/core/library"
	"game-launcher/core/reconcile"
	"game-launcher/core/storage"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Launcher client credentials. These identify the official desktop launcher
// to the OAuth service; the user authorizes against them with an exchange
// code from the web login.
const (
	clientID     = "34a02cf8f4414e29b15921876da36f9a"
	clientSecret = "daafbccc737745039dffe53d94fc76cf"

	oauthHost   = "https://account-public-service-prod03.ol.epicgames.com"
	libraryHost = "https://library-service.live.use1a.on.epicgames.com"
	catalogHost = "https://catalog-public-service-prod06.ol.epicgames.com"

	// Tokens within this many seconds of expiry are refreshed before use.
	tokenExpiryMargin = 300
)

// API is the Epic Games services client. It drives the launcher OAuth flow,
// the library service for owned entitlements, and the catalog service for
// per-title metadata. Tokens persist through storage and refresh on demand.
type API struct {
	client      *http.Client
	store       *storage.Storage
	logger      *zap.Logger
	oauthHost   string
	libraryHost string
	catalogHost string
}

// NewAPI builds the client with transport-level connect/read timeouts.
func NewAPI(store *storage.Storage, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
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
		store:       store,
		logger:      logger,
		oauthHost:   oauthHost,
		libraryHost: libraryHost,
		catalogHost: catalogHost,
	}
}

// Store identifies the platform for the reconcile service.
func (a *API) Store() library.StoreType { return library.StoreEpic }

// LoginURL is the web address where the user signs in and receives the
// authorization code to paste back.
func LoginURL() string {
	redirect := fmt.Sprintf("https://www.epicgames.com/id/api/redirect?clientId=%s&responseType=code", clientID)
	return "https://www.epicgames.com/id/login?redirectUrl=" + url.QueryEscape(redirect)
}

// LoginURL exposes the sign-in address on the client for callers holding
// only the connector interface.
func (a *API) LoginURL() string { return LoginURL() }

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires"`
	AccountID        string `json:"account_id"`
}

// Authenticate exchanges a web-login authorization code for launcher tokens
// and persists them. Any OAuth rejection surfaces as ErrAuthRequired; the
// code is single use and short lived.
func (a *API) Authenticate(code string) error {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("token_type", "eg1")

	creds, err := a.requestToken(form)
	if err != nil {
		return err
	}
	return a.store.SaveEpicCredentials(creds)
}

// EnsureValidToken returns a usable access token, refreshing and persisting
// first when the stored one is expired or about to expire.
func (a *API) EnsureValidToken() (string, error) {
	creds, err := a.credentials()
	if err != nil {
		return "", err
	}

	if creds.ExpiresAt > time.Now().Unix()+tokenExpiryMargin {
		return creds.AccessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", creds.RefreshToken)
	form.Set("token_type", "eg1")

	refreshed, err := a.requestToken(form)
	if err != nil {
		return "", err
	}
	if err := a.store.SaveEpicCredentials(refreshed); err != nil {
		return "", err
	}
	return refreshed.AccessToken, nil
}

func (a *API) requestToken(form url.Values) (storage.EpicCredentials, error) {
	req, err := http.NewRequest(http.MethodPost, a.oauthHost+"/account/api/oauth/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return storage.EpicCredentials{}, err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return storage.EpicCredentials{}, fmt.Errorf("%w: %v", library.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return storage.EpicCredentials{}, fmt.Errorf("%w: epic oauth returned %d", library.ErrAuthRequired, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return storage.EpicCredentials{}, fmt.Errorf("%w: %v", library.ErrNetwork, err)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return storage.EpicCredentials{}, fmt.Errorf("%w: oauth response: %v", library.ErrParse, err)
	}

	now := time.Now().Unix()
	return storage.EpicCredentials{
		AccessToken:      token.AccessToken,
		RefreshToken:     token.RefreshToken,
		AccountID:        token.AccountID,
		ExpiresAt:        now + token.ExpiresIn,
		RefreshExpiresAt: now + token.RefreshExpiresIn,
	}, nil
}

// VerifyCredentials checks the stored access token against the OAuth verify
// endpoint.
func (a *API) VerifyCredentials() (bool, error) {
	token, err := a.EnsureValidToken()
	if err != nil {
		return false, err
	}

	resp, err := a.authorizedGet(a.oauthHost+"/account/api/oauth/verify", token)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

type libraryRecord struct {
	Namespace     string `json:"namespace"`
	CatalogItemID string `json:"catalogItemId"`
	AppName       string `json:"appName"`
}

type libraryResponse struct {
	Records          []libraryRecord `json:"records"`
	ResponseMetadata struct {
		NextCursor string `json:"nextCursor"`
	} `json:"responseMetadata"`
}

// FetchOwnedGames pulls every entitlement from the library service, then
// decorates each with catalog metadata. The library pages on a cursor; the
// catalog is queried in per-namespace batches. A catalog failure degrades to
// games without metadata rather than failing the fetch.
func (a *API) FetchOwnedGames() (reconcile.OwnedResult, error) {
	token, err := a.EnsureValidToken()
	if err != nil {
		return reconcile.OwnedResult{}, err
	}

	records, err := a.fetchLibraryRecords(token)
	if err != nil {
		return reconcile.OwnedResult{}, err
	}

	// Batch catalog item ids per namespace.
	byNamespace := make(map[string][]string)
	for _, r := range records {
		byNamespace[r.Namespace] = append(byNamespace[r.Namespace], r.CatalogItemID)
	}

	items := make(map[string]catalogItem)
	for namespace, ids := range byNamespace {
		batch, err := a.fetchCatalogItems(token, namespace, ids)
		if err != nil {
			a.logger.Warn("catalog lookup failed, games will lack metadata",
				zap.String("namespace", namespace),
				zap.Error(err))
			continue
		}
		for id, item := range batch {
			items[id] = item
		}
	}

	result := reconcile.OwnedResult{
		Games:    make([]library.Game, 0, len(records)),
		Metadata: make(map[string]storage.GameMetadata),
	}
	for _, r := range records {
		game := library.NewGame(r.AppName, r.AppName, library.StoreEpic)

		if item, ok := items[r.CatalogItemID]; ok {
			if item.Title != "" {
				game.Name = item.Title
			}
			item.applyArtwork(&game)
			result.Metadata[game.UniqueKey()] = item.metadata()
		}

		result.Games = append(result.Games, game)
	}

	return result, nil
}

func (a *API) fetchLibraryRecords(token string) ([]libraryRecord, error) {
	var records []libraryRecord
	cursor := ""

	for {
		endpoint := fmt.Sprintf("%s/library/api/public/items?includeMetadata=true&cursor=%s",
			a.libraryHost, url.QueryEscape(cursor))

		resp, err := a.authorizedGet(endpoint, token)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusUnauthorized {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: epic session rejected", library.ErrAuthRequired)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: epic library returned %d", library.ErrNetwork, resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", library.ErrNetwork, err)
		}

		var page libraryResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("%w: library response: %v", library.ErrParse, err)
		}

		for _, r := range page.Records {
			// Entitlements without an app name are not launchable products
			// (audience tokens, entitlement stubs).
			if r.AppName != "" {
				records = append(records, r)
			}
		}

		cursor = page.ResponseMetadata.NextCursor
		if cursor == "" {
			return records, nil
		}
	}
}

func (a *API) fetchCatalogItems(token, namespace string, ids []string) (map[string]catalogItem, error) {
	endpoint := fmt.Sprintf(
		"%s/catalog/api/shared/namespace/%s/bulk/items?id=%s&includeDLCDetails=true&includeMainGameDetails=true&country=US&locale=en",
		a.catalogHost, url.PathEscape(namespace), strings.Join(ids, "&id="))

	resp, err := a.authorizedGet(endpoint, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: epic catalog returned %d", library.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", library.ErrNetwork, err)
	}

	var items map[string]catalogItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: catalog response: %v", library.ErrParse, err)
	}
	return items, nil
}

func (a *API) authorizedGet(endpoint, token string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", library.ErrNetwork, err)
	}
	return resp, nil
}

func (a *API) credentials() (storage.EpicCredentials, error) {
	creds, err := a.store.LoadCredentials()
	if err != nil {
		return storage.EpicCredentials{}, err
	}
	if creds.Epic == nil || creds.Epic.RefreshToken == "" {
		return storage.EpicCredentials{}, fmt.Errorf("%w: epic is not connected", library.ErrAuthRequired)
	}
	return *creds.Epic, nil
}
