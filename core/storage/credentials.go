package storage

// SteamCredentials holds the Steam Web API key and the account it belongs to.
type SteamCredentials struct {
	APIKey  string `json:"api_key"`
	SteamID string `json:"steam_id"`
}

// EpicCredentials holds the OAuth token set for an Epic account. Expiry
// timestamps are unix seconds.
type EpicCredentials struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	AccountID        string `json:"account_id"`
	ExpiresAt        int64  `json:"expires_at"`
	RefreshExpiresAt int64  `json:"refresh_expires_at"`
}

// Credentials is the on-disk credential set. A nil platform entry means the
// user never connected that platform.
type Credentials struct {
	Steam *SteamCredentials `json:"steam,omitempty"`
	Epic  *EpicCredentials  `json:"epic,omitempty"`
}

// LoadCredentials reads credentials.json. A missing file yields empty
// credentials, not an error.
func (s *Storage) LoadCredentials() (Credentials, error) {
	var creds Credentials
	_, err := s.readFile(credentialsFile, &creds)
	return creds, err
}

// SaveCredentials writes credentials.json with owner-only permissions.
func (s *Storage) SaveCredentials(creds Credentials) error {
	return s.writeFile(credentialsFile, creds, 0o600)
}

// SaveSteamCredentials updates only the Steam entry.
func (s *Storage) SaveSteamCredentials(sc SteamCredentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.LoadCredentials()
	if err != nil {
		return err
	}
	creds.Steam = &sc
	return s.SaveCredentials(creds)
}

// SaveEpicCredentials updates only the Epic entry.
func (s *Storage) SaveEpicCredentials(ec EpicCredentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.LoadCredentials()
	if err != nil {
		return err
	}
	creds.Epic = &ec
	return s.SaveCredentials(creds)
}

// ClearSteamData disconnects Steam: credentials plus the owned-games cache.
func (s *Storage) ClearSteamData() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.LoadCredentials()
	if err != nil {
		return err
	}
	creds.Steam = nil
	if err := s.SaveCredentials(creds); err != nil {
		return err
	}

	cache, err := s.LoadGamesCache()
	if err != nil {
		return err
	}
	cache.SteamOwned = nil
	cache.SteamLastSync = 0
	return s.SaveGamesCache(cache)
}

// ClearEpicData disconnects Epic: credentials, owned-games cache, and the
// catalog metadata side table.
func (s *Storage) ClearEpicData() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.LoadCredentials()
	if err != nil {
		return err
	}
	creds.Epic = nil
	if err := s.SaveCredentials(creds); err != nil {
		return err
	}

	cache, err := s.LoadGamesCache()
	if err != nil {
		return err
	}
	cache.EpicOwned = nil
	cache.EpicLastSync = 0
	cache.EpicMetadata = nil
	return s.SaveGamesCache(cache)
}
