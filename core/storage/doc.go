// Package storage persists launcher state as JSON files in the per-user
// config directory.
//
// Four files make up the whole persisted state:
//
//   - credentials.json: Steam API key and Epic OAuth tokens (mode 0600).
//   - games_cache.json: owned games from the last ownership sync per
//     platform, plus the Epic catalog metadata side table.
//   - play_history.json: per-game launch counts and timestamps, keyed by
//     unique key.
//   - settings.json: user preferences.
//
// # Missing files
//
// A missing file is the normal first-run state, never an error: every Load
// method returns the zero value for it. Writes go through a temp file and a
// rename.
//
// # Usage
//
//	store, err := storage.New(cfg.Data)
//	creds, err := store.LoadCredentials()
//	ts, err := store.RecordGameLaunch("steam:440")
package storage
