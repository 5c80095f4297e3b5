package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

const (
	credentialsFile = "credentials.json"
	gamesCacheFile  = "games_cache.json"
	playHistoryFile = "play_history.json"
	settingsFile    = "settings.json"

	appDirName = "game-launcher"
)

// Storage persists launcher state as JSON files under a per-user data
// directory. Every Load method treats a missing file as the zero value, so a
// fresh install needs no setup step. Read-modify-write operations
// (RecordGameLaunch and friends) are serialized with a mutex because both the
// CLI path and HTTP handlers call them.
type Storage struct {
	dir string
	mu  sync.Mutex
}

// New resolves the data directory and makes sure it exists. An empty
// cfg.Dir means the OS per-user config directory.
func New(cfg Config) (*Storage, error) {
	dir := cfg.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config dir: %w", err)
		}
		dir = filepath.Join(base, appDirName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	return &Storage{dir: dir}, nil
}

// Dir returns the resolved data directory.
func (s *Storage) Dir() string {
	return s.dir
}

// readFile unmarshals the named file into v. A missing file leaves v
// untouched and returns false.
func (s *Storage) readFile(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", name, err)
	}
	return true, nil
}

// writeFile marshals v and writes it via a temp file plus rename, so a crash
// mid-write never leaves a truncated state file behind.
func (s *Storage) writeFile(name string, v any, perm os.FileMode) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
