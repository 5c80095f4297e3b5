package storage

import "time"

// PlayRecord tracks local activity for one game, keyed by its unique key.
// Timestamps are unix seconds.
type PlayRecord struct {
	LaunchCount  uint64 `json:"launch_count"`
	LastLaunched uint64 `json:"last_launched,omitempty"`
	InstalledAt  uint64 `json:"installed_at,omitempty"`
}

// PlayHistory maps unique keys to their local activity records.
type PlayHistory map[string]PlayRecord

// LoadPlayHistory reads play_history.json. A missing file yields an empty,
// non-nil map.
func (s *Storage) LoadPlayHistory() (PlayHistory, error) {
	history := PlayHistory{}
	_, err := s.readFile(playHistoryFile, &history)
	return history, err
}

// SavePlayHistory writes play_history.json.
func (s *Storage) SavePlayHistory(history PlayHistory) error {
	return s.writeFile(playHistoryFile, history, 0o644)
}

// RecordGameLaunch bumps the launch counter for the given unique key and
// returns the launch timestamp it recorded. Called just before dispatching
// the launch to the platform.
func (s *Storage) RecordGameLaunch(uniqueKey string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.LoadPlayHistory()
	if err != nil {
		return 0, err
	}

	now := uint64(time.Now().Unix())
	rec := history[uniqueKey]
	rec.LaunchCount++
	rec.LastLaunched = now
	history[uniqueKey] = rec

	if err := s.SavePlayHistory(history); err != nil {
		return 0, err
	}
	return now, nil
}

// RecordGameInstalled stamps the first-seen installation time for the given
// unique key. Later calls keep the original timestamp.
func (s *Storage) RecordGameInstalled(uniqueKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.LoadPlayHistory()
	if err != nil {
		return err
	}

	rec := history[uniqueKey]
	if rec.InstalledAt != 0 {
		return nil
	}
	rec.InstalledAt = uint64(time.Now().Unix())
	history[uniqueKey] = rec

	return s.SavePlayHistory(history)
}
