package storage

// Settings holds user preferences. Autostart registration with the OS is out
// of scope; LaunchOnStartup is only persisted for the shell to act on.
type Settings struct {
	LaunchOnStartup  bool `json:"launch_on_startup"`
	LaunchFullscreen bool `json:"launch_fullscreen"`
}

// LoadSettings reads settings.json. A missing file yields default settings.
func (s *Storage) LoadSettings() (Settings, error) {
	var settings Settings
	_, err := s.readFile(settingsFile, &settings)
	return settings, err
}

// SaveSettings writes settings.json.
func (s *Storage) SaveSettings(settings Settings) error {
	return s.writeFile(settingsFile, settings, 0o644)
}
