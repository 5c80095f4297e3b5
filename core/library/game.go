package library

import "strings"

// StoreType identifies which distribution platform a game belongs to.
// The set is closed: exactly three platforms are supported.
type StoreType string

const (
	StoreSteam StoreType = "steam"
	StoreEpic  StoreType = "epic"
	StoreGog   StoreType = "gog"
)

// Display returns the human-readable platform name.
func (s StoreType) Display() string {
	switch s {
	case StoreSteam:
		return "Steam"
	case StoreEpic:
		return "Epic"
	case StoreGog:
		return "GOG"
	default:
		return string(s)
	}
}

// Game is the unified record shared by every store integration.
// ID is unique only within a store; cross-store identity is the
// unique key ("store:id").
type Game struct {
	// ID is the store-scoped identifier (AppID for Steam, AppName for Epic,
	// product id for GOG).
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Store is the owning platform.
	Store StoreType `json:"store"`

	// Installed reports whether the game is present and runnable locally.
	Installed bool `json:"installed"`

	// InstallPath is the installation directory (only when installed).
	InstallPath string `json:"install_path,omitempty"`

	// Executable is the main executable path, if known.
	Executable string `json:"executable,omitempty"`

	// PlaytimeMinutes is total playtime, if the platform reports it.
	PlaytimeMinutes uint64 `json:"playtime_minutes,omitempty"`

	// LastPlayed is a unix timestamp of the last session.
	LastPlayed uint64 `json:"last_played,omitempty"`

	// CoverURL, HeroURL and IconURL point at platform artwork.
	CoverURL string `json:"cover_url,omitempty"`
	HeroURL  string `json:"hero_url,omitempty"`
	IconURL  string `json:"icon_url,omitempty"`

	// SizeBytes is the size on disk, if known.
	SizeBytes uint64 `json:"size_bytes,omitempty"`

	// Version is the installed version string, if known.
	Version string `json:"version,omitempty"`

	// InstalledAt is a unix timestamp of when the game was first detected.
	InstalledAt uint64 `json:"installed_at,omitempty"`
}

// NewGame builds a Game with the minimal required fields. All optional
// fields start unset and Installed starts false.
func NewGame(id, name string, store StoreType) Game {
	return Game{ID: id, Name: name, Store: store}
}

// UniqueKey derives the cross-store identity: lowercase store id, a colon,
// and the store-scoped game id. This is the sole key used for lookup,
// launch dispatch, and play-history entries.
func (g Game) UniqueKey() string {
	return strings.ToLower(string(g.Store)) + ":" + g.ID
}

// CanLaunch reports whether the game can be launched from this machine.
func (g Game) CanLaunch() bool {
	return g.Installed
}

// ArtworkType selects which piece of platform artwork to resolve.
type ArtworkType int

const (
	// ArtworkCover is portrait box art.
	ArtworkCover ArtworkType = iota
	// ArtworkHero is wide banner art.
	ArtworkHero
	// ArtworkLogo is the game logo.
	ArtworkLogo
	// ArtworkIcon is a small icon.
	ArtworkIcon
)

func (a ArtworkType) String() string {
	switch a {
	case ArtworkCover:
		return "cover"
	case ArtworkHero:
		return "hero"
	case ArtworkLogo:
		return "logo"
	case ArtworkIcon:
		return "icon"
	default:
		return "unknown"
	}
}
