package library

// Store is the capability interface every platform integration implements.
// Exactly three implementations exist: feature/steam, feature/epic and
// feature/gog; no open extensibility is required.
//
// Implementations are stateless with respect to the catalog: GetInstalledGames
// re-scans platform data on every call and never caches. Availability is a
// snapshot taken at construction time, not re-probed per call.
type Store interface {
	// StoreID returns the stable lowercase identifier ("steam", "epic", "gog").
	StoreID() string

	// DisplayName returns the human-readable store name.
	DisplayName() string

	// IsAvailable reports whether the platform client was located on this
	// machine when the store was constructed.
	IsAvailable() bool

	// ClientPath returns the path to the platform's native executable, or ""
	// if none was detected.
	ClientPath() string

	// GetInstalledGames scans local platform data for installed titles.
	// Callers aggregating multiple stores must treat an error as an empty
	// contribution, log it, and continue.
	GetInstalledGames() ([]Game, error)

	// LaunchGame asks the platform to start the game with the given
	// store-scoped id. It returns once the launch has been requested as a
	// detached process, not once the game is running.
	LaunchGame(gameID string) error

	// ArtworkURL builds a public artwork URL for the game, or "" when the
	// platform has no public source for that artwork type.
	ArtworkURL(gameID string, art ArtworkType) string
}
