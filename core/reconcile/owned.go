package reconcile

import (
	"game-launcher/core/library"
	"game-launcher/core/storage"
)

// OwnedResult is the outcome of one remote ownership fetch.
type OwnedResult struct {
	// Games is the full remote catalog, installed state unset.
	Games []library.Game

	// Metadata carries extended catalog fields keyed by unique key, for
	// platforms whose API returns more than the Game record holds. May be nil.
	Metadata map[string]storage.GameMetadata
}

// OwnedSource is a platform's remote "owned games" API. Two implementations
// exist, Steam and Epic; GOG Galaxy exposes no ownership endpoint the
// launcher can use.
type OwnedSource interface {
	// Store identifies the platform the fetched games belong to.
	Store() library.StoreType

	// FetchOwnedGames retrieves the complete remote catalog. Pagination is
	// the implementation's concern; the result is always the full list.
	// Expired credentials surface as library.ErrAuthRequired.
	FetchOwnedGames() (OwnedResult, error)
}
