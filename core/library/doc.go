// Package library holds the unified game model and the aggregated catalog.
//
// A Game is the store-agnostic representation every platform adapter produces.
// Games from different stores never collide: each game is addressed by its
// unique key, the lowercase store id joined to the store-native game id with
// a colon (for example "steam:440").
//
// # Store Interface
//
// The Store interface is the capability contract a platform adapter must
// satisfy to participate in the library: availability detection, installed
// game discovery, launching, and artwork URL construction. Adapters live in
// feature/steam, feature/epic, and feature/gog.
//
// # Library
//
// Library is the aggregation point. Stores are registered once at startup;
// RefreshAll scans every available store concurrently and replaces the cached
// catalog under a write lock. Reads (GetGames, FindGame, ...) only ever touch
// the cache and take the read lock, so lookups stay cheap while a refresh is
// in flight.
//
// # Usage
//
//	lib := library.NewLibrary(log)
//	lib.RegisterStore(steam.NewStore(log))
//	lib.RegisterStore(epic.NewStore(log))
//
//	games, _ := lib.RefreshAll()
//	if g, ok := lib.FindGame("steam:440"); ok {
//	    _ = lib.LaunchGame(g.UniqueKey())
//	}
package library
