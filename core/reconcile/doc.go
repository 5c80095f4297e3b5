// Package reconcile merges two sources of truth about a platform's games:
// the remote "owned" catalog reported by the platform's API and the local
// "installed" catalog discovered by scanning this machine.
//
// # Architecture
//
// The package consists of three parts:
//
// 1. Merge: the pure reconciliation function. Owned games matching an
// installed entry inherit its install metadata; placeholder remote names
// ("App 12345") give way to local ones; owned games without a local match
// have all install fields cleared. Merge is idempotent.
//
// 2. OwnedSource: the platform-specific fetch. Steam is a single keyed GET;
// Epic loops an opaque cursor until the server stops returning one and then
// bulk-loads catalog metadata. Both hide pagination behind one call.
//
// 3. Service: orchestration. Sync runs the remote fetch and the local
// library refresh as parallel tasks, merges, and persists the merged list
// plus a sync timestamp. Cached re-merges the last persisted owned list
// against a fresh local scan without any network call.
//
// # Usage Example
//
//	svc := reconcile.NewService(lib, store, log)
//
//	// Full sync (network)
//	games, err := svc.Sync(steamAPI)
//
//	// Cached read (no network), install state still current
//	games, lastSync, err := svc.Cached(library.StoreSteam)
package reconcile
