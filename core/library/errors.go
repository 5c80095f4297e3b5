package library

import "errors"

// Sentinel errors for the launcher core. Wrap with fmt.Errorf("%w: ...")
// and match with errors.Is.
var (
	// ErrStoreNotFound reports an unknown store id in a unique key or registry.
	ErrStoreNotFound = errors.New("store not found")

	// ErrGameNotFound reports a unique key that matches no cached game, or a
	// malformed key that cannot name one.
	ErrGameNotFound = errors.New("game not found")

	// ErrParse reports a malformed manifest, VDF block, or API payload.
	// Scans skip the offending item and continue.
	ErrParse = errors.New("parse failure")

	// ErrDatabase reports a Galaxy database that cannot be opened or queried.
	ErrDatabase = errors.New("database error")

	// ErrNetwork reports connectivity failures and non-2xx responses other
	// than authentication rejections.
	ErrNetwork = errors.New("network failure")

	// ErrAuthRequired reports expired or invalid remote credentials. Kept
	// distinct from ErrNetwork so callers can prompt for re-login instead of
	// showing a transient-outage message.
	ErrAuthRequired = errors.New("authentication required")

	// ErrLaunch reports that spawning the platform's launch process failed.
	ErrLaunch = errors.New("launch failed")
)
