// Package epic integrates the Epic Games platform.
//
// # Detection
//
// The launcher and its manifest directory are located per OS (registry on
// Windows, app bundle and Application Support on macOS). There is no native
// Linux launcher, so detection reports nothing there; online ownership still
// works.
//
// # Installed games
//
// The launcher writes one JSON .item manifest per installed game. Manifests
// missing required fields or flagged as incomplete installs are skipped.
//
// # Ownership
//
// API authenticates with the official launcher's OAuth client using a web
// exchange code, keeps tokens fresh through storage, pages the library
// service for entitlements, and decorates them with catalog metadata.
// Catalog failures degrade to bare records instead of failing the sync.
package epic
