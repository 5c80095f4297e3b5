// Package catalog exposes the unified game catalog over HTTP: library reads,
// launch dispatch with play-history recording, per-platform ownership syncs,
// and platform account management. It stands in for a GUI shell; anything a
// front end would call lives here.
package catalog
