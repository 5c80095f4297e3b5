// Package gog integrates the GOG Galaxy platform.
//
// Galaxy has no ownership API the launcher can use, so the integration is
// local only: client paths are detected per OS and the installed catalog is
// read out of Galaxy's galaxy-2.0.db SQLite database, opened read-only.
// Games launch through the goggalaxy:// protocol handler and artwork comes
// from the public GOG statics CDN.
package gog
