// Package steam integrates the Steam platform.
//
// # Detection
//
// Client paths are resolved per OS (registry on Windows, well-known
// directories elsewhere) with an optional configured override. The signed-in
// account id is read from config/loginusers.vdf.
//
// # Installed games
//
// Library folders come from steamapps/libraryfolders.vdf and each folder is
// scanned for appmanifest_*.acf files. Manifests that cannot be parsed are
// skipped with a warning rather than failing the scan.
//
// # Ownership
//
// API holds the Steam Web API client. It fetches the owned catalog via
// IPlayerService/GetOwnedGames using the user-supplied Web API key and
// SteamID, and store-page details via the storefront appdetails endpoint.
package steam
