package gog

import (
	"fmt"

	"game-launcher/core/database"
	"game-launcher/core/library"

	"gorm.io/gorm"
)

// QueryInstalledGames reads the installed catalog out of Galaxy's
// galaxy-2.0.db. The schema shifts between Galaxy versions, so every table
// is probed before use: InstalledBaseProducts is the primary source, with
// LibraryReleases as the fallback when it is absent or empty.
func QueryInstalledGames(dbPath string) ([]library.Game, error) {
	db, err := database.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", library.ErrDatabase, err)
	}
	defer database.Close(db)

	games, err := queryInstalledBaseProducts(db)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return queryLibraryReleases(db)
	}
	return games, nil
}

func queryInstalledBaseProducts(db *gorm.DB) ([]library.Game, error) {
	exists, err := database.TableExists(db, "InstalledBaseProducts")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", library.ErrDatabase, err)
	}
	if !exists {
		return nil, nil
	}

	var productIDs []string
	if err := db.Raw("SELECT productId FROM InstalledBaseProducts").Scan(&productIDs).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", library.ErrDatabase, err)
	}

	games := make([]library.Game, 0, len(productIDs))
	for _, id := range productIDs {
		name := gameTitle(db, id)
		if name == "" {
			name = "GOG Game " + id
		}

		game := library.NewGame(id, name, library.StoreGog)
		game.Installed = true
		game.InstallPath = installPath(db, id)
		applyArtwork(&game)

		games = append(games, game)
	}

	return games, nil
}

func queryLibraryReleases(db *gorm.DB) ([]library.Game, error) {
	exists, err := database.TableExists(db, "LibraryReleases")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", library.ErrDatabase, err)
	}
	if !exists {
		return nil, nil
	}

	// Not every Galaxy schema keeps the title on LibraryReleases; older
	// layouts only record it as a GamePieces fact.
	hasTitle, err := hasColumn(db, "LibraryReleases", "title")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", library.ErrDatabase, err)
	}

	query := "SELECT releaseKey, title FROM LibraryReleases WHERE releaseKey LIKE 'gog_%'"
	if !hasTitle {
		query = "SELECT releaseKey, '' AS title FROM LibraryReleases WHERE releaseKey LIKE 'gog_%'"
	}

	var rows []struct {
		ReleaseKey string
		Title      string
	}
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", library.ErrDatabase, err)
	}

	games := make([]library.Game, 0, len(rows))
	for _, row := range rows {
		id := row.ReleaseKey
		if len(id) > len("gog_") {
			id = id[len("gog_"):]
		}

		name := row.Title
		if name == "" {
			name = gameTitle(db, id)
		}
		if name == "" {
			name = "GOG Game " + id
		}

		game := library.NewGame(id, name, library.StoreGog)
		game.Installed = true
		applyArtwork(&game)

		games = append(games, game)
	}

	return games, nil
}

// hasColumn probes a table's schema for a column, matched case-insensitively.
func hasColumn(db *gorm.DB, table, column string) (bool, error) {
	cols, err := database.GetTableColumns(db, table)
	if err != nil {
		return false, err
	}
	for _, col := range cols {
		if col.Field == column {
			return true, nil
		}
	}
	return false, nil
}

// gameTitle resolves a product's display name. GamePieces holds typed
// per-release facts keyed by release key; the title piece wins, then a
// LibraryReleases row.
func gameTitle(db *gorm.DB, productID string) string {
	releaseKey := "gog_" + productID

	var title string
	err := db.Raw(
		`SELECT value FROM GamePieces WHERE releaseKey = ? AND gamePieceTypeId =
			(SELECT id FROM GamePieceTypes WHERE type = 'title')`,
		releaseKey,
	).Scan(&title).Error
	if err == nil && title != "" {
		return title
	}

	err = db.Raw("SELECT title FROM LibraryReleases WHERE releaseKey = ?", releaseKey).
		Scan(&title).Error
	if err == nil {
		return title
	}
	return ""
}

func installPath(db *gorm.DB, productID string) string {
	exists, err := database.TableExists(db, "ProductConfiguration")
	if err != nil || !exists {
		return ""
	}

	var path string
	if err := db.Raw("SELECT installPath FROM ProductConfiguration WHERE productId = ?", productID).
		Scan(&path).Error; err != nil {
		return ""
	}
	return path
}
