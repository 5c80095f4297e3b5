package epic

import (
	"strings"

	"game-launcher/core/library"
	"game-launcher/core/storage"
)

// catalogItem is one entry of the catalog bulk-items response, reduced to
// the fields the launcher surfaces.
type catalogItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Developer   string `json:"developer"`
	Publisher   string `json:"publisher"`

	DeveloperDisplayName string `json:"developerDisplayName"`

	KeyImages []struct {
		Type string `json:"type"`
		URL  string `json:"url"`
	} `json:"keyImages"`

	Categories []struct {
		Path string `json:"path"`
	} `json:"categories"`

	ReleaseInfo []struct {
		Platform  []string `json:"platform"`
		DateAdded string   `json:"dateAdded"`
	} `json:"releaseInfo"`
}

const genreCategoryPrefix = "games/genre/"

// applyArtwork copies the item's key images onto the game. DieselGameBoxTall
// is the portrait cover the storefront shows; the plain DieselGameBox backs
// both cover and hero when the tall variant is missing.
func (c catalogItem) applyArtwork(game *library.Game) {
	var box, boxTall, logo string
	for _, img := range c.KeyImages {
		switch img.Type {
		case "DieselGameBoxTall":
			boxTall = img.URL
		case "DieselGameBox":
			box = img.URL
		case "DieselGameBoxLogo":
			logo = img.URL
		}
	}

	game.CoverURL = boxTall
	if game.CoverURL == "" {
		game.CoverURL = box
	}
	game.HeroURL = box
	game.IconURL = logo
}

// metadata extracts the catalog side fields: genres from category paths,
// platforms from release info, the earliest known release date.
func (c catalogItem) metadata() storage.GameMetadata {
	meta := storage.GameMetadata{Description: c.Description}

	developer := c.DeveloperDisplayName
	if developer == "" {
		developer = c.Developer
	}
	if developer != "" {
		meta.Developers = []string{developer}
	}
	if c.Publisher != "" {
		meta.Publishers = []string{c.Publisher}
	}

	for _, cat := range c.Categories {
		if genre, ok := strings.CutPrefix(cat.Path, genreCategoryPrefix); ok && genre != "" {
			meta.Genres = append(meta.Genres, capitalize(genre))
		}
	}

	seen := make(map[string]bool)
	for _, info := range c.ReleaseInfo {
		if meta.ReleaseDate == "" && info.DateAdded != "" {
			meta.ReleaseDate = info.DateAdded
		}
		for _, platform := range info.Platform {
			if platform == "Mac" {
				platform = "macOS"
			}
			if !seen[platform] {
				seen[platform] = true
				meta.Platforms = append(meta.Platforms, platform)
			}
		}
	}

	return meta
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
