package pinned

import (
	"github.com/ytget/tv-tiles/internal/model"
)

// Bundled tile ids shown ahead of custom tiles
const (
	YouTubeTileID     = "youtube"
	GoogleVideoTileID = "googleVideo"
)

// ImportantBundledIDs lists the bundled tiles placed before custom tiles
var ImportantBundledIDs = []string{YouTubeTileID, GoogleVideoTileID}

func isImportant(id string) bool {
	for _, important := range ImportantBundledIDs {
		if id == important {
			return true
		}
	}
	return false
}

// MergeTiles orders tiles as: important bundled tiles, custom tiles, remaining
// bundled tiles. Each tier keeps its input order. A later tile with a URL
// already present replaces the earlier one in place.
func MergeTiles(bundled, custom []model.Tile) *model.TileSet {
	b := model.NewTileSetBuilder()

	for _, tile := range bundled {
		if isImportant(tile.ID) {
			b.Put(tile)
		}
	}
	for _, tile := range custom {
		b.Put(tile)
	}
	for _, tile := range bundled {
		if !isImportant(tile.ID) {
			b.Put(tile)
		}
	}

	return b.Build()
}

// filterBlacklisted drops bundled tiles whose id is in blacklist
func filterBlacklisted(bundled []model.Tile, blacklist []string) []model.Tile {
	if len(blacklist) == 0 {
		return bundled
	}

	ids := make(map[string]struct{}, len(blacklist))
	for _, id := range blacklist {
		ids[id] = struct{}{}
	}

	kept := make([]model.Tile, 0, len(bundled))
	for _, tile := range bundled {
		if _, ok := ids[tile.ID]; ok {
			continue
		}
		kept = append(kept, tile)
	}
	return kept
}
