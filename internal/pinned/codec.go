package pinned

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ytget/tv-tiles/internal/model"
)

// ErrBundledAsset is returned when the bundled tile asset cannot be parsed
var ErrBundledAsset = errors.New("malformed bundled tile asset")

type customTileJSON struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ID       string `json:"id"`
}

type bundledTileJSON struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	ImagePath string `json:"imagePath"`
}

// EncodeCustomTiles encodes custom tiles as the JSON array kept in preferences
func EncodeCustomTiles(tiles []model.Tile) (string, error) {
	entries := make([]customTileJSON, 0, len(tiles))
	for _, tile := range tiles {
		entries = append(entries, customTileJSON{
			URL:      tile.URL,
			Title:    tile.Title,
			Subtitle: tile.Subtitle,
			ID:       tile.ID,
		})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshalling custom tiles: %w", err)
	}
	return string(data), nil
}

// DecodeCustomTiles decodes the persisted custom tile array. An empty string
// decodes to no tiles; entries without a url or id are skipped.
func DecodeCustomTiles(data string) ([]model.Tile, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}

	var entries []customTileJSON
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, fmt.Errorf("unmarshalling custom tiles: %w", err)
	}

	tiles := make([]model.Tile, 0, len(entries))
	for i, entry := range entries {
		if entry.URL == "" || entry.ID == "" {
			log.Printf("pinned: skipping custom tile %d without url or id", i)
			continue
		}
		tiles = append(tiles, model.Tile{
			ID:       entry.ID,
			URL:      entry.URL,
			Title:    entry.Title,
			Subtitle: entry.Subtitle,
			Source:   model.TileSourceCustom,
		})
	}
	return tiles, nil
}

// DecodeBundledTiles decodes the bundled tile asset. Any defect is fatal for
// the caller and is reported wrapped in ErrBundledAsset.
func DecodeBundledTiles(data []byte) ([]model.Tile, error) {
	var entries []bundledTileJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBundledAsset, err)
	}

	tiles := make([]model.Tile, 0, len(entries))
	for i, entry := range entries {
		if entry.ID == "" || entry.URL == "" {
			return nil, fmt.Errorf("%w: entry %d is missing id or url", ErrBundledAsset, i)
		}
		tiles = append(tiles, model.Tile{
			ID:        entry.ID,
			URL:       entry.URL,
			Title:     entry.Title,
			Subtitle:  entry.Subtitle,
			ImagePath: entry.ImagePath,
			Source:    model.TileSourceBundled,
		})
	}
	return tiles, nil
}
