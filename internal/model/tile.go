package model

import (
	"strings"
)

// Tile is a single pinned shortcut shown on the home screen
type Tile struct {
	ID        string     // stable across persistence
	URL       string     // unique within a TileSet
	Title     string     // display title
	Subtitle  string     // optional second line
	ImagePath string     // asset-relative image for bundled tiles
	Source    TileSource // bundled or custom
}

// ChannelTile is a row of a channel as rendered by the home screen
type ChannelTile struct {
	ID         string
	URL        string
	Title      string
	Subtitle   string
	ImagePath  string
	TileSource TileSource
}

// IsBundled returns true if the tile ships with the application
func (t Tile) IsBundled() bool {
	return t.Source == TileSourceBundled
}

// IsCustom returns true if the tile was pinned by the user
func (t Tile) IsCustom() bool {
	return t.Source == TileSourceCustom
}

// ChannelTile converts the pinned tile to its channel row
func (t Tile) ChannelTile() ChannelTile {
	return ChannelTile{
		ID:         t.ID,
		URL:        t.URL,
		Title:      t.GetDisplayTitle(),
		Subtitle:   t.Subtitle,
		ImagePath:  t.ImagePath,
		TileSource: t.Source,
	}
}

// GetDisplayTitle returns title, or the URL without scheme when the title is empty
func (t Tile) GetDisplayTitle() string {
	if strings.TrimSpace(t.Title) != "" {
		return t.Title
	}

	title := t.URL
	for _, prefix := range []string{"https://", "http://"} {
		title = strings.TrimPrefix(title, prefix)
	}
	return strings.TrimSuffix(title, "/")
}
