package model

import "testing"

func TestTile_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		url      string
		expected string
	}{
		{"YouTube", "https://www.youtube.com/tv", "YouTube"},
		{"", "https://www.mozilla.org/", "www.mozilla.org"},
		{"   ", "http://example.com/path", "example.com/path"},
		{"", "", ""},
	}

	for _, test := range tests {
		tile := Tile{Title: test.title, URL: test.url}
		result := tile.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title='%s', url='%s' = '%s', expected '%s'",
				test.title, test.url, result, test.expected)
		}
	}
}

func TestTile_Source(t *testing.T) {
	bundled := Tile{ID: "youtube", Source: TileSourceBundled}
	custom := Tile{ID: "abc", Source: TileSourceCustom}

	if !bundled.IsBundled() || bundled.IsCustom() {
		t.Error("Expected bundled tile to report bundled source only")
	}
	if !custom.IsCustom() || custom.IsBundled() {
		t.Error("Expected custom tile to report custom source only")
	}
}

func TestTile_ChannelTile(t *testing.T) {
	tile := Tile{
		ID:        "youtube",
		URL:       "https://www.youtube.com/tv",
		Title:     "YouTube",
		ImagePath: "tile_youtube.png",
		Source:    TileSourceBundled,
	}

	row := tile.ChannelTile()
	if row.URL != tile.URL || row.ID != tile.ID || row.Title != "YouTube" {
		t.Errorf("Unexpected channel row: %+v", row)
	}
	if row.TileSource != TileSourceBundled {
		t.Errorf("Expected source %s, got %s", TileSourceBundled, row.TileSource)
	}
}
