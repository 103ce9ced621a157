package channel

import (
	"reflect"
	"testing"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/tv-tiles/internal/model"
)

func channelTiles(urls ...string) []model.ChannelTile {
	tiles := make([]model.ChannelTile, 0, len(urls))
	for _, url := range urls {
		tiles = append(tiles, model.ChannelTile{URL: url, Title: url, TileSource: model.TileSourceBundled})
	}
	return tiles
}

func urls(tiles []model.ChannelTile) []string {
	out := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		out = append(out, tile.URL)
	}
	return out
}

var testTiles = channelTiles("https://mozilla.org", "https://google.com", "https://wikipedia.org", "https://yahoo.com")

func TestFilterBlacklisted(t *testing.T) {
	tests := []struct {
		name      string
		blacklist []string
		expected  []string
	}{
		{
			name:      "removes blacklisted urls",
			blacklist: []string{"https://yahoo.com", "https://wikipedia.org"},
			expected:  []string{"https://mozilla.org", "https://google.com"},
		},
		{
			name:      "no overlap",
			blacklist: []string{"https://bing.com"},
			expected:  []string{"https://mozilla.org", "https://google.com", "https://wikipedia.org", "https://yahoo.com"},
		},
		{
			name:      "empty blacklist",
			blacklist: nil,
			expected:  []string{"https://mozilla.org", "https://google.com", "https://wikipedia.org", "https://yahoo.com"},
		},
		{
			name:      "exact match only",
			blacklist: []string{"https://mozilla.org/", "mozilla.org", "https://GOOGLE.com"},
			expected:  []string{"https://mozilla.org", "https://google.com", "https://wikipedia.org", "https://yahoo.com"},
		},
		{
			name:      "everything blacklisted",
			blacklist: []string{"https://yahoo.com", "https://google.com", "https://mozilla.org", "https://wikipedia.org"},
			expected:  []string{},
		},
	}

	for _, test := range tests {
		result := urls(FilterBlacklisted(testTiles, test.blacklist))
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("%s: expected %v, got %v", test.name, test.expected, result)
		}
	}
}

func TestFilterBlacklisted_Identity(t *testing.T) {
	result := FilterBlacklisted(testTiles, []string{})
	if !reflect.DeepEqual(result, testTiles) {
		t.Errorf("Expected identity for empty blacklist, got %v", result)
	}

	// Result must not alias the input
	result[0].Title = "changed"
	if testTiles[0].Title == "changed" {
		t.Error("Expected filtered result to be a copy")
	}
}

func TestFilterBlacklisted_DuplicateURLs(t *testing.T) {
	tiles := channelTiles("https://a.example", "https://b.example", "https://a.example")

	result := urls(FilterBlacklisted(tiles, []string{"https://a.example"}))
	if !reflect.DeepEqual(result, []string{"https://b.example"}) {
		t.Errorf("Expected every matching row removed, got %v", result)
	}
}

func toItems(tiles []model.ChannelTile) []any {
	items := make([]any, 0, len(tiles))
	for _, tile := range tiles {
		items = append(items, tile)
	}
	return items
}

func waitForURLs(t *testing.T, f *FilteredTiles, expected []string) {
	t.Helper()

	maxAttempts := 40
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if reflect.DeepEqual(urls(f.Tiles()), expected) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("Expected %v, got %v after waiting", expected, urls(f.Tiles()))
}

func TestFilteredTiles(t *testing.T) {
	test.NewApp()

	tiles := binding.NewUntypedList()
	if err := tiles.Set(toItems(testTiles)); err != nil {
		t.Fatalf("Failed to set tiles: %v", err)
	}
	blacklist := binding.NewStringList()

	f := NewFilteredTiles(tiles, blacklist)
	defer f.Close()

	// Computed synchronously on construction
	if got := urls(f.Tiles()); len(got) != 4 {
		t.Fatalf("Expected 4 tiles initially, got %v", got)
	}

	// Blacklist change recomputes
	if err := blacklist.Set([]string{"https://yahoo.com", "https://wikipedia.org"}); err != nil {
		t.Fatalf("Failed to set blacklist: %v", err)
	}
	waitForURLs(t, f, []string{"https://mozilla.org", "https://google.com"})

	// Tile change recomputes
	if err := tiles.Append(model.ChannelTile{URL: "https://vimeo.com"}); err != nil {
		t.Fatalf("Failed to append tile: %v", err)
	}
	waitForURLs(t, f, []string{"https://mozilla.org", "https://google.com", "https://vimeo.com"})

	items, err := f.Binding().Get()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(items) != 3 {
		t.Errorf("Expected output binding with 3 items, got %d", len(items))
	}
}

func TestFilteredTiles_IgnoresForeignItems(t *testing.T) {
	test.NewApp()

	tiles := binding.NewUntypedList()
	tiles.Set([]any{"not a tile", model.ChannelTile{URL: "https://a.example"}})

	f := NewFilteredTiles(tiles, binding.NewStringList())
	defer f.Close()

	if got := urls(f.Tiles()); !reflect.DeepEqual(got, []string{"https://a.example"}) {
		t.Errorf("Expected only channel tiles, got %v", got)
	}
}
