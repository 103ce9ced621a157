package ui

import (
	"testing"
)

func TestNewTileCard(t *testing.T) {
	card := NewTileCard("https://www.mozilla.org/en-US/")

	size := int(TileImageSize)
	bounds := card.Bounds()
	if bounds.Dx() != size || bounds.Dy() != size {
		t.Errorf("Expected %dx%d card, got %v", size, size, bounds)
	}

	// Inset is lighter than the border
	_, _, _, edgeA := card.At(0, 0).RGBA()
	if edgeA == 0 {
		t.Error("Expected an opaque card")
	}
	if card.At(0, 0) == card.At(size/2, size/2) {
		t.Error("Expected the inset to differ from the border")
	}
}

func TestCardIndex_SameHost(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"https://www.mozilla.org/", "http://mozilla.org/about"},
		{"https://example.com", "https://example.com/path?q=1"},
	}

	for _, test := range tests {
		if cardIndex(test.a) != cardIndex(test.b) {
			t.Errorf("Expected %q and %q to share a card color", test.a, test.b)
		}
	}

	if idx := cardIndex("not a url"); idx < 0 || idx >= len(cardPalette) {
		t.Errorf("Card index %d out of range", idx)
	}
}
