package model

// TileSet is an immutable insertion-ordered mapping from URL to Tile.
// A published TileSet is never mutated; changes build a new one.
type TileSet struct {
	order []string
	byURL map[string]Tile
}

// TileSetBuilder accumulates tiles in insertion order
type TileSetBuilder struct {
	order []string
	byURL map[string]Tile
}

// NewTileSetBuilder creates an empty builder
func NewTileSetBuilder() *TileSetBuilder {
	return &TileSetBuilder{byURL: make(map[string]Tile)}
}

// Put stores the tile under its URL. An existing entry keeps its position
// and is replaced; the previous value is returned with replaced set to true.
func (b *TileSetBuilder) Put(tile Tile) (prev Tile, replaced bool) {
	prev, replaced = b.byURL[tile.URL]
	if !replaced {
		b.order = append(b.order, tile.URL)
	}
	b.byURL[tile.URL] = tile
	return prev, replaced
}

// Build returns the accumulated tiles as a TileSet. The builder must not be
// used afterwards.
func (b *TileSetBuilder) Build() *TileSet {
	set := &TileSet{order: b.order, byURL: b.byURL}
	b.order = nil
	b.byURL = nil
	return set
}

// NewTileSet builds a TileSet from tiles in order
func NewTileSet(tiles ...Tile) *TileSet {
	b := NewTileSetBuilder()
	for _, tile := range tiles {
		b.Put(tile)
	}
	return b.Build()
}

// Len returns the number of tiles
func (s *TileSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Get returns the tile stored under url
func (s *TileSet) Get(url string) (Tile, bool) {
	if s == nil {
		return Tile{}, false
	}
	tile, ok := s.byURL[url]
	return tile, ok
}

// Contains reports whether a tile is stored under url
func (s *TileSet) Contains(url string) bool {
	_, ok := s.Get(url)
	return ok
}

// URLs returns the keys in order
func (s *TileSet) URLs() []string {
	if s == nil {
		return nil
	}
	urls := make([]string, len(s.order))
	copy(urls, s.order)
	return urls
}

// Tiles returns a copy of the tiles in order
func (s *TileSet) Tiles() []Tile {
	return s.filter(func(Tile) bool { return true })
}

// CustomTiles returns the custom tiles in order
func (s *TileSet) CustomTiles() []Tile {
	return s.filter(Tile.IsCustom)
}

// BundledTiles returns the bundled tiles in order
func (s *TileSet) BundledTiles() []Tile {
	return s.filter(Tile.IsBundled)
}

// ChannelTiles returns the tiles as channel rows in order
func (s *TileSet) ChannelTiles() []ChannelTile {
	tiles := s.Tiles()
	rows := make([]ChannelTile, 0, len(tiles))
	for _, tile := range tiles {
		rows = append(rows, tile.ChannelTile())
	}
	return rows
}

func (s *TileSet) filter(keep func(Tile) bool) []Tile {
	if s == nil {
		return []Tile{}
	}
	tiles := make([]Tile, 0, len(s.order))
	for _, url := range s.order {
		tile := s.byURL[url]
		if keep(tile) {
			tiles = append(tiles, tile)
		}
	}
	return tiles
}
