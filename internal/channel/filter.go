package channel

import (
	"log"
	"sync"

	"fyne.io/fyne/v2/data/binding"

	"github.com/ytget/tv-tiles/internal/model"
)

// FilterBlacklisted returns the tiles whose URL is not in blacklist, in their
// original order. URLs match by exact string equality.
func FilterBlacklisted(tiles []model.ChannelTile, blacklist []string) []model.ChannelTile {
	out := make([]model.ChannelTile, 0, len(tiles))
	if len(blacklist) == 0 {
		return append(out, tiles...)
	}

	blocked := make(map[string]struct{}, len(blacklist))
	for _, url := range blacklist {
		blocked[url] = struct{}{}
	}

	for _, tile := range tiles {
		if _, ok := blocked[tile.URL]; ok {
			continue
		}
		out = append(out, tile)
	}
	return out
}

// FilteredTiles keeps an output list equal to FilterBlacklisted of its two
// inputs, recomputed whenever either input changes
type FilteredTiles struct {
	mu        sync.Mutex // guards current
	updateMu  sync.Mutex // serializes recompute
	tiles     binding.UntypedList
	blacklist binding.StringList
	out       binding.UntypedList
	current   []model.ChannelTile
	listener  binding.DataListener
}

// NewFilteredTiles binds tiles (model.ChannelTile items) and blacklist (URLs).
// The first result is computed before returning.
func NewFilteredTiles(tiles binding.UntypedList, blacklist binding.StringList) *FilteredTiles {
	f := &FilteredTiles{
		tiles:     tiles,
		blacklist: blacklist,
		out:       binding.NewUntypedList(),
	}
	f.recompute()

	f.listener = binding.NewDataListener(f.recompute)
	tiles.AddListener(f.listener)
	blacklist.AddListener(f.listener)
	return f
}

// Tiles returns the current filtered rows
func (f *FilteredTiles) Tiles() []model.ChannelTile {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]model.ChannelTile, len(f.current))
	copy(out, f.current)
	return out
}

// Binding returns the filtered rows as a list binding for widgets
func (f *FilteredTiles) Binding() binding.UntypedList {
	return f.out
}

// Close detaches from both inputs
func (f *FilteredTiles) Close() {
	f.tiles.RemoveListener(f.listener)
	f.blacklist.RemoveListener(f.listener)
}

func (f *FilteredTiles) recompute() {
	f.updateMu.Lock()
	defer f.updateMu.Unlock()

	items, err := f.tiles.Get()
	if err != nil {
		log.Printf("channel: reading tiles: %v", err)
		return
	}
	blacklist, err := f.blacklist.Get()
	if err != nil {
		log.Printf("channel: reading blacklist: %v", err)
		return
	}

	tiles := make([]model.ChannelTile, 0, len(items))
	for _, item := range items {
		tile, ok := item.(model.ChannelTile)
		if !ok {
			log.Printf("channel: ignoring item of type %T", item)
			continue
		}
		tiles = append(tiles, tile)
	}

	filtered := FilterBlacklisted(tiles, blacklist)

	f.mu.Lock()
	f.current = filtered
	f.mu.Unlock()

	out := make([]any, 0, len(filtered))
	for _, tile := range filtered {
		out = append(out, tile)
	}
	if err := f.out.Set(out); err != nil {
		log.Printf("channel: publishing filtered tiles: %v", err)
	}
}
