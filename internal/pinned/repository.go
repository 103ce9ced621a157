package pinned

import (
	"fmt"
	"image"
	"io/fs"
	"log"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"github.com/google/uuid"

	"github.com/ytget/tv-tiles/internal/model"
	"github.com/ytget/tv-tiles/internal/platform"
)

// Counts mirrors the number of tiles per source in the current snapshot.
// It is kept for logging and telemetry only.
type Counts struct {
	Custom  int
	Bundled int
}

// Repository owns the pinned tile set. Mutations are serialized; every
// change publishes a new *model.TileSet through Tiles().
type Repository struct {
	mu          sync.Mutex
	store       Store
	screenshots ScreenshotStore
	bundled     []model.Tile // parsed asset, before blacklisting
	images      fs.FS        // bundled tile images, keyed by ImagePath
	current     *model.TileSet
	counts      Counts
	lastIO      *Pending

	publishMu    sync.Mutex
	tiles        binding.Untyped
	empty        binding.Bool
	channelTiles binding.UntypedList
}

// NewRepository parses the bundled asset and loads the persisted tiles.
// screenshots may be nil, in which case screenshots are neither saved nor removed.
func NewRepository(store Store, bundledJSON []byte, screenshots ScreenshotStore) (*Repository, error) {
	if store == nil {
		return nil, fmt.Errorf("pinned tile store is nil")
	}

	bundled, err := DecodeBundledTiles(bundledJSON)
	if err != nil {
		return nil, err
	}

	r := &Repository{
		store:        store,
		screenshots:  screenshots,
		bundled:      bundled,
		tiles:        binding.NewUntyped(),
		empty:        binding.NewBool(),
		channelTiles: binding.NewUntypedList(),
	}
	r.Load()
	return r, nil
}

// Tiles returns the replay-latest holder of the current *model.TileSet
func (r *Repository) Tiles() binding.Untyped {
	return r.tiles
}

// IsEmpty is true exactly when the current snapshot has no tiles.
// Setting an unchanged value does not notify listeners.
func (r *Repository) IsEmpty() binding.Bool {
	return r.empty
}

// ChannelTiles holds the current snapshot as model.ChannelTile values
func (r *Repository) ChannelTiles() binding.UntypedList {
	return r.channelTiles
}

// Snapshot returns the current tile set
func (r *Repository) Snapshot() *model.TileSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Counts returns the per-source tile counters
func (r *Repository) Counts() Counts {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts
}

// Load re-reads both stores, merges them and publishes the result
func (r *Repository) Load() {
	r.mu.Lock()
	r.reload()
	r.mu.Unlock()

	r.publish()
}

// SetBundledImages sets the filesystem bundled tile ImagePaths resolve against
func (r *Repository) SetBundledImages(images fs.FS) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images = images
}

// AddPinnedTile pins url as a custom tile. Surrounding whitespace is not part
// of the url. ok is false, and nothing is persisted or published, when url is
// blank, a tile already exists at url or the custom tiles cannot be saved.
// The returned Pending tracks the screenshot write, if any.
func (r *Repository) AddPinnedTile(url string, screenshot image.Image) (tile model.Tile, pending *Pending, ok bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		log.Printf("pinned: add skipped, empty url")
		return model.Tile{}, nil, false
	}

	r.mu.Lock()
	if r.current.Contains(url) {
		r.mu.Unlock()
		log.Printf("pinned: add skipped, tile exists url=%s", url)
		return model.Tile{}, nil, false
	}

	tile = NewCustomTile(url)
	custom := append(r.storedCustomTiles(), tile)
	if err := r.saveCustomTiles(custom); err != nil {
		r.mu.Unlock()
		log.Printf("pinned: add failed url=%s: %v", url, err)
		return model.Tile{}, nil, false
	}

	if screenshot != nil && r.screenshots != nil {
		id := tile.ID
		pending = r.runBackground("save screenshot "+id, func() error {
			return r.screenshots.Save(id, screenshot)
		})
	}

	r.reload()
	r.mu.Unlock()

	log.Printf("pinned: added id=%s url=%s", tile.ID, url)
	r.publish()
	return tile, pending, true
}

// RemovePinnedTile unpins the tile at url and returns its id. Bundled tiles
// are blacklisted; custom tiles are dropped from the custom store and their
// screenshot is deleted in the background, tracked by the returned Pending.
// ok is false, and nothing is persisted or published, when no tile exists at
// url or the custom tiles cannot be saved.
func (r *Repository) RemovePinnedTile(url string) (id string, pending *Pending, ok bool) {
	r.mu.Lock()
	tile, ok := r.current.Get(url)
	if !ok {
		r.mu.Unlock()
		return "", nil, false
	}

	switch tile.Source {
	case model.TileSourceBundled:
		r.addToBlacklist(tile.ID)
	case model.TileSourceCustom:
		stored := r.storedCustomTiles()
		remaining := make([]model.Tile, 0, len(stored))
		for _, custom := range stored {
			if custom.URL != url {
				remaining = append(remaining, custom)
			}
		}
		if err := r.saveCustomTiles(remaining); err != nil {
			r.mu.Unlock()
			log.Printf("pinned: remove failed url=%s: %v", url, err)
			return "", nil, false
		}
		if r.screenshots != nil {
			tileID := tile.ID
			pending = r.runBackground("remove screenshot "+tileID, func() error {
				return r.screenshots.Remove(tileID)
			})
		}
	}

	r.reload()
	r.mu.Unlock()

	log.Printf("pinned: removed id=%s source=%s url=%s", tile.ID, tile.Source, url)
	r.publish()
	return tile.ID, pending, true
}

// TileImage loads the image shown for tile: the stored screenshot of a custom
// tile, or the bundled image. A bundled image in the asset directory
// overrides the one in the bundled images filesystem.
func (r *Repository) TileImage(tile model.Tile) (image.Image, error) {
	if tile.IsCustom() {
		if r.screenshots == nil {
			return nil, fmt.Errorf("no screenshot store configured")
		}
		return r.screenshots.Load(tile.ID)
	}

	if tile.ImagePath == "" {
		return nil, fmt.Errorf("bundled tile %s has no image", tile.ID)
	}

	if dir := r.store.GetAssetDirectory(); dir != "" {
		img, err := LoadImageFromPath(filepath.Join(dir, tile.ImagePath))
		if err == nil {
			return img, nil
		}
		log.Printf("pinned: no override image id=%s: %v", tile.ID, err)
	}

	r.mu.Lock()
	images := r.images
	r.mu.Unlock()
	if images == nil {
		return nil, fmt.Errorf("no image for bundled tile %s: %w", tile.ID, fs.ErrNotExist)
	}
	return platform.LoadImageFromFS(images, tile.ImagePath)
}

// LoadImageFromPath reads and decodes an image. Safe from any goroutine.
func LoadImageFromPath(path string) (image.Image, error) {
	return platform.LoadImageFromPath(path)
}

// NewCustomTile creates a custom tile for url with a fresh id
func NewCustomTile(rawURL string) model.Tile {
	return model.Tile{
		ID:     generateTileID(),
		URL:    rawURL,
		Title:  titleFromURL(rawURL),
		Source: model.TileSourceCustom,
	}
}

// reload rebuilds the snapshot from the stores. Callers hold r.mu.
func (r *Repository) reload() {
	bundled := filterBlacklisted(r.bundled, r.store.GetBlacklist())

	r.current = MergeTiles(bundled, r.storedCustomTiles())
	r.counts = Counts{
		Custom:  len(r.current.CustomTiles()),
		Bundled: len(r.current.BundledTiles()),
	}
	log.Printf("pinned: loaded tiles=%d custom=%d bundled=%d", r.current.Len(), r.counts.Custom, r.counts.Bundled)
}

// publish pushes the latest snapshot to the bindings
func (r *Repository) publish() {
	r.publishMu.Lock()
	defer r.publishMu.Unlock()

	set := r.Snapshot()

	if err := r.empty.Set(set.Len() == 0); err != nil {
		log.Printf("pinned: publishing empty state: %v", err)
	}

	rows := set.ChannelTiles()
	items := make([]any, 0, len(rows))
	for _, row := range rows {
		items = append(items, row)
	}
	if err := r.channelTiles.Set(items); err != nil {
		log.Printf("pinned: publishing channel tiles: %v", err)
	}

	if err := r.tiles.Set(set); err != nil {
		log.Printf("pinned: publishing tiles: %v", err)
	}
}

// addToBlacklist records a removed bundled tile id once. Callers hold r.mu.
func (r *Repository) addToBlacklist(id string) {
	blacklist := r.store.GetBlacklist()
	for _, existing := range blacklist {
		if existing == id {
			return
		}
	}
	r.store.SetBlacklist(append(blacklist, id))
}

// storedCustomTiles decodes the custom store. It includes tiles shadowed in
// the snapshot by a bundled tile with the same URL. Callers hold r.mu.
func (r *Repository) storedCustomTiles() []model.Tile {
	custom, err := DecodeCustomTiles(r.store.GetCustomTiles())
	if err != nil {
		log.Printf("pinned: ignoring unreadable custom tiles: %v", err)
		return nil
	}
	return custom
}

// saveCustomTiles persists tiles as the custom store. Callers hold r.mu.
func (r *Repository) saveCustomTiles(tiles []model.Tile) error {
	data, err := EncodeCustomTiles(tiles)
	if err != nil {
		return err
	}
	return r.store.SetCustomTiles(data)
}

// runBackground queues fn behind earlier background work so screenshot
// writes and deletes for the same id land in order. Callers hold r.mu.
func (r *Repository) runBackground(name string, fn func() error) *Pending {
	p := startPending(name, r.lastIO, fn)
	r.lastIO = p
	return p
}

// generateTileID generates a unique tile ID using UUID v7
func generateTileID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to a random UUID, then to a timestamp
		if random, err := uuid.NewRandom(); err == nil {
			return random.String()
		}
		return fmt.Sprintf("tile-%d", time.Now().UnixNano())
	}
	return id.String()
}

// titleFromURL returns the host without a leading "www.", or the raw URL
func titleFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}
