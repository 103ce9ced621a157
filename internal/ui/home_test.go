package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/tv-tiles/internal/config"
	"github.com/ytget/tv-tiles/internal/model"
	"github.com/ytget/tv-tiles/internal/pinned"
	"github.com/ytget/tv-tiles/internal/screenshot"
)

const testBundled = `[
	{"id":"youtube","url":"https://www.youtube.com/tv","title":"YouTube"},
	{"id":"vimeo","url":"https://vimeo.com/","title":"Vimeo"}
]`

func newTestHome(t *testing.T) (*HomeUI, *pinned.Repository) {
	t.Helper()

	app := test.NewApp()
	settings := config.NewSettings(app)
	repo, err := pinned.NewRepository(settings, []byte(testBundled), nil)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	home := NewHomeUI(window, settings, repo, NewLocalization())
	t.Cleanup(home.Close)
	return home, repo
}

func TestValidateURL(t *testing.T) {
	home, _ := newTestHome(t)

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"https://mozilla.org", false},
		{"http://example.com/path", false},
		{"ftp://example.com", true},
		{"mozilla.org", true},
		{"https://", true},
	}

	for _, test := range tests {
		err := home.validateURL(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("validateURL(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
		}
	}
}

func TestHomeUI_Pin(t *testing.T) {
	home, repo := newTestHome(t)

	home.urlEntry.SetText("https://mozilla.org")
	home.onPinClick()

	if !repo.Snapshot().Contains("https://mozilla.org") {
		t.Fatal("Expected entered URL to be pinned")
	}
	if home.urlEntry.Text != "" {
		t.Errorf("Expected entry to be cleared, got %q", home.urlEntry.Text)
	}
	if home.statusLabel.Text != home.localization.GetText(KeyTilePinned) {
		t.Errorf("Unexpected status %q", home.statusLabel.Text)
	}

	// Pinning the same URL again is reported, not duplicated
	home.urlEntry.SetText("https://mozilla.org")
	home.onPinClick()

	if home.statusLabel.Text != home.localization.GetText(KeyAlreadyPinned) {
		t.Errorf("Expected already pinned status, got %q", home.statusLabel.Text)
	}
	if repo.Snapshot().Len() != 3 {
		t.Errorf("Expected 3 tiles, got %d", repo.Snapshot().Len())
	}
}

func TestHomeUI_PinRejectsInvalidInput(t *testing.T) {
	home, repo := newTestHome(t)

	home.urlEntry.SetText("")
	home.onPinClick()
	if home.statusLabel.Text != home.localization.GetText(KeyPleaseEnterURL) {
		t.Errorf("Expected please enter URL status, got %q", home.statusLabel.Text)
	}

	home.urlEntry.SetText("mozilla.org")
	home.onPinClick()
	if repo.Snapshot().Len() != 2 {
		t.Errorf("Expected invalid URL not to be pinned, got %d tiles", repo.Snapshot().Len())
	}
}

func TestHomeUI_Unpin(t *testing.T) {
	home, repo := newTestHome(t)

	home.onUnpin(model.ChannelTile{ID: "vimeo", URL: "https://vimeo.com/"})

	if repo.Snapshot().Contains("https://vimeo.com/") {
		t.Error("Expected vimeo to be unpinned")
	}
	if home.statusLabel.Text != home.localization.GetText(KeyTileUnpinned) {
		t.Errorf("Unexpected status %q", home.statusLabel.Text)
	}
}

func TestHomeUI_Hide(t *testing.T) {
	home, repo := newTestHome(t)

	tile := model.ChannelTile{ID: "vimeo", URL: "https://vimeo.com/"}
	home.onHide(tile)
	home.onHide(tile)

	hidden, err := home.hidden.Get()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(hidden) != 1 || hidden[0] != tile.URL {
		t.Errorf("Expected hidden [%s], got %v", tile.URL, hidden)
	}

	// Hidden tiles stay pinned
	if !repo.Snapshot().Contains(tile.URL) {
		t.Error("Expected hidden tile to remain pinned")
	}
}

func TestHomeUI_PinStoresCard(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)

	store, err := screenshot.NewStore(storage.NewFileURI(t.TempDir()))
	if err != nil {
		t.Fatalf("Failed to create screenshot store: %v", err)
	}
	repo, err := pinned.NewRepository(settings, []byte(testBundled), store)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	window := test.NewWindow(nil)
	defer window.Close()
	home := NewHomeUI(window, settings, repo, NewLocalization())
	defer home.Close()

	home.urlEntry.SetText("https://mozilla.org")
	home.onPinClick()

	tile, ok := repo.Snapshot().Get("https://mozilla.org")
	if !ok {
		t.Fatal("Expected entered URL to be pinned")
	}

	// The card is written in the background
	for i := 0; i < 40; i++ {
		if _, err = repo.TileImage(tile); err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("Expected stored card for the pinned tile, got %v", err)
	}
}
