package ui

import (
	"fmt"
	"image"
	"log"
	"net/url"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tv-tiles/internal/channel"
	"github.com/ytget/tv-tiles/internal/config"
	"github.com/ytget/tv-tiles/internal/model"
	"github.com/ytget/tv-tiles/internal/pinned"
)

// HomeUI is the home screen: a pin entry above the pinned tile channel
type HomeUI struct {
	window       fyne.Window
	repo         *pinned.Repository
	settings     *config.Settings
	localization *Localization

	hidden  binding.StringList
	channel *channel.FilteredTiles

	urlEntry    *widget.Entry
	pinBtn      *widget.Button
	tileList    *widget.List
	emptyLabel  *widget.Label
	statusLabel *widget.Label

	imagesMu sync.Mutex
	images   map[string]image.Image
}

// NewHomeUI creates the home screen and sets it as the window content
func NewHomeUI(window fyne.Window, settings *config.Settings, repo *pinned.Repository, localization *Localization) *HomeUI {
	hidden := binding.BindPreferenceStringList(config.KeyChannelBlacklist, settings.Preferences())

	ui := &HomeUI{
		window:       window,
		repo:         repo,
		settings:     settings,
		localization: localization,
		hidden:       hidden,
		channel:      channel.NewFilteredTiles(repo.ChannelTiles(), hidden),
		images:       make(map[string]image.Image),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *HomeUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onPinClick()
	}

	ui.pinBtn = widget.NewButton(IconPin+" "+ui.localization.GetText(KeyPin), ui.onPinClick)
	ui.statusLabel = widget.NewLabel("")

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoTiles))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Hide()
	ui.repo.IsEmpty().AddListener(binding.NewDataListener(ui.onEmptyChanged))

	ui.tileList = widget.NewListWithData(
		ui.channel.Binding(),
		func() fyne.CanvasObject {
			return NewTileRow(ui.localization, ui.onUnpin, ui.onHide, ui.tileImage)
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			value, err := item.(binding.Untyped).Get()
			if err != nil {
				return
			}
			tile, ok := value.(model.ChannelTile)
			if !ok {
				return
			}
			obj.(*TileRow).Bind(tile)
		},
	)

	heading := widget.NewLabelWithStyle(ui.localization.GetText(KeyPinnedChannel), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	topPanel := container.NewVBox(
		container.NewBorder(nil, nil, nil, ui.pinBtn, ui.urlEntry),
		ui.statusLabel,
		heading,
	)

	content := container.NewBorder(
		topPanel,
		nil,
		nil,
		nil,
		container.NewStack(ui.tileList, container.NewCenter(ui.emptyLabel)),
	)
	ui.window.SetContent(content)
	log.Printf("ui: home screen ready")
}

// validateURL validates the entered URL
func (ui *HomeUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}

	if parsedURL.Scheme != SchemeHTTP && parsedURL.Scheme != SchemeHTTPS {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL has no host")
	}

	return nil
}

// onPinClick pins the entered URL as a custom tile
func (ui *HomeUI) onPinClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.showStatus(ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	if err := ui.validateURL(urlText); err != nil {
		ui.showStatus(ui.localization.GetText(KeyInvalidURL) + ": " + err.Error())
		return
	}

	tile, pending, ok := ui.repo.AddPinnedTile(urlText, NewTileCard(urlText))
	if !ok {
		ui.showStatus(ui.localization.GetText(KeyAlreadyPinned))
		return
	}

	log.Printf("ui: pinned id=%s url=%s", tile.ID, tile.URL)
	ui.urlEntry.SetText("")
	ui.showStatus(ui.localization.GetText(KeyTilePinned))

	if pending != nil {
		go func() {
			<-pending.Done()
			if err := pending.Err(); err != nil {
				log.Printf("ui: saving card id=%s: %v", tile.ID, err)
				return
			}
			// The row may have rendered before the card was written
			ui.imagesMu.Lock()
			delete(ui.images, tile.ID)
			ui.imagesMu.Unlock()
			fyne.Do(ui.tileList.Refresh)
		}()
	}
}

// onUnpin removes the tile from the repository
func (ui *HomeUI) onUnpin(tile model.ChannelTile) {
	id, pending, ok := ui.repo.RemovePinnedTile(tile.URL)
	if !ok {
		return
	}

	ui.imagesMu.Lock()
	delete(ui.images, id)
	ui.imagesMu.Unlock()

	ui.showStatus(ui.localization.GetText(KeyTileUnpinned))

	if pending != nil {
		go func() {
			<-pending.Done()
			if err := pending.Err(); err != nil {
				log.Printf("ui: cleanup after unpin id=%s: %v", id, err)
			}
		}()
	}
}

// onHide hides the tile's URL from the channel without unpinning it
func (ui *HomeUI) onHide(tile model.ChannelTile) {
	hidden, err := ui.hidden.Get()
	if err != nil {
		log.Printf("ui: reading hidden urls: %v", err)
		return
	}
	for _, existing := range hidden {
		if existing == tile.URL {
			return
		}
	}
	if err := ui.hidden.Append(tile.URL); err != nil {
		log.Printf("ui: hiding url=%s: %v", tile.URL, err)
	}
}

// onEmptyChanged toggles the placeholder shown for an empty channel
func (ui *HomeUI) onEmptyChanged() {
	empty, err := ui.repo.IsEmpty().Get()
	if err != nil {
		return
	}
	fyne.Do(func() {
		if empty {
			ui.emptyLabel.Show()
		} else {
			ui.emptyLabel.Hide()
		}
	})
}

// tileImage returns the cached image for a row, loading it on first use
func (ui *HomeUI) tileImage(row model.ChannelTile) image.Image {
	ui.imagesMu.Lock()
	img, cached := ui.images[row.ID]
	ui.imagesMu.Unlock()
	if cached {
		return img
	}

	tile, ok := ui.repo.Snapshot().Get(row.URL)
	if !ok {
		return nil
	}
	img, err := ui.repo.TileImage(tile)
	if err != nil {
		log.Printf("ui: no image for id=%s: %v", tile.ID, err)
	}

	ui.imagesMu.Lock()
	ui.images[row.ID] = img
	ui.imagesMu.Unlock()
	return img
}

// showStatus displays a short message under the pin entry
func (ui *HomeUI) showStatus(message string) {
	ui.statusLabel.SetText(message)
}

// Close detaches the home screen from the repository bindings
func (ui *HomeUI) Close() {
	ui.channel.Close()
}
