package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tv-tiles/internal/model"
)

// TileRow renders one channel tile with its unpin and hide actions
type TileRow struct {
	widget.BaseWidget

	tile model.ChannelTile

	image     *canvas.Image
	title     *widget.Label
	subtitle  *widget.Label
	unpinBtn  *widget.Button
	hideBtn   *widget.Button
	onUnpin   func(model.ChannelTile)
	onHide    func(model.ChannelTile)
	loadImage func(model.ChannelTile) image.Image
}

// NewTileRow creates an empty row; Bind fills it
func NewTileRow(l *Localization, onUnpin, onHide func(model.ChannelTile), loadImage func(model.ChannelTile) image.Image) *TileRow {
	row := &TileRow{
		image:     canvas.NewImageFromImage(nil),
		title:     widget.NewLabel(""),
		subtitle:  widget.NewLabel(""),
		onUnpin:   onUnpin,
		onHide:    onHide,
		loadImage: loadImage,
	}
	row.image.FillMode = canvas.ImageFillContain
	row.image.SetMinSize(fyne.NewSize(TileImageSize, TileImageSize))
	row.title.TextStyle = fyne.TextStyle{Bold: true}
	row.title.Truncation = fyne.TextTruncateEllipsis
	row.subtitle.Truncation = fyne.TextTruncateEllipsis

	row.unpinBtn = widget.NewButton(IconUnpin+" "+l.GetText(KeyUnpin), func() {
		if row.onUnpin != nil {
			row.onUnpin(row.tile)
		}
	})
	row.hideBtn = widget.NewButton(IconHide+" "+l.GetText(KeyHide), func() {
		if row.onHide != nil {
			row.onHide(row.tile)
		}
	})

	row.ExtendBaseWidget(row)
	return row
}

// Bind shows tile in the row
func (r *TileRow) Bind(tile model.ChannelTile) {
	r.tile = tile

	icon := IconBundled
	if tile.TileSource == model.TileSourceCustom {
		icon = IconCustom
	}
	r.title.SetText(icon + " " + tile.Title)

	subtitle := tile.URL
	if tile.Subtitle != "" {
		subtitle = tile.Subtitle + MiddleDotSeparator + tile.URL
	}
	r.subtitle.SetText(subtitle)

	if r.loadImage != nil {
		r.image.Image = r.loadImage(tile)
	}
	r.image.Refresh()
}

// Tile returns the tile currently shown
func (r *TileRow) Tile() model.ChannelTile {
	return r.tile
}

// CreateRenderer implements fyne.Widget
func (r *TileRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(r.title, r.subtitle)
	actions := container.NewHBox(r.hideBtn, r.unpinBtn)
	content := container.NewBorder(nil, nil, r.image, actions, text)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows tall enough for the tile image
func (r *TileRow) MinSize() fyne.Size {
	size := r.BaseWidget.MinSize()
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}
