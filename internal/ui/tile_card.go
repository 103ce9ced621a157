package ui

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"net/url"
	"strings"
)

// cardPalette holds the background colors custom tile cards pick from
var cardPalette = []color.RGBA{
	{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff},
	{R: 0x43, G: 0xa0, B: 0x47, A: 0xff},
	{R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
	{R: 0x8e, G: 0x24, B: 0xaa, A: 0xff},
	{R: 0xfb, G: 0x8c, B: 0x00, A: 0xff},
	{R: 0x00, G: 0x89, B: 0x7b, A: 0xff},
}

// NewTileCard renders the image stored for a custom tile: a square in a
// color picked from the site's host, with a lighter inset. The same host
// always gets the same card.
func NewTileCard(rawURL string) image.Image {
	base := cardPalette[cardIndex(rawURL)]

	size := int(TileImageSize)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: base}, image.Point{}, draw.Src)

	inset := size / 4
	light := color.RGBA{R: lighten(base.R), G: lighten(base.G), B: lighten(base.B), A: 0xff}
	draw.Draw(img, image.Rect(inset, inset, size-inset, size-inset), &image.Uniform{C: light}, image.Point{}, draw.Src)

	return img
}

func cardIndex(rawURL string) int {
	host := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Host != "" {
		host = strings.TrimPrefix(parsed.Hostname(), "www.")
	}

	h := fnv.New32a()
	h.Write([]byte(host))
	return int(h.Sum32() % uint32(len(cardPalette)))
}

func lighten(v uint8) uint8 {
	return v + (0xff-v)/2
}
