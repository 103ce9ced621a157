package pinned

import (
	"image"
)

// Store defines the key-value records the repository persists.
// config.Settings satisfies it.
type Store interface {
	GetBlacklist() []string
	SetBlacklist(ids []string)
	GetCustomTiles() string
	SetCustomTiles(data string) error

	// GetAssetDirectory returns the directory bundled tile images resolve against
	GetAssetDirectory() string
}

// ScreenshotStore defines identifier-keyed screenshot storage.
type ScreenshotStore interface {
	Save(id string, img image.Image) error
	Load(id string) (image.Image, error)
	Remove(id string) error
}
