package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/ytget/tv-tiles/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBlacklist        = "blacklist_pinned_tiles"
	KeyCustomTiles      = "pinned_tiles"
	KeyChannelBlacklist = "channel_blacklist"
	KeyScreenshotDir    = "screenshot_directory"
	KeyAssetDir         = "asset_directory"
)

// Default values
const (
	DefaultCustomTiles      = "[]"
	DefaultScreenshotSubdir = "screenshots"
	DefaultAssetDir         = ""
)

// Settings manages application configuration and the small key-value
// records persisted for the pinned tile repository
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// Preferences exposes the underlying preference store for bindings
func (s *Settings) Preferences() fyne.Preferences {
	return s.app.Preferences()
}

// GetBlacklist returns the IDs of bundled tiles removed by the user
func (s *Settings) GetBlacklist() []string {
	return s.app.Preferences().StringList(KeyBlacklist)
}

// SetBlacklist stores the IDs of removed bundled tiles
func (s *Settings) SetBlacklist(ids []string) {
	s.app.Preferences().SetStringList(KeyBlacklist, ids)
}

// GetCustomTiles returns the JSON array of user pinned tiles
func (s *Settings) GetCustomTiles() string {
	return s.app.Preferences().StringWithFallback(KeyCustomTiles, DefaultCustomTiles)
}

// SetCustomTiles stores the JSON array of user pinned tiles. Data that is not
// valid JSON is rejected and the stored value is left unchanged.
func (s *Settings) SetCustomTiles(data string) error {
	if data == "" {
		data = DefaultCustomTiles
	}
	if !json.Valid([]byte(data)) {
		return fmt.Errorf("custom tiles are not valid JSON")
	}
	s.app.Preferences().SetString(KeyCustomTiles, data)
	return nil
}

// GetChannelBlacklist returns the URLs hidden from channel rows
func (s *Settings) GetChannelBlacklist() []string {
	return s.app.Preferences().StringList(KeyChannelBlacklist)
}

// SetChannelBlacklist stores the URLs hidden from channel rows
func (s *Settings) SetChannelBlacklist(urls []string) {
	s.app.Preferences().SetStringList(KeyChannelBlacklist, urls)
}

// GetScreenshotDirectory returns the configured screenshot directory
func (s *Settings) GetScreenshotDirectory() string {
	dir := s.app.Preferences().String(KeyScreenshotDir)
	if dir == "" {
		dataDir, err := platform.GetDataDir()
		if err != nil {
			dataDir = filepath.Join("/tmp", "tv-tiles")
		}
		defaultDir := filepath.Join(dataDir, DefaultScreenshotSubdir)
		s.SetScreenshotDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetScreenshotDirectory sets the screenshot directory
func (s *Settings) SetScreenshotDirectory(dir string) {
	s.app.Preferences().SetString(KeyScreenshotDir, dir)
}

// GetAssetDirectory returns a directory overriding the embedded bundled tile
// images. Empty means only the embedded images are used.
func (s *Settings) GetAssetDirectory() string {
	return s.app.Preferences().StringWithFallback(KeyAssetDir, DefaultAssetDir)
}

// SetAssetDirectory sets the bundled tile image override directory
func (s *Settings) SetAssetDirectory(dir string) {
	s.app.Preferences().SetString(KeyAssetDir, dir)
}
