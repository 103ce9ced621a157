package model

// TileSource tells where a pinned tile comes from
type TileSource string

const (
	// TileSourceBundled marks tiles shipped with the application
	TileSourceBundled TileSource = "bundled"

	// TileSourceCustom marks tiles the user pinned
	TileSourceCustom TileSource = "custom"
)

// String returns the string representation of TileSource
func (ts TileSource) String() string {
	return string(ts)
}

// IsValid returns true for the known sources
func (ts TileSource) IsValid() bool {
	return ts == TileSourceBundled || ts == TileSourceCustom
}
