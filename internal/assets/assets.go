package assets

// Package assets embeds the files that ship with the application.

import (
	"embed"
	"io/fs"
)

// BundledTilesPath is the asset path of the bundled tile list
const BundledTilesPath = "bundled/bundled_tiles.json"

//go:embed bundled/bundled_tiles.json bundled/*.png
var files embed.FS

// BundledTiles returns the JSON array of tiles shipped with the application
func BundledTiles() []byte {
	data, err := files.ReadFile(BundledTilesPath)
	if err != nil {
		// The pattern above guarantees the file is embedded
		panic(err)
	}
	return data
}

// FS returns the embedded assets. Bundled tile image paths resolve against it.
func FS() fs.FS {
	return files
}
