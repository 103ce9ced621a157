package screenshot

// Package screenshot stores page screenshots of user pinned tiles, one PNG
// per tile id, under a Fyne storage URI.
