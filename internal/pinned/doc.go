package pinned

// Package pinned implements the pinned tile repository: it merges the bundled
// tile asset with user pinned tiles, persists both stores through preferences
// and publishes immutable snapshots through Fyne data bindings.
