package ui

// Package ui contains the Fyne-based home screen. It renders the pinned tile
// channel from the repository bindings and wires pin, unpin and hide actions
// back to the repository. All UI strings are localized via Localization.
