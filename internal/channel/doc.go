package channel

// Package channel filters channel rows against a URL blacklist, either once
// on plain slices or continuously on Fyne data bindings.
