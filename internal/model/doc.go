package model

// Package model defines domain data structures used across the app: pinned
// tiles, the ordered tile set published to the UI, and channel rows. Values
// are treated as immutable once handed to subscribers.
