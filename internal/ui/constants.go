package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPin     = "📌"
	IconUnpin   = "🗑️"
	IconHide    = "🙈"
	IconBundled = "★"
	IconCustom  = "☆"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	TileImageSize float32 = 96
	RowMinHeight  float32 = 104
)

// URL schemes accepted by the pin entry
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)
