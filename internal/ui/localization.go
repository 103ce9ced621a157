package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyPin            = "pin"
	KeyUnpin          = "unpin"
	KeyHide           = "hide"
	KeyEnterURL       = "enter_url"
	KeyPinnedChannel  = "pinned_channel"
	KeyNoTiles        = "no_tiles"
	KeyInvalidURL     = "invalid_url"
	KeyPleaseEnterURL = "please_enter_url"
	KeyAlreadyPinned  = "already_pinned"
	KeyTilePinned     = "tile_pinned"
	KeyTileUnpinned   = "tile_unpinned"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if text, found := l.texts["en"][key]; found {
		return text
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "TV Tiles",
		KeyPin:            "Pin",
		KeyUnpin:          "Unpin",
		KeyHide:           "Hide",
		KeyEnterURL:       "Enter a site to pin (https://...)",
		KeyPinnedChannel:  "Pinned",
		KeyNoTiles:        "Nothing pinned yet",
		KeyInvalidURL:     "Invalid URL",
		KeyPleaseEnterURL: "Please enter a URL",
		KeyAlreadyPinned:  "Already pinned",
		KeyTilePinned:     "Pinned to home screen",
		KeyTileUnpinned:   "Removed from home screen",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "ТВ Плитки",
		KeyPin:            "Закрепить",
		KeyUnpin:          "Открепить",
		KeyHide:           "Скрыть",
		KeyEnterURL:       "Введите адрес сайта (https://...)",
		KeyPinnedChannel:  "Закреплённые",
		KeyNoTiles:        "Пока ничего не закреплено",
		KeyInvalidURL:     "Неверный URL",
		KeyPleaseEnterURL: "Пожалуйста, введите URL",
		KeyAlreadyPinned:  "Уже закреплено",
		KeyTilePinned:     "Закреплено на главном экране",
		KeyTileUnpinned:   "Убрано с главного экрана",
	}
}
