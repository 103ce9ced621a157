package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// TVTheme enlarges text and focus targets for viewing from a couch
type TVTheme struct{}

// NewTVTheme creates a new TV theme
func NewTVTheme() fyne.Theme {
	return &TVTheme{}
}

// Color returns theme colors. The home screen is always dark.
func (t *TVTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 255, G: 113, B: 57, A: 255} // Orange focus ring
	case theme.ColorNameBackground:
		return color.RGBA{R: 20, G: 20, B: 26, A: 255}
	case theme.ColorNameForeground:
		return color.RGBA{R: 240, G: 240, B: 245, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 220, G: 60, B: 60, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *TVTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TVTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes scaled up for distance viewing
func (t *TVTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 8
	case theme.SizeNameInnerPadding:
		return 12
	case theme.SizeNameText:
		return 20
	case theme.SizeNameHeadingText:
		return 28
	case theme.SizeNameSubHeadingText:
		return 22
	case theme.SizeNameCaptionText:
		return 16
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
