package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SidebarTheme defines the dark navy theme used by the sidebar
type SidebarTheme struct{}

// NewSidebarTheme creates a new sidebar theme
func NewSidebarTheme() fyne.Theme {
	return &SidebarTheme{}
}

// Color returns theme colors
func (t *SidebarTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 26, G: 26, B: 46, A: 255} // Dark navy
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 22, G: 33, B: 62, A: 255} // Input fields
	case theme.ColorNamePrimary:
		return color.RGBA{R: 15, G: 52, B: 96, A: 255} // Accent blue
	case theme.ColorNameButton:
		return color.RGBA{R: 15, G: 52, B: 96, A: 255}
	case theme.ColorNameForeground:
		return color.RGBA{R: 234, G: 234, B: 234, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 233, G: 69, B: 96, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *SidebarTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SidebarTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments for the narrow sidebar
func (t *SidebarTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
