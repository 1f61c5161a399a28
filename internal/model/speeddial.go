package model

import "strings"

// Speed dial defaults
const (
	DefaultDialIcon  = "🌐"
	DefaultDialColor = "#16213e"

	// MaxDialIconRunes caps the icon field (an emoji or short glyph)
	MaxDialIconRunes = 2
)

// SpeedDial is a user-defined shortcut shown in the sidebar grid. ID is
// assigned by the store on insert and is empty for a record that has not been
// saved yet.
type SpeedDial struct {
	ID              string
	Title           string
	URL             string
	Icon            string
	BackgroundColor string
}

// IsPersisted reports whether the record already exists in the store.
func (d *SpeedDial) IsPersisted() bool {
	return d.ID != ""
}

// NormalizeIcon applies the default glyph to a blank icon and caps the result
// at MaxDialIconRunes runes.
func NormalizeIcon(icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return DefaultDialIcon
	}
	runes := []rune(icon)
	if len(runes) > MaxDialIconRunes {
		runes = runes[:MaxDialIconRunes]
	}
	return string(runes)
}

// NormalizeColor applies the default background color to a blank value.
func NormalizeColor(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return DefaultDialColor
	}
	return c
}
