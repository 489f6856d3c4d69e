// ABOUTME: Per-user display settings with the theme and accent palettes.
// ABOUTME: One row per user, replaced whole on every change.
package models

// Theme selects the base color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Accent selects the highlight color from a fixed palette.
type Accent string

const (
	AccentOriginal Accent = "original"
	AccentDarkBlue Accent = "darkblue"
	AccentPink     Accent = "pink"
	AccentBloodRed Accent = "bloodred"
	AccentLime     Accent = "lime"
)

// AccentColors maps accents to their hex values for rendering.
var AccentColors = map[Accent]string{
	AccentOriginal: "#2EF0BA",
	AccentDarkBlue: "#0B3B8C",
	AccentPink:     "#FFB6C1",
	AccentBloodRed: "#B20000",
	AccentLime:     "#A4DE02",
}

// AllAccents lists the palette in display order.
var AllAccents = []Accent{
	AccentOriginal, AccentDarkBlue, AccentPink, AccentBloodRed, AccentLime,
}

// IsValidTheme checks if a string is a known theme.
func IsValidTheme(s string) bool {
	return s == string(ThemeDark) || s == string(ThemeLight)
}

// IsValidAccent checks if a string is a palette accent.
func IsValidAccent(s string) bool {
	_, ok := AccentColors[Accent(s)]
	return ok
}

// Settings is the single-row-per-user preferences record.
type Settings struct {
	UserID        string
	Theme         Theme
	Accent        Accent
	Notifications bool
}

// DefaultSettings returns the row written on first settings read.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:        userID,
		Theme:         ThemeDark,
		Accent:        AccentOriginal,
		Notifications: true,
	}
}
