package domain

// ThemeKey is the only preference key the service persists.
const ThemeKey = "theme"

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Opposite returns the theme a toggle switches to.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
