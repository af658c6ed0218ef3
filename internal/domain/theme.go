package domain

// Theme is the light/dark display preference. It is never persisted.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// ParseTheme maps a config value to a Theme. Anything but "dark" is light.
func ParseTheme(s string) Theme {
	if s == "dark" {
		return ThemeDark
	}
	return ThemeLight
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// String returns the config spelling of the theme.
func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}
