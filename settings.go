package finman

import "fmt"

// Settings holds the installation-wide presentation preferences. They belong
// to the installation, not to any account, and are fetched once per session
// and threaded explicitly through the presentation layer.
type Settings struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// DefaultSettings are used whenever the settings document is absent or does
// not parse.
func DefaultSettings() Settings {
	return Settings{Theme: "Light", Language: "EN"}
}

// Themes is the fixed palette set, in menu order.
var Themes = []string{"Light", "Dark", "Blue", "Green", "Purple"}

// Languages is the set of display languages.
var Languages = []string{"EN", "RU"}

// ParseTheme validates a theme name. The settings store itself persists
// whatever it is given; constraining input is the caller's job, and this
// helper is how it does it.
func ParseTheme(s string) (string, error) {
	for _, t := range Themes {
		if t == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q: %w", s, ErrValidation)
}

// ParseLanguage validates a language code.
func ParseLanguage(s string) (string, error) {
	for _, l := range Languages {
		if l == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q: %w", s, ErrValidation)
}
