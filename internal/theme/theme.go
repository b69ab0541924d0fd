// Package theme defines the two-valued appearance domain and the
// per-consumer vocabulary mappings shared by all adapters.
package theme

import "fmt"

// Theme represents the system appearance.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// UnknownThemeError reports a raw appearance value outside the known domain.
// It is recoverable: callers log the value and drop the event.
type UnknownThemeError struct {
	Raw string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme value: %q", e.Raw)
}

// Decode maps a raw appearance preference value to a Theme.
// The preference store reports "Light" or "Dark"; anything else
// yields an UnknownThemeError.
func Decode(raw string) (Theme, error) {
	switch raw {
	case "Light":
		return Light, nil
	case "Dark":
		return Dark, nil
	default:
		return "", &UnknownThemeError{Raw: raw}
	}
}

// Flavour returns the Catppuccin flavour name for a theme.
func (t Theme) Flavour() string {
	if t == Dark {
		return "mocha"
	}
	return "latte"
}

// Background returns the editor background value for a theme.
func (t Theme) Background() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// KittyTheme returns the kitty theme name for a theme.
func (t Theme) KittyTheme() string {
	if t == Dark {
		return "Catppuccin-Mocha"
	}
	return "Catppuccin-Latte"
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse converts a user-supplied theme name ("light"/"dark") to a Theme.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("invalid theme: %s (must be light or dark)", s)
	}
}
