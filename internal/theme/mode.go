package theme

import "fmt"

// Mode is a stored theme preference.
type Mode string

const (
	// ModeLight forces the light theme.
	ModeLight Mode = "light"
	// ModeDark forces the dark theme.
	ModeDark Mode = "dark"
	// ModeSystem follows the live system signal.
	ModeSystem Mode = "system"
)

// Valid reports whether m is one of the three stored preferences.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark || m == ModeSystem
}

// ParseMode converts a stored string into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown theme mode %q (must be light, dark, or system)", s)
	}
	return m, nil
}

// Signal is the live system color-scheme preference. Unlike Mode it is
// never "system" and never persisted; it is re-read at startup and on
// change notifications.
type Signal string

const (
	// SignalLight indicates the system prefers a light scheme.
	SignalLight Signal = "light"
	// SignalDark indicates the system prefers a dark scheme.
	SignalDark Signal = "dark"
)

// Mode converts the signal into the equivalent explicit mode.
func (s Signal) Mode() Mode {
	if s == SignalDark {
		return ModeDark
	}
	return ModeLight
}
