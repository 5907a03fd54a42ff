package prefs

import (
	"sync"

	"github.com/rs/zerolog"
)

const (
	darkModeKey = "darkMode"

	// Stored flag values.
	darkModeEnabled  = "enabled"
	darkModeDisabled = "disabled"
)

// Theme tracks whether dark mode is active and persists the flag on toggle.
// When no flag has been stored yet, the system-level preference decides the
// initial state.
type Theme struct {
	mu     sync.Mutex
	store  Store
	dark   bool
	logger zerolog.Logger
}

// NewTheme creates the theme state. systemDark is the system-level
// light/dark preference signal consulted when the store holds no flag.
func NewTheme(store Store, systemDark bool, logger zerolog.Logger) (*Theme, error) {
	t := &Theme{
		store:  store,
		logger: logger.With().Str("component", "theme").Logger(),
	}

	saved, err := store.Get(darkModeKey)
	if err != nil {
		return nil, err
	}

	t.dark = saved == darkModeEnabled || (saved == "" && systemDark)

	t.logger.Debug().
		Str("saved", saved).
		Bool("system_dark", systemDark).
		Bool("dark", t.dark).
		Msg("theme initialised")

	return t, nil
}

// Dark reports whether dark mode is active.
func (t *Theme) Dark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

// Toggle flips the theme and persists the new flag as "enabled" or
// "disabled". Returns the new dark state.
func (t *Theme) Toggle() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	dark := !t.dark
	flag := darkModeDisabled
	if dark {
		flag = darkModeEnabled
	}

	if err := t.store.Set(darkModeKey, flag); err != nil {
		t.logger.Error().Err(err).Msg("failed to persist theme preference")
		return t.dark, err
	}

	t.dark = dark
	return dark, nil
}
