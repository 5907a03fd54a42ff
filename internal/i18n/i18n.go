// Package i18n selects the display side of bilingual records and holds the
// session's active language.
package i18n

import (
	"sync"

	"petro-catalog/internal/model"
)

// Pick returns the Persian value for LanguageFA and the English value for
// LanguageEN. An empty selected value resolves to the fallback string.
func Pick(lang model.Language, fa, en, fallback string) string {
	value := fa
	if lang == model.LanguageEN {
		value = en
	}
	if value == "" {
		return fallback
	}
	return value
}

// PickList is Pick for string slices. An empty selected slice resolves to
// nil rather than a fallback; callers render their own empty states.
func PickList(lang model.Language, fa, en []string) []string {
	value := fa
	if lang == model.LanguageEN {
		value = en
	}
	if len(value) == 0 {
		return nil
	}
	return value
}

// FallbackDescription is the copy shown when a product carries no
// description for the selected language.
func FallbackDescription(lang model.Language) string {
	if lang == model.LanguageEN {
		return "Product description is not available."
	}
	return "توضیحات محصول در دسترس نیست."
}

// State is an explicit language container with a defined lifecycle: created
// at application start, torn down at application end. Subscribers are
// notified synchronously on every change.
type State struct {
	mu   sync.RWMutex
	lang model.Language
	subs []func(model.Language)
}

// NewState creates a language state holding the given initial language.
func NewState(initial model.Language) *State {
	if !initial.Valid() {
		initial = model.LanguageFA
	}
	return &State{lang: initial}
}

// Get returns the active language.
func (s *State) Get() model.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Set switches the active language. Invalid values are rejected.
func (s *State) Set(lang model.Language) error {
	if !lang.Valid() {
		return model.ErrInvalidLanguage
	}

	s.mu.Lock()
	changed := s.lang != lang
	s.lang = lang
	subs := append([]func(model.Language){}, s.subs...)
	s.mu.Unlock()

	if changed {
		for _, fn := range subs {
			fn(lang)
		}
	}
	return nil
}

// Subscribe registers a callback invoked after every language change.
func (s *State) Subscribe(fn func(model.Language)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
