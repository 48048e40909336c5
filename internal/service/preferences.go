package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pageza/cookify/backend/internal/storage"
)

// ThemeKey holds the theme preference, independent of the recipes
const ThemeKey = "theme"

// Themes
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ErrUnknownTheme is returned when setting a theme other than light or dark
var ErrUnknownTheme = errors.New("theme must be light or dark")

// PreferenceStore keeps the user's theme choice
type PreferenceStore struct {
	kv storage.KeyValue
}

// NewPreferenceStore creates a preference store over kv
func NewPreferenceStore(kv storage.KeyValue) *PreferenceStore {
	return &PreferenceStore{kv: kv}
}

// Theme returns the stored theme, defaulting to light when unset or unknown
func (p *PreferenceStore) Theme(ctx context.Context) (string, error) {
	v, ok, err := p.kv.Get(ctx, ThemeKey)
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	if !ok || (v != ThemeLight && v != ThemeDark) {
		return ThemeLight, nil
	}
	return v, nil
}

// SetTheme stores theme
func (p *PreferenceStore) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrUnknownTheme
	}
	if err := p.kv.Set(ctx, ThemeKey, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
