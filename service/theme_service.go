package service

import (
	"fmt"

	"compound-interest/domain"
	"compound-interest/repository"
)

// ThemeService persists the light/dark display preference under the
// single key domain.ThemeKey.
type ThemeService struct {
	store repository.CacheRepository
}

func NewThemeService(store repository.CacheRepository) *ThemeService {
	return &ThemeService{store: store}
}

// Stored returns the persisted theme. Values other than dark or light are
// treated as absent.
func (s *ThemeService) Stored() (domain.Theme, bool) {
	val, ok := s.store.Get(domain.ThemeKey)
	if !ok {
		return "", false
	}
	theme := domain.Theme(val)
	if !theme.Valid() {
		return "", false
	}
	return theme, true
}

// Resolve returns the stored theme, or the system preference when none is
// stored.
func (s *ThemeService) Resolve(systemPrefersDark bool) domain.Theme {
	if theme, ok := s.Stored(); ok {
		return theme
	}
	if systemPrefersDark {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

func (s *ThemeService) Set(theme domain.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("invalid theme %q: must be %q or %q", theme, domain.ThemeDark, domain.ThemeLight)
	}
	if err := s.store.Set(domain.ThemeKey, string(theme)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// Toggle persists and returns the opposite of current.
func (s *ThemeService) Toggle(current domain.Theme) (domain.Theme, error) {
	next := current.Opposite()
	if err := s.Set(next); err != nil {
		return "", err
	}
	return next, nil
}
