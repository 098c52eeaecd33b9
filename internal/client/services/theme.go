package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/client/store"
	"github.com/dmitrijs2005/hros-ess/internal/common"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

type ThemeService struct {
	mu    sync.RWMutex
	store store.ThemeStore
	theme models.Theme
	log   logging.Logger
}

func NewThemeService(st store.ThemeStore, log logging.Logger) *ThemeService {
	return &ThemeService{store: st, theme: models.ThemeLight, log: log}
}

// Init picks the stored theme, then the device preference, then light.
func (t *ThemeService) Init(ctx context.Context, device string) models.Theme {
	stored, err := t.store.LoadTheme(ctx)
	return t.initFrom(ctx, stored, err, device)
}

func (t *ThemeService) initFrom(ctx context.Context, stored models.Theme, storedErr error, device string) models.Theme {
	theme := models.ThemeLight
	if storedErr != nil && !errors.Is(storedErr, common.ErrorNotFound) {
		t.log.Warn(ctx, "stored theme ignored", "error", storedErr)
	}
	if storedErr == nil {
		theme = stored
	} else if d, ok := models.ParseTheme(device); ok {
		theme = d
	}

	t.mu.Lock()
	t.theme = theme
	t.mu.Unlock()
	return theme
}

func (t *ThemeService) Theme() models.Theme {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.theme
}

// Set persists theme and then applies it.
func (t *ThemeService) Set(ctx context.Context, theme models.Theme) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.setLocked(ctx, theme)
}

func (t *ThemeService) setLocked(ctx context.Context, theme models.Theme) error {
	if err := t.store.SaveTheme(ctx, theme); err != nil {
		t.log.Error(ctx, "failed to persist theme", "theme", theme, "error", err)
		return fmt.Errorf("persist theme: %w", err)
	}
	t.theme = theme
	return nil
}

// Toggle switches between light and dark. When the new value cannot be
// stored the current theme stays.
func (t *ThemeService) Toggle(ctx context.Context) (models.Theme, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.setLocked(ctx, t.theme.Toggled()); err != nil {
		return t.theme, err
	}
	return t.theme, nil
}
