package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/hros-ess/internal/client/store"
	"github.com/dmitrijs2005/hros-ess/internal/common"
	"github.com/dmitrijs2005/hros-ess/internal/i18n"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

type LanguageService struct {
	mu    sync.RWMutex
	store store.LanguageStore
	lang  string
	log   logging.Logger
}

func NewLanguageService(st store.LanguageStore, log logging.Logger) *LanguageService {
	return &LanguageService{store: st, lang: i18n.Fallback, log: log}
}

// Init picks the stored language, then the device locale, then English.
func (l *LanguageService) Init(ctx context.Context, deviceLocale string) string {
	stored, err := l.store.LoadLanguage(ctx)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		l.log.Warn(ctx, "stored language ignored", "error", err)
	}
	return l.initFrom(stored, deviceLocale)
}

func (l *LanguageService) initFrom(stored, deviceLocale string) string {
	lang := i18n.Resolve(stored, deviceLocale)
	l.mu.Lock()
	l.lang = lang
	l.mu.Unlock()
	return lang
}

func (l *LanguageService) Language() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// Set persists code and switches to it.
func (l *LanguageService) Set(ctx context.Context, code string) error {
	if !i18n.IsSupported(code) {
		return fmt.Errorf("%w: %q", common.ErrUnsupportedLang, code)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.store.SaveLanguage(ctx, code); err != nil {
		l.log.Error(ctx, "failed to persist language", "lang", code, "error", err)
		return fmt.Errorf("persist language: %w", err)
	}
	l.lang = code
	return nil
}

// T translates key into the current language.
func (l *LanguageService) T(key string, args ...any) string {
	return i18n.T(l.Language(), key, args...)
}
