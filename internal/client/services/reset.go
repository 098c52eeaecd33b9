package services

import (
	"context"

	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/common"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

type Resetter interface {
	Reset(ctx context.Context) ([]string, error)
}

// ResetService wipes all local state: the session, theme and language
// preferences and the first-run marker. Unlike logout, the next start
// goes through onboarding again.
type ResetService struct {
	store   Resetter
	session *SessionService
	theme   *ThemeService
	lang    *LanguageService
	device  Device
	log     logging.Logger
}

func NewResetService(st Resetter, session *SessionService, theme *ThemeService, lang *LanguageService, device Device, log logging.Logger) *ResetService {
	return &ResetService{store: st, session: session, theme: theme, lang: lang, device: device, log: log}
}

// Reset clears the store and then drops the in-memory state back to the
// device defaults. On a store failure memory is left as it was.
func (r *ResetService) Reset(ctx context.Context) (Route, error) {
	keys, err := r.store.Reset(ctx)
	if err != nil {
		r.log.Error(ctx, "failed to reset local state", "error", err)
		return "", err
	}

	r.session.restore(nil)
	r.theme.initFrom(ctx, models.Theme(""), common.ErrorNotFound, r.device.Theme)
	r.lang.initFrom("", r.device.Locale)

	r.log.Info(ctx, "local state reset", "keys", keys)
	return RouteOnboarding, nil
}
