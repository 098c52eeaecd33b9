package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/hros-ess/internal/client/store"
	"github.com/dmitrijs2005/hros-ess/internal/common"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

type Route string

const (
	RouteRoot       Route = "/"
	RouteLogin      Route = "/login"
	RouteOnboarding Route = "/onboarding/page1"
	RouteDashboard  Route = "/dashboard"
)

// StartupResult is where the app opens. Manual is set when the stored
// session could not be read and the user has to log in again by hand.
type StartupResult struct {
	Route  Route
	Manual bool
}

type Snapshotter interface {
	Snapshot(ctx context.Context) (store.Snapshot, error)
}

// Device carries the preferences reported by the environment.
type Device struct {
	Theme  string
	Locale string
}

type StartupService struct {
	store   Snapshotter
	session *SessionService
	theme   *ThemeService
	lang    *LanguageService
	device  Device
	log     logging.Logger
}

func NewStartupService(st Snapshotter, session *SessionService, theme *ThemeService, lang *LanguageService, device Device, log logging.Logger) *StartupService {
	return &StartupService{store: st, session: session, theme: theme, lang: lang, device: device, log: log}
}

// Start restores theme, language and session from one store snapshot and
// decides the first route.
func (s *StartupService) Start(ctx context.Context) StartupResult {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read local state", "error", err)
		s.theme.initFrom(ctx, "", common.ErrorNotFound, s.device.Theme)
		s.lang.initFrom("", s.device.Locale)
		return StartupResult{Route: RouteLogin, Manual: true}
	}

	s.theme.initFrom(ctx, snap.Theme, snap.ThemeErr, s.device.Theme)
	s.lang.initFrom(snap.Language, s.device.Locale)

	if !snap.OnboardingDone {
		return StartupResult{Route: RouteOnboarding}
	}

	switch {
	case errors.Is(snap.UserErr, common.ErrorNotFound):
		return StartupResult{Route: RouteLogin}
	case snap.UserErr != nil:
		s.log.Warn(ctx, "stored user unreadable", "error", snap.UserErr)
		return StartupResult{Route: RouteLogin, Manual: true}
	}

	if snap.User.EmpNo() == "" {
		return StartupResult{Route: RouteLogin}
	}
	s.session.restore(snap.User)
	return StartupResult{Route: RouteDashboard}
}

// IsPublic reports whether path can be shown without a session.
func IsPublic(path string) bool {
	switch Route(path) {
	case RouteRoot, RouteLogin:
		return true
	}
	return path == "/onboarding" || strings.HasPrefix(path, "/onboarding/")
}

// Guard returns the route to show for path: path itself when allowed,
// otherwise the login route.
func Guard(path string, loggedIn bool) Route {
	if loggedIn || IsPublic(path) {
		return Route(path)
	}
	return RouteLogin
}
