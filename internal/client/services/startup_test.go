package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/client/store"
	"github.com/dmitrijs2005/hros-ess/internal/common"
)

func newStartup(st Snapshotter, session *SessionService, device Device) (*StartupService, *ThemeService, *LanguageService) {
	theme := NewThemeService(&brokenStore{}, nop())
	lang := NewLanguageService(&brokenStore{}, nop())
	return NewStartupService(st, session, theme, lang, device, nop()), theme, lang
}

func TestStartup_FirstRunGoesToOnboarding(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()
	require.NoError(t, st.SaveUser(ctx, jane()))

	s, _, _ := newStartup(st, NewSessionService(st, nop()), Device{})
	assert.Equal(t, StartupResult{Route: RouteOnboarding}, s.Start(ctx))
}

func TestStartup_StoredUserGoesToDashboard(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()
	require.NoError(t, st.MarkOnboardingDone(ctx))
	require.NoError(t, st.SaveUser(ctx, jane()))
	require.NoError(t, st.SaveTheme(ctx, models.ThemeDark))
	require.NoError(t, st.SaveLanguage(ctx, "si"))

	session := NewSessionService(st, nop())
	s, theme, lang := newStartup(st, session, Device{Theme: "light", Locale: "ta_IN"})

	assert.Equal(t, StartupResult{Route: RouteDashboard}, s.Start(ctx))
	assert.Equal(t, "E1001", session.EmpNo())
	assert.Equal(t, models.ThemeDark, theme.Theme())
	assert.Equal(t, "si", lang.Language())
}

func TestStartup_NoUserGoesToLogin(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()
	require.NoError(t, st.MarkOnboardingDone(ctx))

	session := NewSessionService(st, nop())
	s, theme, lang := newStartup(st, session, Device{Theme: "dark", Locale: "bn_BD.UTF-8"})

	assert.Equal(t, StartupResult{Route: RouteLogin}, s.Start(ctx))
	assert.False(t, session.LoggedIn())
	assert.Equal(t, models.ThemeDark, theme.Theme())
	assert.Equal(t, "bn", lang.Language())
}

func TestStartup_UserWithoutEmpNoGoesToLogin(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()
	require.NoError(t, st.MarkOnboardingDone(ctx))
	require.NoError(t, st.SaveUser(ctx, models.NewUser(map[string]any{"name": "nobody"})))

	s, _, _ := newStartup(st, NewSessionService(st, nop()), Device{})
	assert.Equal(t, StartupResult{Route: RouteLogin}, s.Start(ctx))
}

type snapshotFunc func(ctx context.Context) (store.Snapshot, error)

func (f snapshotFunc) Snapshot(ctx context.Context) (store.Snapshot, error) { return f(ctx) }

func TestStartup_CorruptedUserIsManualLogin(t *testing.T) {
	snap := snapshotFunc(func(context.Context) (store.Snapshot, error) {
		return store.Snapshot{
			OnboardingDone: true,
			UserErr:        common.ErrCorruptedRecord,
			ThemeErr:       common.ErrorNotFound,
		}, nil
	})
	session := NewSessionService(setupStore(t), nop())
	s, _, _ := newStartup(snap, session, Device{})

	assert.Equal(t, StartupResult{Route: RouteLogin, Manual: true}, s.Start(context.Background()))
	assert.False(t, session.LoggedIn())
}

func TestStartup_SnapshotFailureIsManualLogin(t *testing.T) {
	snap := snapshotFunc(func(context.Context) (store.Snapshot, error) {
		return store.Snapshot{}, errors.New("io error")
	})
	s, theme, _ := newStartup(snap, NewSessionService(setupStore(t), nop()), Device{Theme: "dark"})

	assert.Equal(t, StartupResult{Route: RouteLogin, Manual: true}, s.Start(context.Background()))
	assert.Equal(t, models.ThemeDark, theme.Theme())
}

func TestGuard(t *testing.T) {
	tests := []struct {
		path     string
		loggedIn bool
		want     Route
	}{
		{"/", false, RouteRoot},
		{"/login", false, RouteLogin},
		{"/onboarding/page3", false, "/onboarding/page3"},
		{"/dashboard", false, RouteLogin},
		{"/chat", false, RouteLogin},
		{"/onboardingx", false, RouteLogin},
		{"/dashboard", true, RouteDashboard},
		{"/chat", true, "/chat"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Guard(tt.path, tt.loggedIn), "%s loggedIn=%v", tt.path, tt.loggedIn)
	}
}

func TestOnboarding(t *testing.T) {
	next, done := NextPage(1)
	assert.Equal(t, 6, next)
	assert.False(t, done)

	next, done = NextPage(3)
	assert.Equal(t, 4, next)
	assert.False(t, done)

	_, done = NextPage(6)
	assert.True(t, done)

	st := setupStore(t)
	ctx := context.Background()
	require.NoError(t, NewOnboardingService(st).Finish(ctx))
	ok, err := st.OnboardingDone(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}
