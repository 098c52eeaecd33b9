// Package store is the persistent session store of the client. It exposes
// one load/save contract per logical aggregate (user, theme, language,
// first-run marker) on top of the metadata key-value table, so the
// services never touch keys or encodings directly.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/hros-ess/internal/common"
	"github.com/dmitrijs2005/hros-ess/internal/dbx"
)

// UserStore persists the logged-in user. LoadUser returns
// common.ErrorNotFound when nothing is stored and an error wrapping
// common.ErrCorruptedRecord when the stored value cannot be decoded.
type UserStore interface {
	LoadUser(ctx context.Context) (*models.User, error)
	SaveUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context) error
}

// ThemeStore persists the theme preference. LoadTheme returns
// common.ErrorNotFound when nothing is stored and common.ErrInvalidTheme for
// an unknown value.
type ThemeStore interface {
	LoadTheme(ctx context.Context) (models.Theme, error)
	SaveTheme(ctx context.Context, t models.Theme) error
}

// LanguageStore persists the selected language code.
type LanguageStore interface {
	LoadLanguage(ctx context.Context) (string, error)
	SaveLanguage(ctx context.Context, code string) error
}

// OnboardingStore persists the first-run marker.
type OnboardingStore interface {
	OnboardingDone(ctx context.Context) (bool, error)
	MarkOnboardingDone(ctx context.Context) error
}

// Store implements all aggregate stores over an SQLite database.
type Store struct {
	db   *sql.DB
	repo metadata.Repository
}

func New(db *sql.DB) *Store {
	return &Store{db: db, repo: metadata.NewSQLiteRepository(db)}
}

var (
	_ UserStore       = (*Store)(nil)
	_ ThemeStore      = (*Store)(nil)
	_ LanguageStore   = (*Store)(nil)
	_ OnboardingStore = (*Store)(nil)
)

func (s *Store) LoadUser(ctx context.Context) (*models.User, error) {
	return loadUser(ctx, s.repo)
}

func loadUser(ctx context.Context, repo metadata.Repository) (*models.User, error) {
	raw, err := repo.Get(ctx, common.KeyUser)
	if err != nil {
		return nil, err
	}
	u, err := models.ParseUser(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptedRecord, common.KeyUser, err)
	}
	return u, nil
}

func (s *Store) SaveUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return s.DeleteUser(ctx)
	}
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.repo.Set(ctx, common.KeyUser, b)
}

func (s *Store) DeleteUser(ctx context.Context) error {
	return s.repo.Delete(ctx, common.KeyUser)
}

func (s *Store) LoadTheme(ctx context.Context) (models.Theme, error) {
	return loadTheme(ctx, s.repo)
}

func loadTheme(ctx context.Context, repo metadata.Repository) (models.Theme, error) {
	raw, err := repo.Get(ctx, common.KeyTheme)
	if err != nil {
		return "", err
	}
	t, ok := models.ParseTheme(string(raw))
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidTheme, raw)
	}
	return t, nil
}

func (s *Store) SaveTheme(ctx context.Context, t models.Theme) error {
	if _, ok := models.ParseTheme(string(t)); !ok {
		return fmt.Errorf("%w: %q", common.ErrInvalidTheme, t)
	}
	return s.repo.Set(ctx, common.KeyTheme, []byte(t))
}

func (s *Store) LoadLanguage(ctx context.Context) (string, error) {
	raw, err := s.repo.Get(ctx, common.KeyLanguage)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *Store) SaveLanguage(ctx context.Context, code string) error {
	return s.repo.Set(ctx, common.KeyLanguage, []byte(code))
}

func (s *Store) OnboardingDone(ctx context.Context) (bool, error) {
	return onboardingDone(ctx, s.repo)
}

func onboardingDone(ctx context.Context, repo metadata.Repository) (bool, error) {
	raw, err := repo.Get(ctx, common.KeyFirstTime)
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return len(raw) > 0, nil
}

func (s *Store) MarkOnboardingDone(ctx context.Context) error {
	return s.repo.Set(ctx, common.KeyFirstTime, []byte(common.FirstTimeDone))
}

// Snapshot is the state read at startup. Errors of individual aggregates
// are reported next to them so one bad key does not hide the others.
type Snapshot struct {
	OnboardingDone bool
	User           *models.User
	UserErr        error
	Theme          models.Theme
	ThemeErr       error
	Language       string
}

// Snapshot reads every aggregate inside one transaction.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		done, err := onboardingDone(ctx, repo)
		if err != nil {
			return err
		}
		snap.OnboardingDone = done

		snap.User, snap.UserErr = loadUser(ctx, repo)
		snap.Theme, snap.ThemeErr = loadTheme(ctx, repo)

		lang, err := repo.Get(ctx, common.KeyLanguage)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		snap.Language = string(lang)
		return nil
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return snap, nil
}

// Reset removes every stored aggregate atomically and returns the keys
// that were present.
func (s *Store) Reset(ctx context.Context) ([]string, error) {
	var keys []string
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		all, err := repo.List(ctx)
		if err != nil {
			return err
		}
		for k := range all {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		return repo.Clear(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("reset store: %w", err)
	}
	return keys, nil
}
