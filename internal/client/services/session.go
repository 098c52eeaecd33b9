// Package services contains the application services of the ESS client.
// Each service combines the remote client with the local store and keeps
// the in-memory state a view renders from.
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

// SessionService holds the logged-in user. Writes go to the store first
// and only then to memory, so after a failed write the in-memory user is
// the one still on disk.
type SessionService struct {
	mu    sync.RWMutex
	store store.UserStore
	user  *models.User
	log   logging.Logger
}

func NewSessionService(st store.UserStore, log logging.Logger) *SessionService {
	return &SessionService{store: st, log: log}
}

// Load reads the stored user. A missing or unreadable record leaves the
// session empty; it is logged, never returned.
func (s *SessionService) Load(ctx context.Context) *models.User {
	u, err := s.store.LoadUser(ctx)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		u = nil
	case err != nil:
		s.log.Warn(ctx, "stored user ignored", "error", err)
		u = nil
	}
	s.restore(u)
	return u
}

func (s *SessionService) restore(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *SessionService) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// EmpNo is the employee number of the session, or "" when logged out.
func (s *SessionService) EmpNo() string {
	return s.User().EmpNo()
}

func (s *SessionService) LoggedIn() bool {
	return s.EmpNo() != ""
}

// RequireEmpNo returns the employee number or common.ErrNotLoggedIn.
func (s *SessionService) RequireEmpNo() (string, error) {
	empNo := s.EmpNo()
	if empNo == "" {
		return "", common.ErrNotLoggedIn
	}
	return empNo, nil
}

// SetUser persists u and then makes it the session user. A nil u removes
// the stored record.
func (s *SessionService) SetUser(ctx context.Context, u *models.User) error {
	var err error
	if u == nil {
		err = s.store.DeleteUser(ctx)
	} else {
		err = s.store.SaveUser(ctx, u)
	}
	if err != nil {
		s.log.Error(ctx, "failed to persist user", "error", err)
		return fmt.Errorf("persist user: %w", err)
	}
	s.restore(u)
	return nil
}

// Logout clears the session. It succeeds when nobody was logged in.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.SetUser(ctx, nil)
}
