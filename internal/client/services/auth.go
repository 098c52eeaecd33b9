package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/common"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the backend and store the returned user
//     record exactly as received.
//   - Logout: drop the stored user.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session *SessionService
	log     logging.Logger
}

func NewAuthService(c client.Client, session *SessionService, log logging.Logger) AuthService {
	return &authService{client: c, session: session, log: log}
}

// Login rejects blank credentials without calling the backend.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return nil, fmt.Errorf("%w: %w: username and password", common.ErrorValidation, common.ErrMissingFields)
	}

	u, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		a.log.Warn(ctx, "login failed", "username", username, "error", err)
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.session.SetUser(ctx, u); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "logged in", "emp_no", u.EmpNo())
	return u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}
