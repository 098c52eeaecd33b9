package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hros-ess/internal/client/services"
	"github.com/dmitrijs2005/hros-ess/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getWithDefault = GetWithDefault

// Login prompts for credentials, stores the session on success, starts the
// chat poller and opens the dashboard. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, a.t("auth.username"), a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Login(ctx, userName, password); err != nil {
		if errors.Is(err, common.ErrMissingFields) {
			a.println(a.t("auth.required"))
			return err
		}
		return a.fail(err, "auth.loginFailed")
	}

	a.println(a.t("auth.welcome", a.userName()))
	a.startChat(ctx)
	return a.Dashboard(ctx, nil)
}

// Logout stops the chat poller and removes the stored session.
func (a *App) Logout(ctx context.Context) error {
	a.chat.Stop()
	if err := a.authService.Logout(ctx); err != nil {
		return a.fail(err, "auth.logoutFailed")
	}
	a.println("Logged out.")
	return nil
}

// Onboarding shows the intro pages and then asks the user to log in.
func (a *App) Onboarding(ctx context.Context) error {
	a.println(a.t("onboarding.welcome"))
	for page := 1; ; {
		a.println(a.t("onboarding.page", page))
		if _, err := getSimpleText(a.reader, a.t("onboarding.next"), a.out); err != nil {
			return err
		}
		next, done := services.NextPage(page)
		if done {
			break
		}
		page = next
	}

	if err := a.onboarding.Finish(ctx); err != nil {
		a.log.Error(ctx, "failed to store onboarding state", "error", err)
	}
	a.println(a.t("onboarding.start"))
	return a.Login(ctx)
}
