package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/client/services"
	"github.com/dmitrijs2005/hros-ess/internal/common"
	"github.com/dmitrijs2005/hros-ess/internal/i18n"
)

func (a *App) Settings(ctx context.Context, _ []string) error {
	a.println("==", a.t("setting.title"), "==")
	a.printf("%s: %s\n", a.t("setting.editTheme"), a.themeLabel(a.theme.Theme()))
	a.printf("%s: %s\n", a.t("setting.selectLanguage"), i18n.Names[a.lang.Language()])
	a.println("Commands: theme, lang [code], reset, logout")
	return nil
}

func (a *App) themeLabel(t models.Theme) string {
	if t == models.ThemeDark {
		return a.t("setting.darkMode")
	}
	return a.t("setting.lightMode")
}

// Theme toggles between light and dark, or sets the theme given.
func (a *App) Theme(ctx context.Context, args []string) error {
	var err error
	if len(args) > 0 {
		t, ok := models.ParseTheme(args[0])
		if !ok {
			a.println("Usage: theme [light|dark]")
			return nil
		}
		err = a.theme.Set(ctx, t)
	} else {
		_, err = a.theme.Toggle(ctx)
	}
	if err != nil {
		return a.fail(err, "error.somethingWrong")
	}
	a.println(a.themeLabel(a.theme.Theme()))
	return nil
}

// Language lists the supported languages, or switches to the code given.
func (a *App) Language(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("==", a.t("setting.selectLanguage"), "==")
		for _, code := range i18n.Supported {
			mark := " "
			if code == a.lang.Language() {
				mark = "*"
			}
			a.printf("%s %s  %s\n", mark, code, i18n.Names[code])
		}
		return nil
	}

	if err := a.lang.Set(ctx, args[0]); err != nil {
		if errors.Is(err, common.ErrUnsupportedLang) {
			a.printf("Unsupported language %q.\n", args[0])
			return err
		}
		return a.fail(err, "error.somethingWrong")
	}
	a.println(i18n.Names[a.lang.Language()])
	return nil
}

// Reset clears every local preference after confirmation and starts over
// with onboarding.
func (a *App) Reset(ctx context.Context, _ []string) error {
	answer, err := getSimpleText(a.reader, "Clear all local data on this device? Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		a.println("Reset cancelled.")
		return nil
	}

	a.chat.Stop()
	route, err := a.reset.Reset(ctx)
	if err != nil {
		return a.fail(err, "error.somethingWrong")
	}
	a.println("Local data cleared.")
	if route == services.RouteOnboarding {
		return a.Onboarding(ctx)
	}
	return nil
}
