package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/hros-ess/internal/client/services"
)

func (a *App) Handbook(ctx context.Context, args []string) error {
	st, err := a.handbook.Load(ctx)
	if err != nil {
		return a.fail(err, "error.loadFailed")
	}

	a.println("==", a.t("handbook.title"), "==")
	sections := services.SearchHandbook(st.Data, strings.Join(args, " "))
	if len(sections) == 0 {
		a.println(a.t("handbook.noResults"))
		return nil
	}
	for _, s := range sections {
		a.println("#", s.MainHeading)
		for _, sub := range s.Subsections {
			a.println("  ##", sub.SubHeading)
			a.println("    " + sub.Content)
		}
	}
	return nil
}
