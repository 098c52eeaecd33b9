package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/hros-ess/internal/client/services"
)

// Leave shows balances and the leave history, filtered by the leave type
// given as arguments.
func (a *App) Leave(ctx context.Context, args []string) error {
	st, err := a.leave.Load(ctx)
	if err != nil {
		return a.fail(err, "error.loadFailed")
	}

	a.println("==", a.t("leave.balances"), "==")
	for _, b := range st.Data.Balances {
		a.printf("%-28s %s\n", b.Type, b.Days)
	}

	a.println("==", a.t("leave.history"), "==")
	records := services.FilterLeaves(st.Data.History, strings.Join(args, " "))
	if len(records) == 0 {
		a.println(a.t("leave.noRecords"))
		return nil
	}
	for _, r := range records {
		a.printf("%-28s %s .. %s  %s\n", r.LeaveType, r.StartDate, r.EndDate, r.Status)
	}
	return nil
}
