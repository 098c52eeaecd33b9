package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hros-ess/internal/client/payslip"
	"github.com/dmitrijs2005/hros-ess/internal/client/services"
)

// Payroll shows salary figures and the pay periods matching the month
// given as arguments.
func (a *App) Payroll(ctx context.Context, args []string) error {
	st, err := a.payroll.Load(ctx)
	if err != nil {
		return a.fail(err, "error.loadFailed")
	}
	pr := st.Data

	a.println("==", a.t("payroll.title"), "==")
	a.printf("%s #%s\n", pr.EmployeeName, pr.EmpNo)
	a.printf("%s: %s %s\n", a.t("payroll.monthly"), pr.Currency, payslip.FormatMoney(pr.Monthly))
	a.printf("%s: %s %s\n", a.t("payroll.annual"), pr.Currency, payslip.FormatMoney(pr.Annual))

	a.println("--", a.t("payroll.months"), "--")
	query := strings.Join(args, " ")
	shown := services.FilterPeriods(pr.Periods, query)
	if len(shown) == 0 {
		a.println(a.t("common.noData"))
	}
	for _, p := range shown {
		for i, q := range pr.Periods {
			if q == p {
				a.printf("%d. %s\n", i+1, p)
			}
		}
	}
	return nil
}

// Payslip prints the breakdown of pay period n (as numbered by "payroll")
// and saves it as PDF.
func (a *App) Payslip(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: payslip <n>")
		return nil
	}

	pr := a.payroll.State()
	if !pr.Loaded() || pr.Data.EmpNo != a.session.EmpNo() {
		var err error
		if pr, err = a.payroll.Load(ctx); err != nil {
			return a.fail(err, "error.loadFailed")
		}
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(pr.Data.Periods) {
		a.printf("Choose a period between 1 and %d.\n", len(pr.Data.Periods))
		return nil
	}
	period := pr.Data.Periods[n-1]

	a.println("==", a.t("payroll.payslip"), period, "==")
	for _, l := range pr.Data.Breakdown() {
		a.printf("%-18s %s %s\n", l.Label, pr.Data.Currency, payslip.FormatMoney(l.Amount))
	}

	path, err := a.payrollService.ExportPayslip(ctx, pr.Data, period)
	if err != nil {
		return a.fail(err, "error.somethingWrong")
	}
	a.println(a.t("payroll.saved", path))
	return nil
}
