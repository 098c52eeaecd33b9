package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/payslip"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

const (
	Currency      = "MVR"
	PayrollMonths = 6
)

type PayPeriod struct {
	Year  int
	Month time.Month
}

func (p PayPeriod) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

type Payroll struct {
	EmpNo        string
	EmployeeName string
	Monthly      decimal.Decimal
	Annual       decimal.Decimal
	Currency     string
	Periods      []PayPeriod
}

type PayrollService struct {
	client      client.Client
	session     *SessionService
	downloadDir string
	log         logging.Logger
	now         func() time.Time
}

func NewPayrollService(c client.Client, session *SessionService, downloadDir string, log logging.Logger) *PayrollService {
	return &PayrollService{client: c, session: session, downloadDir: downloadDir, log: log, now: time.Now}
}

// Load derives the salary figures from the employee's basic salary. A
// missing or unreadable salary shows as zero.
func (p *PayrollService) Load(ctx context.Context) (Payroll, error) {
	empNo, err := p.session.RequireEmpNo()
	if err != nil {
		return Payroll{}, err
	}
	emp, err := p.client.Employee(ctx, empNo)
	if err != nil {
		return Payroll{}, err
	}

	name := emp.Name.String()
	if name == "" {
		name = "Employee"
	}

	monthly := decimal.Zero
	if raw := strings.TrimSpace(emp.BasicSalary.String()); raw != "" {
		d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			p.log.Warn(ctx, "unreadable basic salary", "emp_no", empNo, "value", raw)
		} else {
			monthly = d.Round(2)
		}
	}

	return Payroll{
		EmpNo:        empNo,
		EmployeeName: name,
		Monthly:      monthly,
		Annual:       monthly.Mul(decimal.NewFromInt(12)).Round(2),
		Currency:     Currency,
		Periods:      RecentPeriods(p.now(), PayrollMonths),
	}, nil
}

// RecentPeriods lists n months ending with the month before now, newest
// first.
func RecentPeriods(now time.Time, n int) []PayPeriod {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]PayPeriod, 0, n)
	for i := 1; i <= n; i++ {
		t := first.AddDate(0, -i, 0)
		out = append(out, PayPeriod{Year: t.Year(), Month: t.Month()})
	}
	return out
}

// FilterPeriods keeps the periods whose label contains query, ignoring case.
func FilterPeriods(periods []PayPeriod, query string) []PayPeriod {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return periods
	}
	var out []PayPeriod
	for _, p := range periods {
		if strings.Contains(strings.ToLower(p.String()), q) {
			out = append(out, p)
		}
	}
	return out
}

// Breakdown lists the payslip lines of a period. Only the basic salary is
// known to the backend, so earnings and net pay equal it.
func (p Payroll) Breakdown() []payslip.Line {
	return []payslip.Line{
		{Label: "Basic Salary", Amount: p.Monthly},
		{Label: "Total Earnings", Amount: p.Monthly},
		{Label: "Total Deductions", Amount: decimal.Zero},
		{Label: "Net Salary", Amount: p.Monthly},
	}
}

// ExportPayslip writes the payslip of period as PDF into the download
// directory and returns its path.
func (p *PayrollService) ExportPayslip(ctx context.Context, pr Payroll, period PayPeriod) (string, error) {
	path, err := payslip.Save(p.downloadDir, payslip.Payslip{
		EmpNo:        pr.EmpNo,
		EmployeeName: pr.EmployeeName,
		Period:       period.String(),
		Currency:     pr.Currency,
		Lines:        pr.Breakdown(),
		IssuedAt:     p.now(),
	})
	if err != nil {
		return "", fmt.Errorf("export payslip: %w", err)
	}
	p.log.Info(ctx, "payslip exported", "emp_no", pr.EmpNo, "period", period.String(), "path", path)
	return path, nil
}
