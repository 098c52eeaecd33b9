// Package payslip renders payslips as PDF documents.
package payslip

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/hros-ess/internal/filex"
)

type Line struct {
	Label  string
	Amount decimal.Decimal
}

type Payslip struct {
	EmpNo        string
	EmployeeName string
	Period       string
	Currency     string
	Lines        []Line
	IssuedAt     time.Time
}

// FileName is the name Save uses, e.g. payslip_E1001_September_2026.pdf.
func (p Payslip) FileName() string {
	period := strings.ReplaceAll(strings.TrimSpace(p.Period), " ", "_")
	return fmt.Sprintf("payslip_%s_%s.pdf", p.EmpNo, period)
}

// Render writes p as a one-page A4 PDF to w.
func Render(w io.Writer, p Payslip) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	if !p.IssuedAt.IsZero() {
		pdf.SetCreationDate(p.IssuedAt)
	}
	pdf.SetTitle("Payslip "+p.Period, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Employee: %s (#%s)", p.EmployeeName, p.EmpNo)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", p.Period))
	pdf.Ln(10)

	for _, l := range p.Lines {
		pdf.CellFormat(100, 8, tr(l.Label), "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, fmt.Sprintf("%s %s", p.Currency, FormatMoney(l.Amount)), "B", 1, "R", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render payslip: %w", err)
	}
	return pdf.Output(w)
}

// Save renders p into dir and returns the file path.
func Save(dir string, p Payslip) (string, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return "", err
	}
	path, err := filex.SafeJoin(abs, p.FileName())
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		return "", err
	}
	if _, err := filex.WriteFile(path, &buf); err != nil {
		return "", err
	}
	return path, nil
}

// FormatMoney renders d with two decimals and thousands separators.
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
