/*
Package report renders computed payslips for delivery.

PURPOSE:
  Presentation only. The engine produces numbers; this package turns one
  employee record plus one payslip into something a person can read, as
  plain text (console, email body) or as a PDF document. Nothing here
  recomputes or adjusts an amount.

KEY CONCEPTS:
  - RenderText: fixed-width text payslip
  - RenderPDF: single-page A4 payslip via gofpdf

SEE ALSO:
  - payroll/compute.go: Where the Payslip is produced
*/
package report

import (
	"fmt"
	"strings"

	"github.com/warp/payroll-engine/payroll"
)

const lineWidth = 46

// RenderText writes a payslip as an aligned plain-text statement.
func RenderText(e *payroll.Employee, slip payroll.Payslip) string {
	var b strings.Builder

	rule := strings.Repeat("=", lineWidth)
	thin := strings.Repeat("-", lineWidth)

	b.WriteString(rule + "\n")
	b.WriteString(center("PAYSLIP") + "\n")
	b.WriteString(rule + "\n")

	row(&b, "Employee ID", fmt.Sprintf("%d", slip.EmployeeID))
	row(&b, "Name", e.FullName())
	row(&b, "Position", e.Position)
	row(&b, "Category", categoryLabel(e.Category))
	if !slip.PeriodStart.IsZero() {
		row(&b, "Period", fmt.Sprintf("%s to %s",
			slip.PeriodStart.Format("2006-01-02"), slip.PeriodEnd.Format("2006-01-02")))
	}
	row(&b, "Days Worked", fmt.Sprintf("%d", slip.DaysWorked))
	if slip.OvertimeHours > 0 {
		row(&b, "Overtime Hours", fmt.Sprintf("%.2f", slip.OvertimeHours))
	}

	b.WriteString(thin + "\n")
	amount(&b, "Gross Pay", slip.GrossPay)
	if !slip.OvertimePay.IsZero() {
		amount(&b, "  incl. Overtime Pay", slip.OvertimePay)
	}

	b.WriteString(thin + "\n")
	b.WriteString("Deductions\n")
	amount(&b, "  SSS", slip.SSS)
	amount(&b, "  PhilHealth", slip.PhilHealth)
	if e.Category == payroll.CategoryRegular {
		amount(&b, "  Pag-IBIG", slip.PagIBIG)
		amount(&b, "  Withholding Tax", slip.WithholdingTax)
	}
	amount(&b, "Total Deductions", slip.TotalDeductions)

	if !slip.TotalAllowances.IsZero() {
		b.WriteString(thin + "\n")
		b.WriteString("Allowances\n")
		amount(&b, "  Rice Subsidy", slip.RiceSubsidy)
		amount(&b, "  Phone Allowance", slip.PhoneAllowance)
		amount(&b, "  Clothing Allowance", slip.ClothingAllowance)
		amount(&b, "Total Allowances", slip.TotalAllowances)
	}

	b.WriteString(rule + "\n")
	amount(&b, "NET PAY", slip.NetPay)
	b.WriteString(rule + "\n")

	return b.String()
}

func categoryLabel(c payroll.Category) string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func center(s string) string {
	pad := (lineWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-24s%s\n", label+":", value)
}

func amount(b *strings.Builder, label string, m payroll.Money) {
	fmt.Fprintf(b, "%-24s%21s\n", label+":", "PHP "+m.String())
}
