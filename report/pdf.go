/*
pdf.go - PDF payslip rendering

PURPOSE:
  Produces a single-page A4 payslip document. Layout mirrors the text
  renderer: header, employee attributes, earnings, deductions, allowances,
  net pay. Amounts come straight off the Payslip.
*/
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/warp/payroll-engine/payroll"
)

// RenderPDF returns the payslip as PDF bytes.
func RenderPDF(e *payroll.Employee, slip payroll.Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdfRow(pdf, "Employee ID", fmt.Sprintf("%d", slip.EmployeeID))
	pdfRow(pdf, "Name", e.FullName())
	pdfRow(pdf, "Position", e.Position)
	pdfRow(pdf, "Category", categoryLabel(e.Category))
	if !slip.PeriodStart.IsZero() {
		pdfRow(pdf, "Period", fmt.Sprintf("%s to %s",
			slip.PeriodStart.Format("2006-01-02"), slip.PeriodEnd.Format("2006-01-02")))
	}
	pdfRow(pdf, "Days Worked", fmt.Sprintf("%d", slip.DaysWorked))
	if slip.OvertimeHours > 0 {
		pdfRow(pdf, "Overtime Hours", fmt.Sprintf("%.2f", slip.OvertimeHours))
	}
	pdf.Ln(4)

	pdfSection(pdf, "Earnings")
	pdfAmount(pdf, "Gross Pay", slip.GrossPay)
	if !slip.OvertimePay.IsZero() {
		pdfAmount(pdf, "incl. Overtime Pay", slip.OvertimePay)
	}
	pdf.Ln(4)

	pdfSection(pdf, "Deductions")
	pdfAmount(pdf, "SSS", slip.SSS)
	pdfAmount(pdf, "PhilHealth", slip.PhilHealth)
	if e.Category == payroll.CategoryRegular {
		pdfAmount(pdf, "Pag-IBIG", slip.PagIBIG)
		pdfAmount(pdf, "Withholding Tax", slip.WithholdingTax)
	}
	pdfAmount(pdf, "Total Deductions", slip.TotalDeductions)
	pdf.Ln(4)

	if !slip.TotalAllowances.IsZero() {
		pdfSection(pdf, "Allowances")
		pdfAmount(pdf, "Rice Subsidy", slip.RiceSubsidy)
		pdfAmount(pdf, "Phone Allowance", slip.PhoneAllowance)
		pdfAmount(pdf, "Clothing Allowance", slip.ClothingAllowance)
		pdfAmount(pdf, "Total Allowances", slip.TotalAllowances)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 8, "NET PAY", "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "PHP "+slip.NetPay.String(), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfSection(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func pdfRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func pdfAmount(pdf *gofpdf.Fpdf, label string, m payroll.Money) {
	pdf.CellFormat(60, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, "PHP "+m.String(), "", 1, "R", false, 0, "")
}
