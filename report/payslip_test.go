package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/report"
)

func computeRegular(t *testing.T) (*payroll.Employee, payroll.Payslip) {
	t.Helper()
	e, err := payroll.NewEmployee("Regular", 10032, "Maria", "Santos", "Accountant", payroll.NewMoney(50000))
	require.NoError(t, err)
	slip, err := payroll.Compute(e, payroll.PayInput{
		PeriodStart:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:     time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		DaysWorked:    22,
		OvertimeHours: 8,
	})
	require.NoError(t, err)
	return e, slip
}

func computeContractual(t *testing.T) (*payroll.Employee, payroll.Payslip) {
	t.Helper()
	e, err := payroll.NewContractualEmployee(20017, "Jose", "Reyes", "Consultant",
		payroll.NewMoney(60000), "2026-12-31", "Data Migration")
	require.NoError(t, err)
	slip, err := payroll.Compute(e, payroll.PayInput{DaysWorked: 22})
	require.NoError(t, err)
	return e, slip
}

func TestRenderText_RegularPayslip(t *testing.T) {
	e, slip := computeRegular(t)

	out := report.RenderText(e, slip)

	// Identification block.
	assert.Contains(t, out, "Maria Santos")
	assert.Contains(t, out, "Accountant")
	assert.Contains(t, out, "Regular")
	assert.Contains(t, out, "2025-06-01 to 2025-06-15")

	// Every amount off the payslip appears, formatted to cents.
	assert.Contains(t, out, "52840.91")
	assert.Contains(t, out, "2840.91")
	assert.Contains(t, out, "900.00")
	assert.Contains(t, out, "1375.00")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "11268.94")
	assert.Contains(t, out, "13643.94")
	assert.Contains(t, out, "4500.00")
	assert.Contains(t, out, "43696.97")
}

func TestRenderText_ContractualOmitsInapplicableLines(t *testing.T) {
	e, slip := computeContractual(t)

	out := report.RenderText(e, slip)

	assert.Contains(t, out, "Jose Reyes")
	assert.Contains(t, out, "Contractual")
	assert.Contains(t, out, "60000.00")
	assert.Contains(t, out, "57725.00")

	// No withholding, Pag-IBIG, or allowance lines for contractuals.
	assert.NotContains(t, out, "Withholding Tax")
	assert.NotContains(t, out, "Pag-IBIG")
	assert.NotContains(t, out, "Allowances")
}

func TestRenderText_AmountColumnAligned(t *testing.T) {
	e, slip := computeRegular(t)

	out := report.RenderText(e, slip)

	// Every amount line ends at the same column.
	var widths []int
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if strings.Contains(line, "PHP ") {
			widths = append(widths, len(line))
		}
	}
	require.NotEmpty(t, widths)
	for _, w := range widths {
		assert.Equal(t, widths[0], w)
	}
}

func TestRenderPDF_ProducesDocument(t *testing.T) {
	e, slip := computeRegular(t)

	data, err := report.RenderPDF(e, slip)
	require.NoError(t, err)

	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "missing PDF header")
}

func TestRenderPDF_ContractualPayslip(t *testing.T) {
	e, slip := computeContractual(t)

	data, err := report.RenderPDF(e, slip)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
