package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newRegular(t *testing.T, basicSalary float64) *payroll.Employee {
	t.Helper()
	e, err := payroll.NewEmployee("Regular", 10001, "Maria", "Santos", "Accountant", money(basicSalary))
	require.NoError(t, err)
	return e
}

func newContractual(t *testing.T, basicSalary float64) *payroll.Employee {
	t.Helper()
	e, err := payroll.NewContractualEmployee(20001, "Jose", "Reyes", "Consultant",
		money(basicSalary), "2026-12-31", "Data Migration")
	require.NoError(t, err)
	return e
}

// =============================================================================
// REGULAR RULES
// =============================================================================

func TestRegularRules_GrossPayWithOvertime(t *testing.T) {
	// GIVEN: A regular employee with 50000 monthly basic salary
	// WHEN: Computing gross pay for 22 days and 8 overtime hours
	// THEN: dailyRate = 50000/22 = 2272.73; overtime paid at 125%

	e := newRegular(t, 50000)
	rules := e.Rules()

	assert.InDelta(t, 2272.73, e.DailyRate.Float64(), 0.01)
	assert.InDelta(t, 284.09, e.HourlyRate.Float64(), 0.01)

	gross := rules.GrossPay(22, 8)
	assert.InDelta(t, 52840.91, gross.Float64(), 0.01)

	// Overtime component: (dailyRate/8) * 8 * 1.25
	overtime := gross.Sub(rules.GrossPay(22, 0))
	assert.InDelta(t, 2840.91, overtime.Float64(), 0.01)
}

func TestRegularRules_GrossPayStrictlyIncreasing(t *testing.T) {
	e := newRegular(t, 40000)
	rules := e.Rules()

	base := rules.GrossPay(10, 4)
	assert.True(t, rules.GrossPay(11, 4).GreaterThan(base), "more days must pay more")
	assert.True(t, rules.GrossPay(10, 5).GreaterThan(base), "more overtime must pay more")
}

func TestRegularRules_Allowances(t *testing.T) {
	e := newRegular(t, 50000)
	assert.InDelta(t, 4500, e.Rules().Allowances().Float64(), 0.01)
	assert.True(t, e.Rules().EligibleForBenefits())
}

func TestRegularRules_DeductionsAllFourSchemes(t *testing.T) {
	// GIVEN: A regular employee
	// WHEN: Evaluating deductions against a period gross of 52840.91
	// THEN: All four statutory schemes are withheld

	e := newRegular(t, 50000)
	gross := money(52840.91)

	want := payroll.SSS(gross).
		Add(payroll.PhilHealth(gross)).
		Add(payroll.PagIBIG(gross)).
		Add(payroll.WithholdingTax(gross))

	got := e.Rules().Deductions(gross)
	assert.InDelta(t, want.Float64(), got.Float64(), 0.05)

	// Pinned values for this gross: SSS capped, PhilHealth capped,
	// Pag-IBIG capped, tax in the 30% bracket.
	assert.InDelta(t, 900+1375+100+11268.94, got.Float64(), 0.01)
}

// =============================================================================
// CONTRACTUAL RULES
// =============================================================================

func TestContractualRules_OvertimeIgnored(t *testing.T) {
	// GIVEN: A contractual employee with 60000 monthly basic salary
	// WHEN: Computing gross pay for 22 days with any overtime hours
	// THEN: Gross pay is 60000 exactly, regardless of overtime

	e := newContractual(t, 60000)
	rules := e.Rules()

	gross := rules.GrossPay(22, 10)
	assert.InDelta(t, 60000, gross.Float64(), 0.01)

	for _, hours := range []float64{0, 1, 8, 40, 160} {
		got := rules.GrossPay(22, hours)
		assert.True(t, got.Equal(gross), "overtime hours %v changed contractual gross pay", hours)
	}
}

func TestContractualRules_NoAllowancesNoBenefits(t *testing.T) {
	e := newContractual(t, 60000)
	assert.True(t, e.Rules().Allowances().IsZero())
	assert.False(t, e.Rules().EligibleForBenefits())
	assert.True(t, e.RiceSubsidy.IsZero())
	assert.True(t, e.PhoneAllowance.IsZero())
	assert.True(t, e.ClothingAllowance.IsZero())
}

func TestContractualRules_ReducedDeductions(t *testing.T) {
	// Contractual employees carry SSS and PhilHealth only: no housing fund,
	// no withholding tax.

	e := newContractual(t, 60000)
	gross := money(60000)

	want := payroll.SSS(gross).Add(payroll.PhilHealth(gross))
	got := e.Rules().Deductions(gross)

	assert.InDelta(t, want.Float64(), got.Float64(), 0.01)
	assert.InDelta(t, 900+1375, got.Float64(), 0.01)
}

// =============================================================================
// SHARED EDGE CASES
// =============================================================================

func TestRules_ZeroDaysWorked_ZeroGross(t *testing.T) {
	// daysWorked = 0 means zero gross pay for both categories, no floor.

	reg := newRegular(t, 50000)
	assert.True(t, reg.Rules().GrossPay(0, 0).IsZero())

	con := newContractual(t, 60000)
	assert.True(t, con.Rules().GrossPay(0, 12).IsZero())
}
