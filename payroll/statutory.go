/*
statutory.go - Mandated contribution and withholding formulas

PURPOSE:
  Four independent pure functions, each mapping a salary figure for a
  semi-monthly period to a non-negative mandated amount:

    SSS             social-insurance contribution (step table)
    PhilHealth      health-insurance contribution (floor / percentage / cap)
    PagIBIG         housing-fund contribution (percentage, capped)
    WithholdingTax  progressive income tax (annualized brackets)

SALARY BASIS:
  Every function takes a SEMI-MONTHLY period figure. PhilHealth, PagIBIG and
  the tax scale it to a monthly (x2) or annual (x24) basis internally, because
  the statutory schedules are denominated that way.

BRACKET TABLES:
  The bracket and percentage constants are read-only process-wide data,
  initialized once below. They are closed-form, so no cache is needed and
  concurrent callers share them without coordination.

CONTRACT:
  Input must be >= 0. Negative or non-finite input is a caller bug, rejected
  at the engine boundary (compute.go), never inside these functions.

SEE ALSO:
  - ruleset.go: Which schemes apply per employee category
  - compute.go: Where the engine validates inputs and assembles results
*/
package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// SOCIAL-INSURANCE CONTRIBUTION (SSS)
// =============================================================================

// Step table parameters. The published schedule maps each 500-wide salary
// bracket above the floor to one value, increasing by 22.50 per bracket.
var (
	sssFloorSalary   = decimal.NewFromInt(3250)
	sssCeilingSalary = decimal.NewFromInt(19750)
	sssFloor         = MustMoney("135.00")
	sssCeiling       = MustMoney("900.00")
	sssBracketWidth  = decimal.NewFromInt(500)
	sssBracketStep   = MustMoney("22.50")
)

// SSS returns the social-insurance contribution for the salary figure.
// Monotonic non-decreasing: 135.00 at or below 3250, 900.00 above 19750,
// one step of 22.50 for every additional 500 in between.
func SSS(salary Money) Money {
	if salary.Value.LessThanOrEqual(sssFloorSalary) {
		return sssFloor
	}
	if salary.Value.GreaterThan(sssCeilingSalary) {
		return sssCeiling
	}
	steps := salary.Value.Sub(sssFloorSalary).Div(sssBracketWidth).Ceil()
	return sssFloor.Add(sssBracketStep.Mul(steps))
}

// =============================================================================
// HEALTH-INSURANCE CONTRIBUTION (PhilHealth)
// =============================================================================

var (
	philHealthMonthlyFloor   = decimal.NewFromInt(10000)
	philHealthMonthlyCeiling = decimal.NewFromInt(60000)
	philHealthFloorShare     = MustMoney("137.50") // half of the 275 monthly floor
	philHealthCeilingShare   = MustMoney("1375.00") // half of the 2750 monthly cap
	philHealthRate           = MustMoney("0.0275").Value
)

// PhilHealth returns the health-insurance contribution for the period.
// The period figure is scaled to a monthly basis; the contribution is half
// of 2.75% of monthly salary, between the published floor and cap.
func PhilHealth(periodGross Money) Money {
	monthly := periodGross.Mul(two)
	if monthly.Value.LessThanOrEqual(philHealthMonthlyFloor) {
		return philHealthFloorShare
	}
	if monthly.Value.GreaterThanOrEqual(philHealthMonthlyCeiling) {
		return philHealthCeilingShare
	}
	return monthly.Mul(philHealthRate).Div(two)
}

// =============================================================================
// HOUSING-FUND CONTRIBUTION (Pag-IBIG)
// =============================================================================

var (
	pagIbigLowMonthly = decimal.NewFromInt(1500)
	pagIbigLowRate    = MustMoney("0.01").Value
	pagIbigRate       = MustMoney("0.02").Value
	pagIbigCap        = MustMoney("100.00") // per period
)

// PagIBIG returns the housing-fund contribution for the period: 1% of monthly
// salary at or below 1500, otherwise 2%, halved for the period and capped
// at 100.00.
func PagIBIG(periodGross Money) Money {
	monthly := periodGross.Mul(two)
	if monthly.Value.LessThanOrEqual(pagIbigLowMonthly) {
		return monthly.Mul(pagIbigLowRate).Div(two)
	}
	return monthly.Mul(pagIbigRate).Div(two).Min(pagIbigCap)
}

// =============================================================================
// PROGRESSIVE WITHHOLDING TAX
// =============================================================================

// taxBracket covers annual income up to Ceiling (right-inclusive): tax is
// Base plus Rate applied to the excess over Over. A nil Ceiling marks the
// top bracket.
type taxBracket struct {
	Ceiling *Money
	Over    Money
	Base    Money
	Rate    decimal.Decimal
}

func moneyPtr(m Money) *Money { return &m }

var taxBrackets = []taxBracket{
	{Ceiling: moneyPtr(NewMoneyFromInt(250000)), Over: ZeroMoney, Base: ZeroMoney, Rate: decimal.Zero},
	{Ceiling: moneyPtr(NewMoneyFromInt(400000)), Over: NewMoneyFromInt(250000), Base: ZeroMoney, Rate: MustMoney("0.20").Value},
	{Ceiling: moneyPtr(NewMoneyFromInt(800000)), Over: NewMoneyFromInt(400000), Base: NewMoneyFromInt(30000), Rate: MustMoney("0.25").Value},
	{Ceiling: moneyPtr(NewMoneyFromInt(2000000)), Over: NewMoneyFromInt(800000), Base: NewMoneyFromInt(130000), Rate: MustMoney("0.30").Value},
	{Ceiling: moneyPtr(NewMoneyFromInt(8000000)), Over: NewMoneyFromInt(2000000), Base: NewMoneyFromInt(490000), Rate: MustMoney("0.32").Value},
	{Ceiling: nil, Over: NewMoneyFromInt(8000000), Base: NewMoneyFromInt(2410000), Rate: MustMoney("0.35").Value},
}

var (
	two            = decimal.NewFromInt(2)
	payPeriodsYear = decimal.NewFromInt(24)
)

// AnnualWithholdingTax applies the progressive brackets to an annual income.
// Boundary values fall into the lower bracket: exactly 250,000 is tax-free.
func AnnualWithholdingTax(annual Money) Money {
	for _, b := range taxBrackets {
		if b.Ceiling == nil || annual.LessOrEqual(*b.Ceiling) {
			return b.Base.Add(annual.Sub(b.Over).Mul(b.Rate))
		}
	}
	return ZeroMoney // unreachable: last bracket has no ceiling
}

// WithholdingTax returns the income tax withheld for a semi-monthly period:
// the period figure is annualized (x24), taxed on the bracket schedule, and
// divided back across 24 pay periods.
func WithholdingTax(periodGross Money) Money {
	annual := periodGross.Mul(payPeriodsYear)
	return AnnualWithholdingTax(annual).Div(payPeriodsYear)
}
