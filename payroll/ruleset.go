/*
ruleset.go - Category-specific compensation rules

PURPOSE:
  The polymorphic contract between an employee category and the pay
  computation. One interface, four operations, implemented per category.
  The engine (compute.go) calls these; no rule set computes net pay itself.

CONTRACT:
  All four operations are pure and deterministic for fixed inputs:
    GrossPay(daysWorked, overtimeHours)  base pay plus any overtime premium
    Allowances()                         fixed stipends for the category
    Deductions(periodGross)              mandated withholdings for the category
    EligibleForBenefits()                benefit entitlement flag

CATEGORY DIFFERENCES:
  Regular:     overtime paid at 125%, full allowances, all four statutory
               schemes withheld.
  Contractual: day-rate only (overtime hours accepted but ignored),
               no allowances, SSS and PhilHealth only, no benefits.

DEDUCTION BASIS:
  Deductions are evaluated against the period gross pay the rule set itself
  produced, not against the unadorned basic salary. See DESIGN.md.

Adding a category means adding a Category constant, a rule set here, and a
factory arm. The compiler then finds every switch that needs a new case.
*/
package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// COMPENSATION RULES - Polymorphic over employee category
// =============================================================================

type CompensationRules interface {
	// GrossPay returns base pay for the period plus any overtime premium.
	GrossPay(daysWorked int, overtimeHours float64) Money

	// Allowances returns the fixed stipends granted to this category.
	Allowances() Money

	// Deductions returns the mandated withholdings for this category,
	// evaluated against the period gross pay.
	Deductions(periodGross Money) Money

	// EligibleForBenefits reports whether the category carries benefits.
	EligibleForBenefits() bool
}

// overtimePremium is the multiplier applied to the hourly rate for overtime.
var overtimePremium = MustMoney("1.25").Value

// =============================================================================
// REGULAR
// =============================================================================

type regularRules struct {
	emp *Employee
}

func (r regularRules) GrossPay(daysWorked int, overtimeHours float64) Money {
	base := r.emp.DailyRate.Mul(decimal.NewFromInt(int64(daysWorked)))
	overtime := r.emp.HourlyRate.
		Mul(decimal.NewFromFloat(overtimeHours)).
		Mul(overtimePremium)
	return base.Add(overtime)
}

func (r regularRules) Allowances() Money {
	return r.emp.TotalAllowances()
}

func (r regularRules) Deductions(periodGross Money) Money {
	d := statutoryBreakdown(CategoryRegular, periodGross)
	return d.Total()
}

func (r regularRules) EligibleForBenefits() bool { return true }

// =============================================================================
// CONTRACTUAL
// =============================================================================

type contractualRules struct {
	emp *Employee
}

// GrossPay is day-rate only. Overtime hours are accepted as input but have no
// effect on the result: contractual pay carries no overtime premium.
func (c contractualRules) GrossPay(daysWorked int, _ float64) Money {
	return c.emp.DailyRate.Mul(decimal.NewFromInt(int64(daysWorked)))
}

func (c contractualRules) Allowances() Money {
	return ZeroMoney
}

func (c contractualRules) Deductions(periodGross Money) Money {
	d := statutoryBreakdown(CategoryContractual, periodGross)
	return d.Total()
}

func (c contractualRules) EligibleForBenefits() bool { return false }

// =============================================================================
// STATUTORY BREAKDOWN - Which schemes each category withholds
// =============================================================================

// StatutoryDeductions is the per-scheme breakdown for one period, each amount
// already rounded to cents.
type StatutoryDeductions struct {
	SSS            Money
	PhilHealth     Money
	PagIBIG        Money
	WithholdingTax Money
}

func (d StatutoryDeductions) Total() Money {
	return d.SSS.Add(d.PhilHealth).Add(d.PagIBIG).Add(d.WithholdingTax)
}

// statutoryBreakdown is the single source of truth for which schemes apply to
// a category. Regular employees carry all four; contractual employees carry a
// reduced set reflecting their limited statutory obligations.
func statutoryBreakdown(c Category, periodGross Money) StatutoryDeductions {
	d := StatutoryDeductions{
		SSS:            SSS(periodGross).RoundCents(),
		PhilHealth:     PhilHealth(periodGross).RoundCents(),
		PagIBIG:        ZeroMoney,
		WithholdingTax: ZeroMoney,
	}
	if c == CategoryRegular {
		d.PagIBIG = PagIBIG(periodGross).RoundCents()
		d.WithholdingTax = WithholdingTax(periodGross).RoundCents()
	}
	return d
}
