/*
compute.go - The pay computation template

PURPOSE:
  The one place the four numbers are combined. The algorithm is fixed and
  invariant across categories; the rule set parameterizes it:

    grossPay   = rules.GrossPay(daysWorked, overtimeHours)
    allowances = rules.Allowances()
    deductions = rules.Deductions(grossPay)
    netPay     = grossPay + allowances - deductions

  The computation is total, synchronous, and has no observable side effect
  beyond producing the Payslip. Concurrent callers need no coordination: no
  operation reads or writes process-wide state.

VALIDATION:
  Negative days or hours, non-finite hours, or a reversed period are rejected
  before any calculation. A returned error means no partial result exists.

ROUNDING:
  Each component is rounded to cents once, when the result is assembled;
  totals are sums of the rounded components, so the net-pay identity holds
  exactly in cents.
*/
package payroll

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INPUT / RESULT
// =============================================================================

// PayInput carries the period attributes for one computation.
type PayInput struct {
	PeriodStart   time.Time
	PeriodEnd     time.Time
	DaysWorked    int
	OvertimeHours float64
}

// Payslip is the immutable result of one pay computation. It is owned by the
// caller that requested it and is never cached or shared by the engine.
//
// Invariants (exact, in cents):
//
//	NetPay          == GrossPay + TotalAllowances - TotalDeductions
//	TotalDeductions == SSS + PhilHealth + PagIBIG + WithholdingTax
//	TotalAllowances == RiceSubsidy + PhoneAllowance + ClothingAllowance
type Payslip struct {
	EmployeeID    EmployeeID
	PeriodStart   time.Time
	PeriodEnd     time.Time
	DaysWorked    int
	OvertimeHours float64

	GrossPay    Money
	OvertimePay Money

	SSS             Money
	PhilHealth      Money
	PagIBIG         Money
	WithholdingTax  Money
	TotalDeductions Money

	RiceSubsidy       Money
	PhoneAllowance    Money
	ClothingAllowance Money
	TotalAllowances   Money

	NetPay Money
}

// =============================================================================
// COMPUTE - The template algorithm
// =============================================================================

// Compute runs the pay computation for one employee and period.
func Compute(e *Employee, in PayInput) (Payslip, error) {
	if e == nil {
		return Payslip{}, invalidf("employee", "record is required")
	}
	if in.DaysWorked < 0 {
		return Payslip{}, invalidf("days worked", "must not be negative, got %d", in.DaysWorked)
	}
	if in.OvertimeHours < 0 {
		return Payslip{}, invalidf("overtime hours", "must not be negative, got %v", in.OvertimeHours)
	}
	if math.IsNaN(in.OvertimeHours) || math.IsInf(in.OvertimeHours, 0) {
		return Payslip{}, invalidf("overtime hours", "must be finite, got %v", in.OvertimeHours)
	}
	if !in.PeriodStart.IsZero() && !in.PeriodEnd.IsZero() && in.PeriodEnd.Before(in.PeriodStart) {
		return Payslip{}, invalidf("period", "end %s before start %s",
			in.PeriodEnd.Format("2006-01-02"), in.PeriodStart.Format("2006-01-02"))
	}

	rules := e.Rules()

	grossRaw := rules.GrossPay(in.DaysWorked, in.OvertimeHours)
	basePay := e.DailyRate.Mul(decimal.NewFromInt(int64(in.DaysWorked)))
	gross := grossRaw.RoundCents()
	overtimePay := grossRaw.Sub(basePay).RoundCents()

	// Deductions are evaluated against the period gross pay just computed.
	deductions := statutoryBreakdown(e.Category, gross)
	allowances := rules.Allowances().RoundCents()

	net := gross.Add(allowances).Sub(deductions.Total())

	return Payslip{
		EmployeeID:    e.ID,
		PeriodStart:   in.PeriodStart,
		PeriodEnd:     in.PeriodEnd,
		DaysWorked:    in.DaysWorked,
		OvertimeHours: in.OvertimeHours,

		GrossPay:    gross,
		OvertimePay: overtimePay,

		SSS:             deductions.SSS,
		PhilHealth:      deductions.PhilHealth,
		PagIBIG:         deductions.PagIBIG,
		WithholdingTax:  deductions.WithholdingTax,
		TotalDeductions: deductions.Total(),

		RiceSubsidy:       e.RiceSubsidy,
		PhoneAllowance:    e.PhoneAllowance,
		ClothingAllowance: e.ClothingAllowance,
		TotalAllowances:   allowances,

		NetPay: net,
	}, nil
}
