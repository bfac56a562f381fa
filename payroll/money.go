/*
Package payroll is the pay calculation engine.

PURPOSE:
  This package computes periodic pay for an employee from a small set of
  compensation rules that vary by employment category. It is a pure function
  from (employee attributes, period attributes) to a pay breakdown: it does
  not fetch data, persist results, format output, or enforce authorization.
  Those concerns live in the surrounding packages (store, api, report).

KEY CONCEPTS IN THIS FILE (money.go):
  - Money: A fixed-point monetary amount backed by decimal.Decimal

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point drift
  2. Immutability: Money values are never mutated, operations return copies
  3. Rounding: Amounts are rounded to cents only when a result is assembled,
     never inside intermediate arithmetic

USAGE:
  salary := payroll.NewMoney(50000)
  daily := salary.Div(decimal.NewFromInt(22))

SEE ALSO:
  - statutory.go: Mandated contribution and withholding formulas
  - ruleset.go: Category-specific compensation rules
  - compute.go: The pay computation template
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Fixed-point monetary amount (single currency)
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

// MustMoney parses a decimal string, returning zero on malformed input.
// Intended for constant tables and tests, not user input.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{Value: decimal.Zero}
	}
	return Money{Value: d}
}

var ZeroMoney = Money{Value: decimal.Zero}

func (m Money) Add(o Money) Money              { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money              { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) Mul(s decimal.Decimal) Money    { return Money{Value: m.Value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money    { return Money{Value: m.Value.Div(s)} }
func (m Money) Neg() Money                     { return Money{Value: m.Value.Neg()} }
func (m Money) IsNegative() bool               { return m.Value.IsNegative() }
func (m Money) IsZero() bool                   { return m.Value.IsZero() }
func (m Money) IsPositive() bool               { return m.Value.IsPositive() }
func (m Money) GreaterThan(o Money) bool       { return m.Value.GreaterThan(o.Value) }
func (m Money) GreaterOrEqual(o Money) bool    { return m.Value.GreaterThanOrEqual(o.Value) }
func (m Money) LessThan(o Money) bool          { return m.Value.LessThan(o.Value) }
func (m Money) LessOrEqual(o Money) bool       { return m.Value.LessThanOrEqual(o.Value) }
func (m Money) Equal(o Money) bool             { return m.Value.Equal(o.Value) }
func (m Money) Min(o Money) Money              { if m.LessThan(o) { return m }; return o }
func (m Money) Max(o Money) Money              { if m.GreaterThan(o) { return m }; return o }

// RoundCents rounds to 2 decimal places, half away from zero.
func (m Money) RoundCents() Money {
	return Money{Value: m.Value.Round(2)}
}

// Float64 returns the amount as a float64 for display and serialization.
// Engine arithmetic never goes through this.
func (m Money) Float64() float64 {
	f, _ := m.Value.Float64()
	return f
}

func (m Money) String() string {
	return m.Value.StringFixed(2)
}
