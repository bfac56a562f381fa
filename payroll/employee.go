/*
employee.go - Employee compensation record

PURPOSE:
  The data entity carrying an employee's category and pay-rate attributes.
  Created at onboarding, mutated by salary updates, never deleted (the store
  supersedes records instead).

INVARIANTS:
  - ID > 0
  - First and last name trimmed non-blank
  - BasicSalary >= 0 (a MONTHLY figure; see the derived-rate note below)
  - Allowance entitlements are fixed per category, not caller-editable

DERIVED RATES:
  Recomputed whenever BasicSalary changes:
    DailyRate       = BasicSalary / 22   (22 working days per month)
    HourlyRate      = DailyRate / 8      (8 hours per day)
    SemiMonthlyRate = BasicSalary / 2

SEE ALSO:
  - factory.go: Category-label dispatch into the right rule set
  - ruleset.go: Behavior keyed by Category
*/
package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CATEGORY - Closed set of employment categories
// =============================================================================

type Category string

const (
	CategoryRegular     Category = "regular"
	CategoryContractual Category = "contractual"
)

// ParseCategory matches a category label case-insensitively.
// Any label outside the closed set fails with ErrUnknownCategory.
func ParseCategory(label string) (Category, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "REGULAR":
		return CategoryRegular, nil
	case "CONTRACTUAL":
		return CategoryContractual, nil
	default:
		return "", ErrUnknownCategory
	}
}

// =============================================================================
// ALLOWANCE ENTITLEMENTS - Fixed constants per category
// =============================================================================

var (
	regularRiceSubsidy       = NewMoneyFromInt(1500)
	regularPhoneAllowance    = NewMoneyFromInt(2000)
	regularClothingAllowance = NewMoneyFromInt(1000)
)

var (
	workingDaysPerMonth = decimal.NewFromInt(22)
	hoursPerDay         = decimal.NewFromInt(8)
)

// =============================================================================
// EMPLOYEE - Compensation record
// =============================================================================

type EmployeeID int

type Employee struct {
	ID        EmployeeID
	FirstName string
	LastName  string
	Position  string
	Category  Category

	// BasicSalary is a monthly figure.
	BasicSalary Money

	// Derived rates, recomputed on every salary change.
	DailyRate       Money
	HourlyRate      Money
	SemiMonthlyRate Money

	// Fixed allowance entitlements for this category.
	RiceSubsidy       Money
	PhoneAllowance    Money
	ClothingAllowance Money

	// Contractual-only attributes, informational. Not consumed by any
	// calculation.
	ContractEndDate   string
	ProjectAssignment string
}

// newEmployee enforces the record construction invariants shared by every
// factory path.
func newEmployee(category Category, id EmployeeID, firstName, lastName, position string, basicSalary Money) (*Employee, error) {
	if id <= 0 {
		return nil, invalidf("id", "must be positive, got %d", id)
	}
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, invalidf("first name", "must not be blank")
	}
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return nil, invalidf("last name", "must not be blank")
	}
	if basicSalary.IsNegative() {
		return nil, invalidf("basic salary", "must not be negative, got %s", basicSalary)
	}

	e := &Employee{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Position:  strings.TrimSpace(position),
		Category:  category,
	}
	e.grantAllowances()
	e.setSalary(basicSalary)
	return e, nil
}

func (e *Employee) grantAllowances() {
	switch e.Category {
	case CategoryRegular:
		e.RiceSubsidy = regularRiceSubsidy
		e.PhoneAllowance = regularPhoneAllowance
		e.ClothingAllowance = regularClothingAllowance
	default:
		e.RiceSubsidy = ZeroMoney
		e.PhoneAllowance = ZeroMoney
		e.ClothingAllowance = ZeroMoney
	}
}

func (e *Employee) setSalary(basicSalary Money) {
	e.BasicSalary = basicSalary
	e.DailyRate = basicSalary.Div(workingDaysPerMonth)
	e.HourlyRate = e.DailyRate.Div(hoursPerDay)
	e.SemiMonthlyRate = basicSalary.Div(two)
}

// SetBasicSalary updates the salary and recomputes the derived rates.
func (e *Employee) SetBasicSalary(basicSalary Money) error {
	if basicSalary.IsNegative() {
		return invalidf("basic salary", "must not be negative, got %s", basicSalary)
	}
	e.setSalary(basicSalary)
	return nil
}

// FullName returns the display name "First Last".
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// TotalAllowances sums the three fixed entitlements.
func (e *Employee) TotalAllowances() Money {
	return e.RiceSubsidy.Add(e.PhoneAllowance).Add(e.ClothingAllowance)
}

// Rules returns the compensation rule set for the employee's category.
func (e *Employee) Rules() CompensationRules {
	switch e.Category {
	case CategoryContractual:
		return contractualRules{e}
	default:
		return regularRules{e}
	}
}
