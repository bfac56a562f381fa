/*
dto.go - Request/response data structures

PURPOSE:
  The JSON shapes of the REST surface. DTOs keep wire formats decoupled
  from the engine's types: amounts cross the wire as float64 rounded to
  cents, dates as "2006-01-02" strings.

SEE ALSO:
  - handlers.go: Where these are read and written
*/
package api

import (
	"time"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/sqlite"
)

// =============================================================================
// REQUESTS
// =============================================================================

// CreateEmployeeRequest onboards one employee.
type CreateEmployeeRequest struct {
	ID          int     `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Position    string  `json:"position"`
	Category    string  `json:"category"`
	BasicSalary float64 `json:"basicSalary"`

	// Contractual-only, ignored for regular employees.
	ContractEndDate   string `json:"contractEndDate,omitempty"`
	ProjectAssignment string `json:"projectAssignment,omitempty"`
}

// UpdateSalaryRequest replaces the monthly basic salary.
type UpdateSalaryRequest struct {
	BasicSalary float64 `json:"basicSalary"`
}

// ComputePayslipRequest runs one pay computation.
type ComputePayslipRequest struct {
	PeriodStart   string  `json:"periodStart,omitempty"`
	PeriodEnd     string  `json:"periodEnd,omitempty"`
	DaysWorked    int     `json:"daysWorked"`
	OvertimeHours float64 `json:"overtimeHours,omitempty"`
}

// =============================================================================
// RESPONSES
// =============================================================================

type EmployeeDTO struct {
	ID              int     `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	FullName        string  `json:"fullName"`
	Position        string  `json:"position"`
	Category        string  `json:"category"`
	BasicSalary     float64 `json:"basicSalary"`
	DailyRate       float64 `json:"dailyRate"`
	HourlyRate      float64 `json:"hourlyRate"`
	SemiMonthlyRate float64 `json:"semiMonthlyRate"`

	RiceSubsidy       float64 `json:"riceSubsidy"`
	PhoneAllowance    float64 `json:"phoneAllowance"`
	ClothingAllowance float64 `json:"clothingAllowance"`

	EligibleForBenefits bool `json:"eligibleForBenefits"`

	ContractEndDate   string `json:"contractEndDate,omitempty"`
	ProjectAssignment string `json:"projectAssignment,omitempty"`
}

type PayslipDTO struct {
	ID         string `json:"id,omitempty"`
	EmployeeID int    `json:"employeeId"`
	CreatedAt  string `json:"createdAt,omitempty"`

	PeriodStart   string  `json:"periodStart,omitempty"`
	PeriodEnd     string  `json:"periodEnd,omitempty"`
	DaysWorked    int     `json:"daysWorked"`
	OvertimeHours float64 `json:"overtimeHours"`

	GrossPay    float64 `json:"grossPay"`
	OvertimePay float64 `json:"overtimePay"`

	SSS             float64 `json:"sss"`
	PhilHealth      float64 `json:"philHealth"`
	PagIBIG         float64 `json:"pagIbig"`
	WithholdingTax  float64 `json:"withholdingTax"`
	TotalDeductions float64 `json:"totalDeductions"`

	RiceSubsidy       float64 `json:"riceSubsidy"`
	PhoneAllowance    float64 `json:"phoneAllowance"`
	ClothingAllowance float64 `json:"clothingAllowance"`
	TotalAllowances   float64 `json:"totalAllowances"`

	NetPay float64 `json:"netPay"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// MAPPING
// =============================================================================

func toEmployeeDTO(e *payroll.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:              int(e.ID),
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		FullName:        e.FullName(),
		Position:        e.Position,
		Category:        string(e.Category),
		BasicSalary:     e.BasicSalary.Float64(),
		DailyRate:       e.DailyRate.RoundCents().Float64(),
		HourlyRate:      e.HourlyRate.RoundCents().Float64(),
		SemiMonthlyRate: e.SemiMonthlyRate.RoundCents().Float64(),

		RiceSubsidy:       e.RiceSubsidy.Float64(),
		PhoneAllowance:    e.PhoneAllowance.Float64(),
		ClothingAllowance: e.ClothingAllowance.Float64(),

		EligibleForBenefits: e.Rules().EligibleForBenefits(),

		ContractEndDate:   e.ContractEndDate,
		ProjectAssignment: e.ProjectAssignment,
	}
}

func toPayslipDTO(slip payroll.Payslip) PayslipDTO {
	dto := PayslipDTO{
		EmployeeID:    int(slip.EmployeeID),
		DaysWorked:    slip.DaysWorked,
		OvertimeHours: slip.OvertimeHours,

		GrossPay:    slip.GrossPay.Float64(),
		OvertimePay: slip.OvertimePay.Float64(),

		SSS:             slip.SSS.Float64(),
		PhilHealth:      slip.PhilHealth.Float64(),
		PagIBIG:         slip.PagIBIG.Float64(),
		WithholdingTax:  slip.WithholdingTax.Float64(),
		TotalDeductions: slip.TotalDeductions.Float64(),

		RiceSubsidy:       slip.RiceSubsidy.Float64(),
		PhoneAllowance:    slip.PhoneAllowance.Float64(),
		ClothingAllowance: slip.ClothingAllowance.Float64(),
		TotalAllowances:   slip.TotalAllowances.Float64(),

		NetPay: slip.NetPay.Float64(),
	}
	if !slip.PeriodStart.IsZero() {
		dto.PeriodStart = slip.PeriodStart.Format("2006-01-02")
	}
	if !slip.PeriodEnd.IsZero() {
		dto.PeriodEnd = slip.PeriodEnd.Format("2006-01-02")
	}
	return dto
}

func toPayslipRecordDTO(rec *sqlite.PayslipRecord) PayslipDTO {
	dto := toPayslipDTO(rec.Payslip)
	dto.ID = rec.ID
	dto.CreatedAt = rec.CreatedAt.Format(time.RFC3339)
	return dto
}
