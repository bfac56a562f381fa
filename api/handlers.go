/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the payroll engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the engine and store.

ENDPOINTS:
  Employees:
    GET    /api/employees                    List all employees
    POST   /api/employees                    Onboard an employee
    GET    /api/employees/{id}               Get employee details
    PUT    /api/employees/{id}/salary        Update basic salary

  Payslips:
    POST   /api/employees/{id}/payslips      Compute and persist a payslip
    GET    /api/employees/{id}/payslips      Payslip history, newest first
    GET    /api/payslips/{id}                Get a stored payslip
    GET    /api/payslips/{id}/pdf            Download a payslip as PDF

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call engine / store
  4. Serialize response
  5. Map errors to status codes

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, unknown category, malformed input
  - 404: Employee or payslip not found
  - 500: Store failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/report"
	"github.com/warp/payroll-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
// GET /api/employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateEmployee onboards a new employee. Posting an existing id supersedes
// the stored record.
// POST /api/employees
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var (
		emp *payroll.Employee
		err error
	)
	if cat, catErr := payroll.ParseCategory(req.Category); catErr == nil && cat == payroll.CategoryContractual {
		emp, err = payroll.NewContractualEmployee(
			payroll.EmployeeID(req.ID), req.FirstName, req.LastName, req.Position,
			payroll.NewMoney(req.BasicSalary), req.ContractEndDate, req.ProjectAssignment)
	} else {
		emp, err = payroll.NewEmployee(
			req.Category, payroll.EmployeeID(req.ID), req.FirstName, req.LastName,
			req.Position, payroll.NewMoney(req.BasicSalary))
	}
	if err != nil {
		writeEngineError(w, "Failed to create employee", err)
		return
	}

	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// GetEmployee returns a single employee.
// GET /api/employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// UpdateSalary replaces the monthly basic salary and recomputes the derived
// rates.
// PUT /api/employees/{id}/salary
func (h *Handler) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}

	var req UpdateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := emp.SetBasicSalary(payroll.NewMoney(req.BasicSalary)); err != nil {
		writeEngineError(w, "Failed to update salary", err)
		return
	}
	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// =============================================================================
// PAYSLIP HANDLERS
// =============================================================================

// ComputePayslip runs one pay computation and persists the result.
// POST /api/employees/{id}/payslips
func (h *Handler) ComputePayslip(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}

	var req ComputePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	input := payroll.PayInput{
		DaysWorked:    req.DaysWorked,
		OvertimeHours: req.OvertimeHours,
	}
	var err error
	if input.PeriodStart, err = parseDate(req.PeriodStart); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid periodStart", err)
		return
	}
	if input.PeriodEnd, err = parseDate(req.PeriodEnd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid periodEnd", err)
		return
	}

	slip, err := payroll.Compute(emp, input)
	if err != nil {
		writeEngineError(w, "Failed to compute payslip", err)
		return
	}

	rec, err := h.Store.SavePayslip(r.Context(), slip)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save payslip", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPayslipRecordDTO(rec))
}

// ListPayslips returns an employee's payslip history, newest first.
// GET /api/employees/{id}/payslips
func (h *Handler) ListPayslips(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.loadEmployee(w, r)
	if !ok {
		return
	}

	records, err := h.Store.ListPayslips(r.Context(), emp.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list payslips", err)
		return
	}

	dtos := make([]PayslipDTO, len(records))
	for i, rec := range records {
		dtos[i] = toPayslipRecordDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetPayslip returns a stored payslip.
// GET /api/payslips/{id}
func (h *Handler) GetPayslip(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.GetPayslip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, "Failed to get payslip", err)
		return
	}
	writeJSON(w, http.StatusOK, toPayslipRecordDTO(rec))
}

// GetPayslipPDF renders a stored payslip as a PDF document.
// GET /api/payslips/{id}/pdf
func (h *Handler) GetPayslipPDF(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.GetPayslip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, "Failed to get payslip", err)
		return
	}
	emp, err := h.Store.GetEmployee(r.Context(), rec.EmployeeID)
	if err != nil {
		writeEngineError(w, "Failed to get employee", err)
		return
	}

	data, err := report.RenderPDF(emp, rec.Payslip)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render payslip", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "payslip-"+rec.ID+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// =============================================================================
// HELPERS
// =============================================================================

// loadEmployee resolves the {id} route parameter. On failure it writes the
// error response and returns ok=false.
func (h *Handler) loadEmployee(w http.ResponseWriter, r *http.Request) (*payroll.Employee, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee id", fmt.Errorf("not a number: %q", raw))
		return nil, false
	}

	emp, err := h.Store.GetEmployee(r.Context(), payroll.EmployeeID(id))
	if err != nil {
		writeEngineError(w, "Failed to get employee", err)
		return nil, false
	}
	return emp, true
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeEngineError maps engine sentinels to HTTP status codes.
func writeEngineError(w http.ResponseWriter, message string, err error) {
	switch {
	case payroll.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case payroll.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
