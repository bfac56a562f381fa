/*
Package sqlite provides a SQLite-backed implementation of the storage
collaborators around the payroll engine.

PURPOSE:
  Persists employee compensation records and computed payslips. The engine
  itself never touches storage; the API layer fetches a record here, runs the
  computation, and writes the result back through this package.

KEY TABLES:
  employees:  Compensation records keyed by positive integer id. Records are
              superseded in place (upsert), never deleted.
  payslips:   Computed pay results, one row per (employee, period) request,
              keyed by a generated UUID. Append-only: results are immutable
              once written.

MONEY REPRESENTATION:
  Monetary amounts are stored as decimal strings and re-parsed on load, so no
  precision is lost through the database round-trip.

RECORD RECONSTRUCTION:
  Employees are rebuilt through the payroll factory on load, which re-derives
  the daily/hourly/semi-monthly rates and re-grants the category allowance
  entitlements. The database only stores the authoritative inputs.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. SQLite is opened with WAL for better
  read concurrency.

USAGE:
  store, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - payroll: The pure engine these records feed
  - api: The HTTP layer that owns the fetch-compute-persist flow
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/payroll"
)

// Store implements the persistence collaborators using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Employee compensation records (superseded in place, never deleted)
	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY CHECK (id > 0),
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		position TEXT,
		category TEXT NOT NULL,
		basic_salary TEXT NOT NULL,
		contract_end_date TEXT,
		project_assignment TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_employees_category
		ON employees(category);

	-- Computed payslips (append-only: results are immutable once written)
	CREATE TABLE IF NOT EXISTS payslips (
		id TEXT PRIMARY KEY,
		employee_id INTEGER NOT NULL,
		period_start TEXT NOT NULL,
		period_end TEXT NOT NULL,
		days_worked INTEGER NOT NULL,
		overtime_hours REAL NOT NULL,
		gross_pay TEXT NOT NULL,
		overtime_pay TEXT NOT NULL,
		sss TEXT NOT NULL,
		philhealth TEXT NOT NULL,
		pagibig TEXT NOT NULL,
		withholding_tax TEXT NOT NULL,
		total_deductions TEXT NOT NULL,
		rice_subsidy TEXT NOT NULL,
		phone_allowance TEXT NOT NULL,
		clothing_allowance TEXT NOT NULL,
		total_allowances TEXT NOT NULL,
		net_pay TEXT NOT NULL,
		created_at TEXT NOT NULL,
		FOREIGN KEY (employee_id) REFERENCES employees(id)
	);

	CREATE INDEX IF NOT EXISTS idx_payslips_employee
		ON payslips(employee_id, period_start);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// SaveEmployee inserts or supersedes the record for the employee's id.
func (s *Store) SaveEmployee(ctx context.Context, e *payroll.Employee) error {
	if e == nil {
		return errors.New("employee is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (id, first_name, last_name, position, category,
			basic_salary, contract_end_date, project_assignment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			position = excluded.position,
			category = excluded.category,
			basic_salary = excluded.basic_salary,
			contract_end_date = excluded.contract_end_date,
			project_assignment = excluded.project_assignment,
			updated_at = excluded.updated_at`,
		int(e.ID), e.FirstName, e.LastName, e.Position, string(e.Category),
		e.BasicSalary.Value.String(), e.ContractEndDate, e.ProjectAssignment, now, now,
	)
	return err
}

// GetEmployee returns the record for the given id, or ErrEmployeeNotFound.
func (s *Store) GetEmployee(ctx context.Context, id payroll.EmployeeID) (*payroll.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, position, category,
			basic_salary, contract_end_date, project_assignment
		FROM employees WHERE id = ?`, int(id))

	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, payroll.ErrEmployeeNotFound
	}
	return e, err
}

// ListEmployees returns all records ordered by id.
func (s *Store) ListEmployees(ctx context.Context) ([]*payroll.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, position, category,
			basic_salary, contract_end_date, project_assignment
		FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*payroll.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEmployee rebuilds a record through the payroll factory so derived rates
// and allowance entitlements are recomputed, not trusted from storage.
func scanEmployee(row rowScanner) (*payroll.Employee, error) {
	var (
		id                            int
		firstName, lastName, position string
		category, salaryStr           string
		contractEnd, project          sql.NullString
	)
	if err := row.Scan(&id, &firstName, &lastName, &position, &category,
		&salaryStr, &contractEnd, &project); err != nil {
		return nil, err
	}

	salary, err := decimal.NewFromString(salaryStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt basic_salary for employee %d: %w", id, err)
	}

	e, err := payroll.NewEmployee(category, payroll.EmployeeID(id),
		firstName, lastName, position, payroll.Money{Value: salary})
	if err != nil {
		return nil, fmt.Errorf("corrupt record for employee %d: %w", id, err)
	}
	e.ContractEndDate = contractEnd.String
	e.ProjectAssignment = project.String
	return e, nil
}

// =============================================================================
// PAYSLIPS
// =============================================================================

// PayslipRecord is a persisted pay computation result.
type PayslipRecord struct {
	ID        string
	CreatedAt time.Time
	payroll.Payslip
}

// SavePayslip persists a computed payslip and returns the stored record.
func (s *Store) SavePayslip(ctx context.Context, slip payroll.Payslip) (*PayslipRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &PayslipRecord{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Payslip:   slip,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO payslips (id, employee_id, period_start, period_end,
			days_worked, overtime_hours,
			gross_pay, overtime_pay,
			sss, philhealth, pagibig, withholding_tax, total_deductions,
			rice_subsidy, phone_allowance, clothing_allowance, total_allowances,
			net_pay, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, int(slip.EmployeeID),
		slip.PeriodStart.Format("2006-01-02"), slip.PeriodEnd.Format("2006-01-02"),
		slip.DaysWorked, slip.OvertimeHours,
		slip.GrossPay.Value.String(), slip.OvertimePay.Value.String(),
		slip.SSS.Value.String(), slip.PhilHealth.Value.String(),
		slip.PagIBIG.Value.String(), slip.WithholdingTax.Value.String(),
		slip.TotalDeductions.Value.String(),
		slip.RiceSubsidy.Value.String(), slip.PhoneAllowance.Value.String(),
		slip.ClothingAllowance.Value.String(), slip.TotalAllowances.Value.String(),
		slip.NetPay.Value.String(),
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetPayslip returns one stored payslip, or ErrPayslipNotFound.
func (s *Store) GetPayslip(ctx context.Context, id string) (*PayslipRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, payslipSelect+` WHERE id = ?`, id)
	rec, err := scanPayslip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, payroll.ErrPayslipNotFound
	}
	return rec, err
}

// ListPayslips returns an employee's payslips, most recent period first.
func (s *Store) ListPayslips(ctx context.Context, employeeID payroll.EmployeeID) ([]*PayslipRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		payslipSelect+` WHERE employee_id = ? ORDER BY period_start DESC, created_at DESC`,
		int(employeeID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*PayslipRecord
	for rows.Next() {
		rec, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

const payslipSelect = `
	SELECT id, employee_id, period_start, period_end,
		days_worked, overtime_hours,
		gross_pay, overtime_pay,
		sss, philhealth, pagibig, withholding_tax, total_deductions,
		rice_subsidy, phone_allowance, clothing_allowance, total_allowances,
		net_pay, created_at
	FROM payslips`

func scanPayslip(row rowScanner) (*PayslipRecord, error) {
	var (
		rec                    PayslipRecord
		employeeID             int
		periodStart, periodEnd string
		createdAt              string
		amounts                [12]string
	)
	if err := row.Scan(&rec.ID, &employeeID, &periodStart, &periodEnd,
		&rec.DaysWorked, &rec.OvertimeHours,
		&amounts[0], &amounts[1],
		&amounts[2], &amounts[3], &amounts[4], &amounts[5], &amounts[6],
		&amounts[7], &amounts[8], &amounts[9], &amounts[10],
		&amounts[11], &createdAt); err != nil {
		return nil, err
	}

	rec.EmployeeID = payroll.EmployeeID(employeeID)

	fields := []*payroll.Money{
		&rec.GrossPay, &rec.OvertimePay,
		&rec.SSS, &rec.PhilHealth, &rec.PagIBIG, &rec.WithholdingTax, &rec.TotalDeductions,
		&rec.RiceSubsidy, &rec.PhoneAllowance, &rec.ClothingAllowance, &rec.TotalAllowances,
		&rec.NetPay,
	}
	for i, f := range fields {
		d, err := decimal.NewFromString(amounts[i])
		if err != nil {
			return nil, fmt.Errorf("corrupt amount in payslip %s: %w", rec.ID, err)
		}
		*f = payroll.Money{Value: d}
	}

	var err error
	if rec.PeriodStart, err = time.Parse("2006-01-02", periodStart); err != nil {
		return nil, fmt.Errorf("corrupt period_start in payslip %s: %w", rec.ID, err)
	}
	if rec.PeriodEnd, err = time.Parse("2006-01-02", periodEnd); err != nil {
		return nil, fmt.Errorf("corrupt period_end in payslip %s: %w", rec.ID, err)
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("corrupt created_at in payslip %s: %w", rec.ID, err)
	}

	return &rec, nil
}
