package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRegular(t *testing.T, store *sqlite.Store, id payroll.EmployeeID, salary float64) *payroll.Employee {
	t.Helper()
	e, err := payroll.NewEmployee("Regular", id, "Maria", "Santos", "Accountant", payroll.NewMoney(salary))
	require.NoError(t, err)
	require.NoError(t, store.SaveEmployee(context.Background(), e))
	return e
}

// =============================================================================
// EMPLOYEE PERSISTENCE
// =============================================================================

func TestStore_EmployeeRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saveRegular(t, store, 10032, 50000)

	got, err := store.GetEmployee(ctx, 10032)
	require.NoError(t, err)

	assert.Equal(t, payroll.EmployeeID(10032), got.ID)
	assert.Equal(t, "Maria", got.FirstName)
	assert.Equal(t, payroll.CategoryRegular, got.Category)
	assert.InDelta(t, 50000, got.BasicSalary.Float64(), 0.01)

	// Derived rates and entitlements are recomputed on load.
	assert.InDelta(t, 2272.73, got.DailyRate.Float64(), 0.01)
	assert.InDelta(t, 4500, got.TotalAllowances().Float64(), 0.01)
}

func TestStore_ContractualAttributesPersisted(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	e, err := payroll.NewContractualEmployee(20017, "Jose", "Reyes", "Consultant",
		payroll.NewMoney(60000), "2026-12-31", "Data Migration")
	require.NoError(t, err)
	require.NoError(t, store.SaveEmployee(ctx, e))

	got, err := store.GetEmployee(ctx, 20017)
	require.NoError(t, err)
	assert.Equal(t, payroll.CategoryContractual, got.Category)
	assert.Equal(t, "2026-12-31", got.ContractEndDate)
	assert.Equal(t, "Data Migration", got.ProjectAssignment)
	assert.True(t, got.RiceSubsidy.IsZero())
}

func TestStore_GetEmployee_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetEmployee(context.Background(), 999)
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
	assert.True(t, payroll.IsNotFound(err))
}

func TestStore_SaveEmployee_Supersedes(t *testing.T) {
	// Saving the same id again replaces the record instead of failing.
	store := newTestStore(t)
	ctx := context.Background()

	e := saveRegular(t, store, 10032, 50000)
	require.NoError(t, e.SetBasicSalary(payroll.NewMoney(55000)))
	require.NoError(t, store.SaveEmployee(ctx, e))

	got, err := store.GetEmployee(ctx, 10032)
	require.NoError(t, err)
	assert.InDelta(t, 55000, got.BasicSalary.Float64(), 0.01)

	all, err := store.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_ListEmployees_OrderedByID(t *testing.T) {
	store := newTestStore(t)

	saveRegular(t, store, 30, 20000)
	saveRegular(t, store, 10, 30000)
	saveRegular(t, store, 20, 40000)

	all, err := store.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, payroll.EmployeeID(10), all[0].ID)
	assert.Equal(t, payroll.EmployeeID(20), all[1].ID)
	assert.Equal(t, payroll.EmployeeID(30), all[2].ID)
}

// =============================================================================
// PAYSLIP PERSISTENCE
// =============================================================================

func TestStore_PayslipRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	e := saveRegular(t, store, 10032, 50000)

	slip, err := payroll.Compute(e, payroll.PayInput{
		PeriodStart:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:     time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		DaysWorked:    22,
		OvertimeHours: 8,
	})
	require.NoError(t, err)

	rec, err := store.SavePayslip(ctx, slip)
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)

	got, err := store.GetPayslip(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, payroll.EmployeeID(10032), got.EmployeeID)
	assert.Equal(t, 22, got.DaysWorked)
	assert.True(t, got.GrossPay.Equal(slip.GrossPay), "gross pay lost precision: %s vs %s", got.GrossPay, slip.GrossPay)
	assert.True(t, got.NetPay.Equal(slip.NetPay))
	assert.True(t, got.WithholdingTax.Equal(slip.WithholdingTax))

	// The net-pay identity must survive the round-trip.
	net := got.GrossPay.Add(got.TotalAllowances).Sub(got.TotalDeductions)
	assert.True(t, got.NetPay.Equal(net))
}

func TestStore_GetPayslip_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetPayslip(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
}

func TestStore_ListPayslips_MostRecentFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	e := saveRegular(t, store, 10032, 50000)

	for _, day := range []int{1, 16} {
		slip, err := payroll.Compute(e, payroll.PayInput{
			PeriodStart: time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC),
			PeriodEnd:   time.Date(2025, time.June, day+14, 0, 0, 0, 0, time.UTC),
			DaysWorked:  11,
		})
		require.NoError(t, err)
		_, err = store.SavePayslip(ctx, slip)
		require.NoError(t, err)
	}

	records, err := store.ListPayslips(ctx, 10032)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 16, records[0].PeriodStart.Day())
	assert.Equal(t, 1, records[1].PeriodStart.Day())

	// Unknown employee: empty history, no error.
	none, err := store.ListPayslips(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
