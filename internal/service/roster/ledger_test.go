package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wardline/rostering-backend-go/internal/domain/employee"
	"github.com/wardline/rostering-backend-go/internal/domain/roster"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testEmployees(ids ...string) []employee.Employee {
	var emps []employee.Employee
	for _, id := range ids {
		emps = append(emps, employee.Employee{ID: id, FullName: "Employee " + id, SkillLevel: 1})
	}
	return emps
}

func TestLedger_InitZeroed(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(testEmployees("a", "b"))

	w := ledger.Get("a")
	assert.Equal(t, "a", w.EmployeeID)
	assert.Zero(t, w.TotalShifts)
	assert.Zero(t, w.NightShifts)
	assert.Zero(t, w.WeekendShifts)
	assert.Zero(t, w.ConsecutiveNights)
	assert.Nil(t, w.LastShiftDate)
}

func TestLedger_UpdateCounters(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(testEmployees("a"))

	ledger.Update("a", roster.ShiftDay, false, date("2025-03-03"))
	ledger.Update("a", roster.ShiftNight, false, date("2025-03-04"))
	ledger.Update("a", roster.ShiftNight, true, date("2025-03-08"))

	w := ledger.Get("a")
	assert.Equal(t, 3, w.TotalShifts)
	assert.Equal(t, 2, w.NightShifts)
	assert.Equal(t, 1, w.WeekendShifts)
	assert.Equal(t, roster.ShiftNight, w.LastShiftType)
	assert.Equal(t, date("2025-03-08"), *w.LastShiftDate)
}

func TestLedger_ConsecutiveNightsGrowOnAdjacentDays(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(testEmployees("a"))

	ledger.Update("a", roster.ShiftNight, false, date("2025-03-03"))
	assert.Equal(t, 1, ledger.Get("a").ConsecutiveNights)

	ledger.Update("a", roster.ShiftNight, false, date("2025-03-04"))
	assert.Equal(t, 2, ledger.Get("a").ConsecutiveNights)

	ledger.Update("a", roster.ShiftNight, false, date("2025-03-05"))
	assert.Equal(t, 3, ledger.Get("a").ConsecutiveNights)
}

func TestLedger_ConsecutiveNightsResetOnGap(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(testEmployees("a"))

	ledger.Update("a", roster.ShiftNight, false, date("2025-03-03"))
	ledger.Update("a", roster.ShiftNight, false, date("2025-03-04"))

	// A free day between nights breaks the streak even though the last
	// shift type is still night.
	ledger.Update("a", roster.ShiftNight, false, date("2025-03-06"))
	assert.Equal(t, 1, ledger.Get("a").ConsecutiveNights)
}

func TestLedger_ConsecutiveNightsResetOnNonNight(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(testEmployees("a"))

	ledger.Update("a", roster.ShiftNight, false, date("2025-03-03"))
	ledger.Update("a", roster.ShiftNight, false, date("2025-03-04"))
	ledger.Update("a", roster.ShiftEvening, false, date("2025-03-05"))

	assert.Equal(t, 0, ledger.Get("a").ConsecutiveNights)
}

func TestLedger_UnknownEmployeeIgnored(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(testEmployees("a"))

	ledger.Update("ghost", roster.ShiftDay, false, date("2025-03-03"))

	assert.Zero(t, ledger.Get("a").TotalShifts)
	assert.Zero(t, ledger.Get("ghost").TotalShifts)
}
