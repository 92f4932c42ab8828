package roster

import (
	"time"

	"github.com/wardline/rostering-backend-go/internal/domain/employee"
	"github.com/wardline/rostering-backend-go/internal/domain/roster"
)

// Ledger tracks per-employee workload counters over one scheduling run.
// The engine is its only writer and always updates in date-ascending order,
// so a ledger must never be shared between concurrent runs.
type Ledger struct {
	entries map[string]*roster.EmployeeWorkload
}

// NewLedger creates a zeroed entry for every employee in the run.
func NewLedger(employees []employee.Employee) *Ledger {
	entries := make(map[string]*roster.EmployeeWorkload, len(employees))
	for _, emp := range employees {
		entries[emp.ID] = &roster.EmployeeWorkload{EmployeeID: emp.ID}
	}
	return &Ledger{entries: entries}
}

// Update records one committed working shift. Calling it with an unknown
// employee id is a caller bug; the update is silently dropped rather than
// corrupting another entry.
func (l *Ledger) Update(employeeID string, shift roster.ShiftType, isWeekend bool, date time.Time) {
	w, ok := l.entries[employeeID]
	if !ok {
		return
	}

	w.TotalShifts++

	if shift == roster.ShiftNight {
		w.NightShifts++
		if w.LastShiftType == roster.ShiftNight && w.LastShiftDate != nil && sameDay(w.LastShiftDate.AddDate(0, 0, 1), date) {
			w.ConsecutiveNights++
		} else {
			w.ConsecutiveNights = 1
		}
	} else {
		w.ConsecutiveNights = 0
	}

	if isWeekend {
		w.WeekendShifts++
	}

	d := date
	w.LastShiftDate = &d
	w.LastShiftType = shift
}

// Get returns a copy of one entry. The zero value is returned for unknown ids.
func (l *Ledger) Get(employeeID string) roster.EmployeeWorkload {
	if w, ok := l.entries[employeeID]; ok {
		return *w
	}
	return roster.EmployeeWorkload{EmployeeID: employeeID}
}

// Snapshot copies every entry, keyed by employee id.
func (l *Ledger) Snapshot() map[string]roster.EmployeeWorkload {
	out := make(map[string]roster.EmployeeWorkload, len(l.entries))
	for id, w := range l.entries {
		out[id] = *w
	}
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
