package roster

import "time"

// ShiftType is one of the three working shifts or "off" for a non-working day.
type ShiftType string

const (
	ShiftDay     ShiftType = "day"
	ShiftEvening ShiftType = "evening"
	ShiftNight   ShiftType = "night"
	ShiftOff     ShiftType = "off"
)

// WorkingShiftValues lists the shift types a coverage requirement may name.
var WorkingShiftValues = []string{
	string(ShiftDay),
	string(ShiftEvening),
	string(ShiftNight),
}

func (s ShiftType) IsWorking() bool {
	return s == ShiftDay || s == ShiftEvening || s == ShiftNight
}

// Ward shift clock. Night runs across midnight and ends the next morning.
var shiftStartHour = map[ShiftType]int{
	ShiftDay:     7,
	ShiftEvening: 15,
	ShiftNight:   23,
}

// ShiftStart returns the wall-clock start of a shift on the given date.
func ShiftStart(date time.Time, s ShiftType) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), shiftStartHour[s], 0, 0, 0, date.Location())
}

// ShiftEnd returns the wall-clock end of a shift on the given date. All
// shifts run 8 hours, so the night shift ends at 07:00 the following day.
func ShiftEnd(date time.Time, s ShiftType) time.Time {
	return ShiftStart(date, s).Add(8 * time.Hour)
}

// LevelRequirement is the required headcount at one skill level.
type LevelRequirement struct {
	Level int
	Count int
}

// CoverageRequirement is the minimum staffing for one date and shift.
type CoverageRequirement struct {
	Date              time.Time
	ShiftType         ShiftType
	LevelRequirements []LevelRequirement
}

// ScheduleAssignment is one filled date/shift slot. Immutable once emitted
// by the engine; EmployeeIDs keeps selection order (best score first).
type ScheduleAssignment struct {
	Date        time.Time
	ShiftType   ShiftType
	EmployeeIDs []string
}

// EmployeeWorkload is one ledger entry. The assignment driver is its only
// writer and always mutates it in date-ascending order.
type EmployeeWorkload struct {
	EmployeeID        string
	TotalShifts       int
	NightShifts       int
	WeekendShifts     int
	ConsecutiveNights int
	LastShiftDate     *time.Time
	LastShiftType     ShiftType
}

// CoverageGap reports a slot the engine could not fill to the requested
// headcount. Under-coverage is a reportable condition, never an error.
type CoverageGap struct {
	Date      time.Time
	ShiftType ShiftType
	Level     int
	Requested int
	Filled    int
}

// GenerationOptions tune the engine per run.
type GenerationOptions struct {
	// EnforceFairness keeps the workload-spreading penalty on. Default true.
	EnforceFairness bool
	// EnforceMentorshipPairing nudges senior staff onto shifts that already
	// hold a junior selection.
	EnforceMentorshipPairing bool
	// PrioritizePreferences is accepted for API compatibility; no preference
	// data reaches the engine yet.
	PrioritizePreferences bool
}

func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{EnforceFairness: true}
}
