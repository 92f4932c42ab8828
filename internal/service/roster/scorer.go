package roster

import (
	"time"

	"github.com/wardline/rostering-backend-go/internal/domain/roster"
	"github.com/wardline/rostering-backend-go/internal/pkg/random"
)

// lookbackDays is the recent-pattern window the scorer inspects.
const lookbackDays = 7

const (
	baseScore = 100.0

	// An employee already booked on the candidate date is disqualified
	// outright, but still ranked so all-disqualified buckets stay
	// deterministic.
	disqualifiedScore = -1000.0

	fairnessPenaltyPerShift = 5.0

	thirdNightPenalty     = 80.0
	secondNightPenalty    = 20.0
	nightLoadPenalty      = 10.0
	weekendLoadPenalty    = 15.0
	nightToDayPenalty     = 50.0
	nightSaturatedPenalty = 30.0
	sameShiftBonus        = 10.0
	longRunPenalty        = 40.0
	mentorshipBonus       = 15.0

	tieBreakSpread = 5.0

	minRestHours     = 11.0
	shortRestPenalty = 100.0
)

// scorer computes candidate suitability. Pure apart from the injected
// random source, which contributes only the ±5 tie-break.
type scorer struct {
	rng  random.Source
	opts roster.GenerationOptions
}

// candidate carries everything the scorer may look at for one employee on
// one date/shift.
type candidate struct {
	employeeID string
	skillLevel int

	date      time.Time
	shift     roster.ShiftType
	isWeekend bool

	workload      roster.EmployeeWorkload
	assignedToday bool

	// lookback holds the effective shift per day for the lookbackDays days
	// before the candidate date, oldest first, off filled in.
	lookback [lookbackDays]roster.ShiftType

	// juniorSelected reports whether the shift under assembly already holds
	// a level-1 selection.
	juniorSelected bool
}

func (s *scorer) score(c candidate) float64 {
	score := baseScore

	if c.assignedToday {
		score = disqualifiedScore
	}

	if s.opts.EnforceFairness {
		score -= fairnessPenaltyPerShift * float64(c.workload.TotalShifts)
	}

	if c.shift == roster.ShiftNight {
		switch {
		case c.workload.ConsecutiveNights >= 2:
			score -= thirdNightPenalty
		case c.workload.ConsecutiveNights == 1:
			score -= secondNightPenalty
		}
		score -= nightLoadPenalty * float64(c.workload.NightShifts)
	}

	if c.isWeekend {
		score -= weekendLoadPenalty * float64(c.workload.WeekendShifts)
	}

	score += s.patternScore(c)

	if s.opts.EnforceMentorshipPairing && c.juniorSelected && c.skillLevel >= 3 {
		score += mentorshipBonus
	}

	// Uniform tie-break in [-5, +5).
	score += s.rng.Float64()*2*tieBreakSpread - tieBreakSpread

	if s.restTooShort(c) {
		score -= shortRestPenalty
	}

	return score
}

// patternScore evaluates the 7-day lookback window.
func (s *scorer) patternScore(c candidate) float64 {
	score := 0.0

	previous := c.lookback[lookbackDays-1]

	// A day shift straight after a night shift leaves no circadian recovery.
	if previous == roster.ShiftNight && c.shift == roster.ShiftDay {
		score -= nightToDayPenalty
	}

	if c.shift == roster.ShiftNight {
		nights := 0
		for _, sh := range c.lookback {
			if sh == roster.ShiftNight {
				nights++
			}
		}
		if nights >= 2 {
			score -= nightSaturatedPenalty
		}
	}

	// Repeating yesterday's shift keeps the rotation consistent.
	if previous.IsWorking() && c.shift == previous {
		score += sameShiftBonus
	}

	consecutive := 0
	for i := lookbackDays - 1; i >= 0; i-- {
		if !c.lookback[i].IsWorking() {
			break
		}
		consecutive++
	}
	if consecutive >= 5 && c.shift.IsWorking() {
		score -= longRunPenalty
	}

	return score
}

func (s *scorer) restTooShort(c candidate) bool {
	if c.workload.LastShiftDate == nil {
		return false
	}
	lastEnd := roster.ShiftEnd(*c.workload.LastShiftDate, c.workload.LastShiftType)
	nextStart := roster.ShiftStart(c.date, c.shift)
	return nextStart.Sub(lastEnd).Hours() < minRestHours
}
