package patternrisk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wardline/rostering-backend-go/internal/domain/analysis"
	"github.com/wardline/rostering-backend-go/internal/domain/roster"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// seq builds a chronological shift sequence starting at the given date, one
// entry per day.
func seq(start string, shifts ...roster.ShiftType) []analysis.ShiftDay {
	days := make([]analysis.ShiftDay, 0, len(shifts))
	for i, sh := range shifts {
		days = append(days, analysis.ShiftDay{
			Date:  day(start).AddDate(0, 0, i),
			Shift: sh,
		})
	}
	return days
}

func TestTripleRotationDetector(t *testing.T) {
	t.Parallel()

	issues := tripleRotationDetector{}.Detect(
		seq("2025-03-03", roster.ShiftDay, roster.ShiftEvening, roster.ShiftNight),
	)

	require.Len(t, issues, 1)
	assert.Equal(t, analysis.IssueTripleShiftRotation, issues[0].Type)
	assert.Equal(t, analysis.SeverityCritical, issues[0].Severity)
	assert.InDelta(t, 95, issues[0].Impact, 0.001)
	assert.Equal(t, []string{"2025-03-03", "2025-03-04", "2025-03-05"}, issues[0].Dates)
}

func TestTripleRotationDetector_AnyOrderWithinWindow(t *testing.T) {
	t.Parallel()

	issues := tripleRotationDetector{}.Detect(
		seq("2025-03-03", roster.ShiftNight, roster.ShiftDay, roster.ShiftEvening),
	)

	assert.Len(t, issues, 1)
}

func TestTripleRotationDetector_SlowRotationIsFine(t *testing.T) {
	t.Parallel()

	issues := tripleRotationDetector{}.Detect(seq("2025-03-03",
		roster.ShiftDay, roster.ShiftDay,
		roster.ShiftEvening, roster.ShiftEvening,
		roster.ShiftNight,
	))

	assert.Empty(t, issues)
}

func TestTripleRotationDetector_LeaveMasksTheShift(t *testing.T) {
	t.Parallel()

	days := seq("2025-03-03", roster.ShiftDay, roster.ShiftEvening, roster.ShiftNight)
	days[1].OnLeave = true

	assert.Empty(t, tripleRotationDetector{}.Detect(days))
}

func TestAlternatingChaosDetector(t *testing.T) {
	t.Parallel()

	issues := alternatingChaosDetector{}.Detect(seq("2025-03-03",
		roster.ShiftDay, roster.ShiftEvening, roster.ShiftNight,
		roster.ShiftOff, roster.ShiftDay,
	))

	require.Len(t, issues, 1)
	assert.Equal(t, analysis.IssueAlternatingChaos, issues[0].Type)
	assert.Equal(t, analysis.SeverityCritical, issues[0].Severity)
	assert.InDelta(t, 90, issues[0].Impact, 0.001)
	// Only the working days are reported.
	assert.Len(t, issues[0].Dates, 4)
}

func TestAlternatingChaosDetector_RepeatedShiftBreaksThePattern(t *testing.T) {
	t.Parallel()

	issues := alternatingChaosDetector{}.Detect(seq("2025-03-03",
		roster.ShiftDay, roster.ShiftDay, roster.ShiftEvening,
		roster.ShiftNight, roster.ShiftOff,
	))

	assert.Empty(t, issues)
}

func TestAlternatingChaosDetector_TwoShiftTypesAreFine(t *testing.T) {
	t.Parallel()

	issues := alternatingChaosDetector{}.Detect(seq("2025-03-03",
		roster.ShiftDay, roster.ShiftEvening, roster.ShiftDay,
		roster.ShiftEvening, roster.ShiftDay,
	))

	assert.Empty(t, issues)
}

func TestExcessiveNightsDetector(t *testing.T) {
	t.Parallel()

	t.Run("four nights", func(t *testing.T) {
		issues := excessiveNightsDetector{}.Detect(seq("2025-03-03",
			roster.ShiftNight, roster.ShiftNight, roster.ShiftNight, roster.ShiftNight,
		))

		require.Len(t, issues, 1)
		assert.Equal(t, analysis.IssueExcessiveNights, issues[0].Type)
		assert.Equal(t, analysis.SeverityDanger, issues[0].Severity)
		assert.InDelta(t, 70, issues[0].Impact, 0.001)
		assert.Len(t, issues[0].Dates, 4)
	})

	t.Run("impact grows with streak", func(t *testing.T) {
		issues := excessiveNightsDetector{}.Detect(seq("2025-03-03",
			roster.ShiftNight, roster.ShiftNight, roster.ShiftNight,
			roster.ShiftNight, roster.ShiftNight, roster.ShiftNight,
		))

		require.Len(t, issues, 1)
		assert.InDelta(t, 80, issues[0].Impact, 0.001)
	})

	t.Run("three nights are tolerated", func(t *testing.T) {
		issues := excessiveNightsDetector{}.Detect(seq("2025-03-03",
			roster.ShiftNight, roster.ShiftNight, roster.ShiftNight, roster.ShiftOff,
		))

		assert.Empty(t, issues)
	})

	t.Run("a day off splits the streak", func(t *testing.T) {
		issues := excessiveNightsDetector{}.Detect(seq("2025-03-03",
			roster.ShiftNight, roster.ShiftNight, roster.ShiftOff,
			roster.ShiftNight, roster.ShiftNight,
		))

		assert.Empty(t, issues)
	})
}

func TestDoubleWithoutRestDetector(t *testing.T) {
	t.Parallel()

	t.Run("day into evening", func(t *testing.T) {
		issues := doubleWithoutRestDetector{}.Detect(seq("2025-03-03",
			roster.ShiftDay, roster.ShiftEvening, roster.ShiftOff, roster.ShiftDay,
		))

		require.Len(t, issues, 1)
		assert.Equal(t, analysis.IssueDoubleWithoutRest, issues[0].Type)
		assert.InDelta(t, 75, issues[0].Impact, 0.001)
	})

	t.Run("evening into night", func(t *testing.T) {
		issues := doubleWithoutRestDetector{}.Detect(seq("2025-03-03",
			roster.ShiftEvening, roster.ShiftNight, roster.ShiftOff, roster.ShiftEvening,
		))

		assert.Len(t, issues, 1)
	})

	t.Run("two rest days clear the double", func(t *testing.T) {
		issues := doubleWithoutRestDetector{}.Detect(seq("2025-03-03",
			roster.ShiftDay, roster.ShiftEvening, roster.ShiftOff, roster.ShiftOff,
		))

		assert.Empty(t, issues)
	})

	t.Run("backward rotation is not a double", func(t *testing.T) {
		issues := doubleWithoutRestDetector{}.Detect(seq("2025-03-03",
			roster.ShiftEvening, roster.ShiftDay, roster.ShiftOff, roster.ShiftDay,
		))

		assert.Empty(t, issues)
	})
}

func TestWeekendHeavyDetector(t *testing.T) {
	t.Parallel()

	// 2025-03-07 and 2025-03-14 are Fridays.
	days := seq("2025-03-03",
		roster.ShiftOff, roster.ShiftOff, roster.ShiftOff, roster.ShiftOff,
		roster.ShiftNight, // Fri 03-07
		roster.ShiftOff, roster.ShiftOff, roster.ShiftOff, roster.ShiftOff,
		roster.ShiftOff, roster.ShiftOff,
		roster.ShiftNight, // Fri 03-14
	)

	issues := weekendHeavyDetector{}.Detect(days)

	require.Len(t, issues, 1)
	assert.Equal(t, analysis.IssueWeekendHeavy, issues[0].Type)
	assert.Equal(t, analysis.SeverityWarning, issues[0].Severity)
	assert.InDelta(t, 60, issues[0].Impact, 0.001)
	assert.Equal(t, []string{"2025-03-07", "2025-03-14"}, issues[0].Dates)
}

func TestWeekendHeavyDetector_SingleFridayNightIsFine(t *testing.T) {
	t.Parallel()

	days := seq("2025-03-03",
		roster.ShiftOff, roster.ShiftOff, roster.ShiftOff, roster.ShiftOff,
		roster.ShiftNight, // Fri 03-07
		roster.ShiftOff, roster.ShiftOff,
	)

	assert.Empty(t, weekendHeavyDetector{}.Detect(days))
}

func TestNightRatioDetector(t *testing.T) {
	t.Parallel()

	t.Run("two thirds nights", func(t *testing.T) {
		issues := nightRatioDetector{}.Detect(seq("2025-03-03",
			roster.ShiftNight, roster.ShiftNight, roster.ShiftDay, roster.ShiftOff,
		))

		require.Len(t, issues, 1)
		assert.Equal(t, analysis.IssueNightRatio, issues[0].Type)
		assert.InDelta(t, 63.33, issues[0].Impact, 0.01)
	})

	t.Run("forty percent is the boundary", func(t *testing.T) {
		issues := nightRatioDetector{}.Detect(seq("2025-03-03",
			roster.ShiftNight, roster.ShiftNight, roster.ShiftDay,
			roster.ShiftDay, roster.ShiftEvening,
		))

		assert.Empty(t, issues)
	})

	t.Run("no working days", func(t *testing.T) {
		issues := nightRatioDetector{}.Detect(seq("2025-03-03",
			roster.ShiftOff, roster.ShiftOff,
		))

		assert.Empty(t, issues)
	})
}

func TestClampImpact(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, clampImpact(-5))
	assert.Equal(t, 42.5, clampImpact(42.5))
	assert.Equal(t, 100.0, clampImpact(130))
}
