package patternrisk

import (
	"fmt"
	"time"

	"github.com/wardline/rostering-backend-go/internal/domain/analysis"
	"github.com/wardline/rostering-backend-go/internal/domain/roster"
)

// detector is one independent hazard rule over a chronological shift
// sequence. New rules plug into the analyzer without touching the
// aggregation logic.
type detector interface {
	Detect(days []analysis.ShiftDay) []analysis.PatternIssue
}

// defaultDetectors returns the six built-in hazard rules.
func defaultDetectors() []detector {
	return []detector{
		tripleRotationDetector{},
		alternatingChaosDetector{},
		excessiveNightsDetector{},
		doubleWithoutRestDetector{},
		weekendHeavyDetector{},
		nightRatioDetector{},
	}
}

// tripleRotationDetector finds 3-day windows working all of day, evening
// and night in any order. The most hazardous rotation in 24/7 shift work.
type tripleRotationDetector struct{}

func (tripleRotationDetector) Detect(days []analysis.ShiftDay) []analysis.PatternIssue {
	var issues []analysis.PatternIssue
	for i := 0; i+3 <= len(days); i++ {
		window := days[i : i+3]
		seen := make(map[roster.ShiftType]bool, 3)
		for _, d := range window {
			seen[d.EffectiveShift()] = true
		}
		if seen[roster.ShiftDay] && seen[roster.ShiftEvening] && seen[roster.ShiftNight] {
			issues = append(issues, analysis.PatternIssue{
				Type:        analysis.IssueTripleShiftRotation,
				Severity:    analysis.SeverityCritical,
				Description: "worked day, evening and night shifts within 3 days",
				Dates:       dateKeys(window),
				Impact:      95,
			})
		}
	}
	return issues
}

// alternatingChaosDetector finds 5-day windows with at least 3 working
// days across at least 3 shift types where no two adjacent working days
// share a shift type.
type alternatingChaosDetector struct{}

func (alternatingChaosDetector) Detect(days []analysis.ShiftDay) []analysis.PatternIssue {
	var issues []analysis.PatternIssue
	for i := 0; i+5 <= len(days); i++ {
		window := days[i : i+5]

		var working []roster.ShiftType
		var workingDays []analysis.ShiftDay
		for _, d := range window {
			if d.Working() {
				working = append(working, d.EffectiveShift())
				workingDays = append(workingDays, d)
			}
		}
		if len(working) < 3 {
			continue
		}

		distinct := make(map[roster.ShiftType]bool, 3)
		for _, sh := range working {
			distinct[sh] = true
		}
		if len(distinct) < 3 {
			continue
		}

		alternating := true
		for j := 1; j < len(working); j++ {
			if working[j] == working[j-1] {
				alternating = false
				break
			}
		}
		if !alternating {
			continue
		}

		issues = append(issues, analysis.PatternIssue{
			Type:        analysis.IssueAlternatingChaos,
			Severity:    analysis.SeverityCritical,
			Description: "erratic shift alternation across 5 days with no repeated rotation",
			Dates:       dateKeys(workingDays),
			Impact:      90,
		})
	}
	return issues
}

// excessiveNightsDetector reports night streaks of 4 days or more.
// Impact grows with the streak length.
type excessiveNightsDetector struct{}

func (excessiveNightsDetector) Detect(days []analysis.ShiftDay) []analysis.PatternIssue {
	var issues []analysis.PatternIssue

	streakStart := -1
	flush := func(end int) {
		if streakStart < 0 {
			return
		}
		streak := end - streakStart
		if streak >= 4 {
			issues = append(issues, analysis.PatternIssue{
				Type:        analysis.IssueExcessiveNights,
				Severity:    analysis.SeverityDanger,
				Description: fmt.Sprintf("%d consecutive night shifts", streak),
				Dates:       dateKeys(days[streakStart:end]),
				Impact:      clampImpact(70 + 5*float64(streak-4)),
			})
		}
		streakStart = -1
	}

	for i, d := range days {
		if d.EffectiveShift() == roster.ShiftNight {
			if streakStart < 0 {
				streakStart = i
			}
			continue
		}
		flush(i)
	}
	flush(len(days))

	return issues
}

// doubleWithoutRestDetector finds a forward double (day→evening or
// evening→night) followed by exactly one day off and straight back to work.
type doubleWithoutRestDetector struct{}

func (doubleWithoutRestDetector) Detect(days []analysis.ShiftDay) []analysis.PatternIssue {
	var issues []analysis.PatternIssue
	for i := 0; i+4 <= len(days); i++ {
		first := days[i].EffectiveShift()
		second := days[i+1].EffectiveShift()

		double := (first == roster.ShiftDay && second == roster.ShiftEvening) ||
			(first == roster.ShiftEvening && second == roster.ShiftNight)
		if !double {
			continue
		}
		if days[i+2].Working() || !days[i+3].Working() {
			continue
		}

		issues = append(issues, analysis.PatternIssue{
			Type:        analysis.IssueDoubleWithoutRest,
			Severity:    analysis.SeverityDanger,
			Description: "back-to-back shift escalation with only a single day of rest",
			Dates:       dateKeys(days[i : i+4]),
			Impact:      75,
		})
	}
	return issues
}

// weekendHeavyDetector flags two or more Friday night shifts in the window.
type weekendHeavyDetector struct{}

func (weekendHeavyDetector) Detect(days []analysis.ShiftDay) []analysis.PatternIssue {
	var fridays []analysis.ShiftDay
	for _, d := range days {
		if d.Date.Weekday() == time.Friday && d.EffectiveShift() == roster.ShiftNight {
			fridays = append(fridays, d)
		}
	}
	if len(fridays) < 2 {
		return nil
	}
	return []analysis.PatternIssue{{
		Type:        analysis.IssueWeekendHeavy,
		Severity:    analysis.SeverityWarning,
		Description: fmt.Sprintf("%d Friday night shifts in the period", len(fridays)),
		Dates:       dateKeys(fridays),
		Impact:      60,
	}}
}

// nightRatioDetector flags sequences where more than 40% of working days
// are night shifts.
type nightRatioDetector struct{}

func (nightRatioDetector) Detect(days []analysis.ShiftDay) []analysis.PatternIssue {
	workingDays := 0
	nights := 0
	var nightDays []analysis.ShiftDay
	for _, d := range days {
		if !d.Working() {
			continue
		}
		workingDays++
		if d.EffectiveShift() == roster.ShiftNight {
			nights++
			nightDays = append(nightDays, d)
		}
	}
	if workingDays == 0 {
		return nil
	}

	ratio := float64(nights) / float64(workingDays)
	if ratio <= 0.4 {
		return nil
	}
	return []analysis.PatternIssue{{
		Type:        analysis.IssueNightRatio,
		Severity:    analysis.SeverityWarning,
		Description: fmt.Sprintf("night shifts make up %.0f%% of working days", ratio*100),
		Dates:       dateKeys(nightDays),
		Impact:      clampImpact(50 + (ratio-0.4)*50),
	}}
}

func dateKeys(days []analysis.ShiftDay) []string {
	keys := make([]string, 0, len(days))
	for _, d := range days {
		keys = append(keys, roster.DateKey(d.Date))
	}
	return keys
}

func clampImpact(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
