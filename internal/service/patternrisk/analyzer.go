package patternrisk

import (
	"sort"

	"github.com/wardline/rostering-backend-go/internal/domain/analysis"
)

// Analyzer audits one employee's finalized shift sequence against the
// registered hazard detectors. It never fails: an empty or all-off
// sequence simply scores zero.
type Analyzer struct {
	detectors []detector
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{detectors: defaultDetectors()}
}

// Analyze runs every detector over the chronological sequence and
// aggregates the issues into one composite risk score and level.
func (a *Analyzer) Analyze(employeeID, employeeName string, days []analysis.ShiftDay) analysis.NursingPatternAnalysis {
	var issues []analysis.PatternIssue
	for _, d := range a.detectors {
		issues = append(issues, d.Detect(days)...)
	}

	// Highest impact first; ties break on issue type so output ordering is
	// stable across runs.
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Impact != issues[j].Impact {
			return issues[i].Impact > issues[j].Impact
		}
		return issues[i].Type < issues[j].Type
	})

	score := compositeScore(issues)

	pattern := make([]string, 0, len(days))
	for _, d := range days {
		pattern = append(pattern, string(d.EffectiveShift()))
	}

	level := riskLevel(score)

	return analysis.NursingPatternAnalysis{
		EmployeeID:      employeeID,
		EmployeeName:    employeeName,
		Pattern:         pattern,
		RiskScore:       score,
		RiskLevel:       level,
		Issues:          issues,
		Recommendations: recommendations(issues, level),
	}
}

// compositeScore weights the dominant issue at 70% and the average of the
// rest at 30%, clamped to [0,100].
func compositeScore(issues []analysis.PatternIssue) float64 {
	switch len(issues) {
	case 0:
		return 0
	case 1:
		return clampImpact(issues[0].Impact)
	}

	rest := 0.0
	for _, issue := range issues[1:] {
		rest += issue.Impact
	}
	rest /= float64(len(issues) - 1)

	return clampImpact(0.7*issues[0].Impact + 0.3*rest)
}

func riskLevel(score float64) analysis.RiskLevel {
	switch {
	case score >= 80:
		return analysis.RiskCritical
	case score >= 60:
		return analysis.RiskHigh
	case score >= 30:
		return analysis.RiskMedium
	default:
		return analysis.RiskLow
	}
}

// recommendations derives remediation text from which issue types fired
// and how severe the composite level came out.
func recommendations(issues []analysis.PatternIssue, level analysis.RiskLevel) []string {
	fired := make(map[analysis.IssueType]bool, len(issues))
	for _, issue := range issues {
		fired[issue.Type] = true
	}

	var recs []string
	if fired[analysis.IssueTripleShiftRotation] {
		recs = append(recs, "Restructure the rotation so day, evening and night shifts never all fall within 3 days.")
	}
	if fired[analysis.IssueAlternatingChaos] {
		recs = append(recs, "Move to a regular forward rotation instead of alternating shift types day to day.")
	}
	if fired[analysis.IssueExcessiveNights] {
		recs = append(recs, "Cap consecutive night shifts at 3 and schedule mandatory rest days after a night block.")
	}
	if level == analysis.RiskCritical {
		recs = append(recs, "Reschedule this employee immediately; the current pattern is unsafe.")
	} else if level == analysis.RiskHigh {
		recs = append(recs, "Prioritize fixing this pattern in the next scheduling cycle.")
	}
	return recs
}
