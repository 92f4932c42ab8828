package analysis

import (
	"time"

	"github.com/wardline/rostering-backend-go/internal/domain/roster"
)

// IssueType identifies one hazard class detected in a shift sequence.
type IssueType string

const (
	IssueTripleShiftRotation IssueType = "consecutive_triple_shift"
	IssueAlternatingChaos    IssueType = "alternating_chaos"
	IssueExcessiveNights     IssueType = "excessive_nights"
	IssueDoubleWithoutRest   IssueType = "double_without_rest"
	IssueWeekendHeavy        IssueType = "weekend_heavy"
	IssueNightRatio          IssueType = "excessive_night_ratio"
)

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityDanger   Severity = "danger"
	SeverityCritical Severity = "critical"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// ShiftDay is one day of an employee's realized sequence. A day with
// OnLeave set counts as off for rotation purposes whatever the shift says.
type ShiftDay struct {
	Date    time.Time
	Shift   roster.ShiftType
	OnLeave bool
}

// Working reports whether the employee actually worked this day.
func (d ShiftDay) Working() bool {
	return !d.OnLeave && d.Shift.IsWorking()
}

// EffectiveShift is the shift type after leave is applied.
func (d ShiftDay) EffectiveShift() roster.ShiftType {
	if d.OnLeave {
		return roster.ShiftOff
	}
	return d.Shift
}

// PatternIssue is one detected hazard. Impact is clamped to [0,100].
type PatternIssue struct {
	Type        IssueType `json:"type"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`
	Dates       []string  `json:"dates"`
	Impact      float64   `json:"impact"`
}

// NursingPatternAnalysis is the full safety audit of one employee's
// chronological shift sequence.
type NursingPatternAnalysis struct {
	EmployeeID      string         `json:"employee_id"`
	EmployeeName    string         `json:"employee_name"`
	Pattern         []string       `json:"pattern"`
	RiskScore       float64        `json:"risk_score"`
	RiskLevel       RiskLevel      `json:"risk_level"`
	Issues          []PatternIssue `json:"issues"`
	Recommendations []string       `json:"recommendations"`
}

// IssueFrequency is one row of the team-wide issue histogram.
type IssueFrequency struct {
	Type      IssueType `json:"type"`
	Count     int       `json:"count"`
	Employees []string  `json:"employees"`
}

// TeamRiskSummary rolls individual analyses into a team-wide view.
type TeamRiskSummary struct {
	TotalAnalyzed         int               `json:"total_analyzed"`
	RiskLevelCounts       map[RiskLevel]int `json:"risk_level_counts"`
	CriticalEmployees     []string          `json:"critical_employees"`
	CommonIssues          []IssueFrequency  `json:"common_issues"`
	AverageRiskScore      float64           `json:"average_risk_score"`
	UrgentRecommendations []string          `json:"urgent_recommendations"`
}
