package patternrisk

import (
	"fmt"
	"sort"

	"github.com/wardline/rostering-backend-go/internal/domain/analysis"
)

// highRiskRatioThreshold triggers urgent team recommendations once this
// share of the team sits at high risk.
const highRiskRatioThreshold = 0.3

// SummarizeTeam rolls individual analyses into a team-wide distribution,
// common-issue histogram and escalation flags.
func SummarizeTeam(analyses []analysis.NursingPatternAnalysis) analysis.TeamRiskSummary {
	summary := analysis.TeamRiskSummary{
		TotalAnalyzed: len(analyses),
		RiskLevelCounts: map[analysis.RiskLevel]int{
			analysis.RiskLow:      0,
			analysis.RiskMedium:   0,
			analysis.RiskHigh:     0,
			analysis.RiskCritical: 0,
		},
	}
	if len(analyses) == 0 {
		return summary
	}

	affected := make(map[analysis.IssueType]map[string]bool)
	totalScore := 0.0

	for _, a := range analyses {
		summary.RiskLevelCounts[a.RiskLevel]++
		totalScore += a.RiskScore

		if a.RiskLevel == analysis.RiskCritical {
			summary.CriticalEmployees = append(summary.CriticalEmployees, a.EmployeeName)
		}

		for _, issue := range a.Issues {
			if affected[issue.Type] == nil {
				affected[issue.Type] = make(map[string]bool)
			}
			affected[issue.Type][a.EmployeeName] = true
		}
	}

	for issueType, names := range affected {
		employees := make([]string, 0, len(names))
		for name := range names {
			employees = append(employees, name)
		}
		sort.Strings(employees)
		summary.CommonIssues = append(summary.CommonIssues, analysis.IssueFrequency{
			Type:      issueType,
			Count:     len(employees),
			Employees: employees,
		})
	}
	sort.SliceStable(summary.CommonIssues, func(i, j int) bool {
		if summary.CommonIssues[i].Count != summary.CommonIssues[j].Count {
			return summary.CommonIssues[i].Count > summary.CommonIssues[j].Count
		}
		return summary.CommonIssues[i].Type < summary.CommonIssues[j].Type
	})

	summary.AverageRiskScore = totalScore / float64(len(analyses))

	criticalCount := summary.RiskLevelCounts[analysis.RiskCritical]
	highCount := summary.RiskLevelCounts[analysis.RiskHigh]
	if criticalCount > 0 {
		summary.UrgentRecommendations = append(summary.UrgentRecommendations,
			fmt.Sprintf("%d employee(s) at critical risk; review and reschedule their rotations immediately.", criticalCount))
	}
	if float64(highCount) >= highRiskRatioThreshold*float64(len(analyses)) && highCount > 0 {
		summary.UrgentRecommendations = append(summary.UrgentRecommendations,
			"Over 30% of the team is at high risk; rebalance night and weekend rotations next cycle.")
	}

	return summary
}
