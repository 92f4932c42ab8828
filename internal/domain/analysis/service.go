package analysis

import "context"

type Service interface {
	// AnalyzeTeamRisk audits every employee's stored shift sequence in the
	// requested window and rolls the results into a team summary.
	AnalyzeTeamRisk(ctx context.Context, req TeamRiskRequest) (TeamRiskResponse, error)
}
