package patternrisk

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/wardline/rostering-backend-go/internal/domain/analysis"
	"github.com/wardline/rostering-backend-go/internal/domain/employee"
	"github.com/wardline/rostering-backend-go/internal/domain/leave"
	"github.com/wardline/rostering-backend-go/internal/domain/roster"
)

type analysisServiceImpl struct {
	analyzer       *Analyzer
	assignmentRepo roster.ScheduleAssignmentRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRepository
}

func NewAnalysisService(
	assignmentRepo roster.ScheduleAssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
) analysis.Service {
	return &analysisServiceImpl{
		analyzer:       NewAnalyzer(),
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
	}
}

// AnalyzeTeamRisk implements analysis.Service. Sequences are assembled only
// after the full assignment window is loaded; the analyzer never sees a
// partial sequence.
func (s *analysisServiceImpl) AnalyzeTeamRisk(ctx context.Context, req analysis.TeamRiskRequest) (analysis.TeamRiskResponse, error) {
	if err := req.Validate(); err != nil {
		return analysis.TeamRiskResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return analysis.TeamRiskResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return analysis.TeamRiskResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID, req.TeamIDs)
	if err != nil {
		return analysis.TeamRiskResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	rows, err := s.assignmentRepo.GetRange(ctx, companyID, req.StartDate, req.EndDate)
	if err != nil {
		return analysis.TeamRiskResponse{}, fmt.Errorf("failed to load assignments: %w", err)
	}

	leaveDays, err := s.leaveRepo.GetApprovedDays(ctx, companyID, req.StartDate, req.EndDate)
	if err != nil {
		return analysis.TeamRiskResponse{}, fmt.Errorf("failed to load leave days: %w", err)
	}

	shifts := make(map[string]map[string]roster.ShiftType, len(employees))
	for _, row := range rows {
		if shifts[row.EmployeeID] == nil {
			shifts[row.EmployeeID] = make(map[string]roster.ShiftType)
		}
		shifts[row.EmployeeID][row.DateKey] = row.ShiftType
	}

	onLeave := make(map[string]map[string]bool)
	for _, ld := range leaveDays {
		if onLeave[ld.EmployeeID] == nil {
			onLeave[ld.EmployeeID] = make(map[string]bool)
		}
		onLeave[ld.EmployeeID][roster.DateKey(ld.Date)] = true
	}

	sort.Slice(employees, func(i, j int) bool { return employees[i].FullName < employees[j].FullName })

	analyses := make([]analysis.NursingPatternAnalysis, 0, len(employees))
	for _, emp := range employees {
		days := buildSequence(start, end, shifts[emp.ID], onLeave[emp.ID])
		analyses = append(analyses, s.analyzer.Analyze(emp.ID, emp.FullName, days))
	}

	return analysis.TeamRiskResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Analyses:  analyses,
		Summary:   SummarizeTeam(analyses),
	}, nil
}

// buildSequence expands one employee's stored shifts over every day of the
// window, filling off days and applying approved leave.
func buildSequence(start, end time.Time, shifts map[string]roster.ShiftType, onLeave map[string]bool) []analysis.ShiftDay {
	var days []analysis.ShiftDay
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		key := roster.DateKey(date)
		shift := roster.ShiftOff
		if sh, ok := shifts[key]; ok {
			shift = sh
		}
		days = append(days, analysis.ShiftDay{
			Date:    date,
			Shift:   shift,
			OnLeave: onLeave[key],
		})
	}
	return days
}
