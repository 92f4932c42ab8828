package roster

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/wardline/rostering-backend-go/internal/domain/employee"
	"github.com/wardline/rostering-backend-go/internal/domain/leave"
	"github.com/wardline/rostering-backend-go/internal/domain/roster"
	"github.com/wardline/rostering-backend-go/internal/pkg/database"
	"github.com/wardline/rostering-backend-go/internal/pkg/random"
	"github.com/wardline/rostering-backend-go/internal/repository/postgresql"
)

type rosterServiceImpl struct {
	db             *database.DB
	engine         *Engine
	assignmentRepo roster.ScheduleAssignmentRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRepository
	log            *slog.Logger
	defaultSeed    int64
}

func NewRosterService(
	db *database.DB,
	assignmentRepo roster.ScheduleAssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
	log *slog.Logger,
	defaultSeed int64,
) roster.Service {
	if log == nil {
		log = slog.Default()
	}
	return &rosterServiceImpl{
		db:             db,
		engine:         NewEngine(log),
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
		log:            log,
		defaultSeed:    defaultSeed,
	}
}

// GenerateSchedule implements roster.Service.
func (s *rosterServiceImpl) GenerateSchedule(ctx context.Context, req roster.GenerateScheduleRequest) (roster.GenerateScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.GenerateScheduleResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return roster.GenerateScheduleResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID, req.TeamIDs)
	if err != nil {
		return roster.GenerateScheduleResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	if len(employees) == 0 {
		return roster.GenerateScheduleResponse{}, roster.ErrEmptyRoster
	}

	leaveDays, err := s.leaveRepo.GetApprovedDays(ctx, companyID, req.StartDate, req.EndDate)
	if err != nil {
		return roster.GenerateScheduleResponse{}, fmt.Errorf("failed to load leave days: %w", err)
	}

	unavailable := make(map[string]map[string]bool)
	for _, ld := range leaveDays {
		key := roster.DateKey(ld.Date)
		if unavailable[key] == nil {
			unavailable[key] = make(map[string]bool)
		}
		unavailable[key][ld.EmployeeID] = true
	}

	requirements, err := mapRequirements(req.CoverageRequirements)
	if err != nil {
		return roster.GenerateScheduleResponse{}, err
	}

	seed := s.defaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runID := uuid.NewString()
	s.log.Info("scheduling run started",
		slog.String("run_id", runID),
		slog.String("company_id", companyID),
		slog.String("start_date", req.StartDate),
		slog.String("end_date", req.EndDate),
		slog.Int("employees", len(employees)),
		slog.Int64("seed", seed),
	)

	result, err := s.engine.Generate(Problem{
		Employees:    employees,
		Requirements: requirements,
		StartDate:    start,
		EndDate:      end,
		Options:      req.Options(),
		Unavailable:  unavailable,
	}, random.NewSeeded(seed))
	if err != nil {
		return roster.GenerateScheduleResponse{}, err
	}

	// Replace the window atomically so a regeneration never leaves a mix of
	// old and new assignments behind.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, postgresql.TxKey, tx)
		if err := s.assignmentRepo.DeleteRange(txCtx, companyID, req.StartDate, req.EndDate); err != nil {
			return fmt.Errorf("failed to clear previous assignments: %w", err)
		}
		if err := s.assignmentRepo.BulkCreate(txCtx, companyID, result.Assignments); err != nil {
			return fmt.Errorf("failed to store assignments: %w", err)
		}
		return nil
	})
	if err != nil {
		return roster.GenerateScheduleResponse{}, err
	}

	s.log.Info("scheduling run finished",
		slog.String("run_id", runID),
		slog.Int("assignments", len(result.Assignments)),
		slog.Int("coverage_gaps", len(result.Gaps)),
	)

	return roster.GenerateScheduleResponse{
		RunID:        runID,
		Seed:         seed,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Assignments:  mapAssignments(result.Assignments, employees),
		CoverageGaps: mapGaps(result.Gaps),
	}, nil
}

// ListAssignments implements roster.Service.
func (s *rosterServiceImpl) ListAssignments(ctx context.Context, filter roster.AssignmentFilter) (roster.ListAssignmentsResponse, error) {
	if err := filter.Validate(); err != nil {
		return roster.ListAssignmentsResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return roster.ListAssignmentsResponse{}, err
	}

	rows, err := s.assignmentRepo.GetRange(ctx, companyID, filter.StartDate, filter.EndDate)
	if err != nil {
		return roster.ListAssignmentsResponse{}, fmt.Errorf("failed to list assignments: %w", err)
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID, filter.TeamIDs)
	if err != nil {
		return roster.ListAssignmentsResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	known := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		known[emp.ID] = emp
	}

	type slotKey struct {
		dateKey string
		shift   roster.ShiftType
	}
	grouped := make(map[slotKey][]roster.AssignedEmployeeResponse)
	var order []slotKey
	visible := 0
	for _, row := range rows {
		emp, ok := known[row.EmployeeID]
		if !ok {
			// Filtered out by team or no longer active.
			continue
		}
		visible++
		key := slotKey{dateKey: row.DateKey, shift: row.ShiftType}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], roster.AssignedEmployeeResponse{
			ID:         emp.ID,
			FullName:   emp.FullName,
			SkillLevel: emp.SkillLevel,
		})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].dateKey != order[j].dateKey {
			return order[i].dateKey < order[j].dateKey
		}
		return shiftRank(order[i].shift) < shiftRank(order[j].shift)
	})

	assignments := make([]roster.ScheduleAssignmentResponse, 0, len(order))
	for _, key := range order {
		assignments = append(assignments, roster.ScheduleAssignmentResponse{
			Date:      key.dateKey,
			ShiftType: string(key.shift),
			Employees: grouped[key],
		})
	}

	return roster.ListAssignmentsResponse{
		TotalCount:  int64(visible),
		Assignments: assignments,
	}, nil
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

func mapRequirements(dtos []roster.CoverageRequirementDTO) ([]roster.CoverageRequirement, error) {
	requirements := make([]roster.CoverageRequirement, 0, len(dtos))
	for _, dto := range dtos {
		date, err := time.Parse("2006-01-02", dto.Date)
		if err != nil {
			return nil, roster.ErrInvalidRequestData
		}
		levels := make([]roster.LevelRequirement, 0, len(dto.LevelRequirements))
		for _, lr := range dto.LevelRequirements {
			levels = append(levels, roster.LevelRequirement{Level: lr.Level, Count: lr.Count})
		}
		requirements = append(requirements, roster.CoverageRequirement{
			Date:              date,
			ShiftType:         roster.ShiftType(dto.ShiftType),
			LevelRequirements: levels,
		})
	}
	return requirements, nil
}

func mapAssignments(assignments []roster.ScheduleAssignment, employees []employee.Employee) []roster.ScheduleAssignmentResponse {
	known := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		known[emp.ID] = emp
	}

	out := make([]roster.ScheduleAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		resp := roster.ScheduleAssignmentResponse{
			Date:      roster.DateKey(a.Date),
			ShiftType: string(a.ShiftType),
		}
		for _, id := range a.EmployeeIDs {
			emp := known[id]
			resp.Employees = append(resp.Employees, roster.AssignedEmployeeResponse{
				ID:         id,
				FullName:   emp.FullName,
				SkillLevel: emp.SkillLevel,
			})
		}
		out = append(out, resp)
	}
	return out
}

func mapGaps(gaps []roster.CoverageGap) []roster.CoverageGapResponse {
	out := make([]roster.CoverageGapResponse, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, roster.CoverageGapResponse{
			Date:      roster.DateKey(g.Date),
			ShiftType: string(g.ShiftType),
			Level:     g.Level,
			Requested: g.Requested,
			Filled:    g.Filled,
		})
	}
	return out
}

func shiftRank(s roster.ShiftType) int {
	switch s {
	case roster.ShiftDay:
		return 0
	case roster.ShiftEvening:
		return 1
	case roster.ShiftNight:
		return 2
	default:
		return 3
	}
}
