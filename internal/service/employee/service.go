package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wardline/rostering-backend-go/internal/domain/employee"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.Service {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.Service.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		CompanyID:        companyID,
		EmployeeCode:     req.EmployeeCode,
		FullName:         req.FullName,
		SkillLevel:       req.SkillLevel,
		TeamID:           req.TeamID,
		EmploymentStatus: employee.EmploymentStatusActive,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// GetByID implements employee.Service.
func (s *employeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.ToResponse(emp), nil
}

// List implements employee.Service.
func (s *employeeServiceImpl) List(ctx context.Context, teamIDs []string) (employee.ListEmployeesResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID, teamIDs)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		TotalCount: int64(len(responses)),
		Employees:  responses,
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
