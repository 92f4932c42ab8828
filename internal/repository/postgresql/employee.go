package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wardline/rostering-backend-go/internal/domain/employee"
	"github.com/wardline/rostering-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (id, company_id, employee_code, full_name, skill_level, team_id, employment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, company_id, employee_code, full_name, skill_level, team_id, employment_status, created_at, updated_at, deleted_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		emp.ID, emp.CompanyID, emp.EmployeeCode, emp.FullName, emp.SkillLevel, emp.TeamID, emp.EmploymentStatus,
	).Scan(
		&created.ID, &created.CompanyID, &created.EmployeeCode, &created.FullName,
		&created.SkillLevel, &created.TeamID, &created.EmploymentStatus,
		&created.CreatedAt, &created.UpdatedAt, &created.DeletedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id, employee_code, full_name, skill_level, team_id, employment_status, created_at, updated_at, deleted_at
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&emp.ID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName,
		&emp.SkillLevel, &emp.TeamID, &emp.EmploymentStatus,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string, teamIDs []string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id, employee_code, full_name, skill_level, team_id, employment_status, created_at, updated_at, deleted_at
		FROM employees
		WHERE company_id = $1 AND employment_status = $2 AND deleted_at IS NULL
	`
	args := []interface{}{companyID, employee.EmploymentStatusActive}

	if len(teamIDs) > 0 {
		query += ` AND team_id = ANY($3)`
		args = append(args, teamIDs)
	}
	query += ` ORDER BY full_name, id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName,
			&emp.SkillLevel, &emp.TeamID, &emp.EmploymentStatus,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}
