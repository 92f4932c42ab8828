package employee

import (
	"time"

	"github.com/wardline/rostering-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	SkillLevel   int     `json:"skill_level"`
	TeamID       *string `json:"team_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if r.SkillLevel < MinSkillLevel || r.SkillLevel > MaxSkillLevel {
		errs = append(errs, validator.ValidationError{
			Field:   "skill_level",
			Message: "skill_level must be between 1 and 5",
		})
	}
	if r.TeamID != nil && !validator.IsValidUUID(*r.TeamID) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_id",
			Message: "team_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	CompanyID        string  `json:"company_id"`
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name"`
	SkillLevel       int     `json:"skill_level"`
	TeamID           *string `json:"team_id,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		CompanyID:        e.CompanyID,
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName,
		SkillLevel:       e.SkillLevel,
		TeamID:           e.TeamID,
		EmploymentStatus: string(e.EmploymentStatus),
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}
