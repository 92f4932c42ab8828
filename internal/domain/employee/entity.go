package employee

import "time"

type Employee struct {
	ID               string
	CompanyID        string
	EmployeeCode     string
	FullName         string
	SkillLevel       int
	TeamID           *string
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// Skill levels are ordinal tiers; 1 is junior, MaxSkillLevel is the most senior.
const (
	MinSkillLevel = 1
	MaxSkillLevel = 5
)
