package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	// GetActiveByCompanyID returns active, non-deleted employees, optionally
	// restricted to the given team ids.
	GetActiveByCompanyID(ctx context.Context, companyID string, teamIDs []string) ([]Employee, error)
}
