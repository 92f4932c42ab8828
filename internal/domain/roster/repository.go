package roster

import "context"

// StoredAssignment is one persisted employee/date/shift row.
type StoredAssignment struct {
	ID         string
	CompanyID  string
	EmployeeID string
	DateKey    string
	ShiftType  ShiftType
}

type ScheduleAssignmentRepository interface {
	// BulkCreate inserts every employee row of the given assignments.
	BulkCreate(ctx context.Context, companyID string, assignments []ScheduleAssignment) error
	// DeleteRange removes all assignments in [startKey, endKey] so a window
	// can be regenerated.
	DeleteRange(ctx context.Context, companyID string, startKey, endKey string) error
	// GetRange returns rows in [startKey, endKey], ordered by date then shift.
	GetRange(ctx context.Context, companyID string, startKey, endKey string) ([]StoredAssignment, error)
}
