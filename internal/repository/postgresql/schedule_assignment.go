package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wardline/rostering-backend-go/internal/domain/roster"
	"github.com/wardline/rostering-backend-go/internal/pkg/database"
)

type scheduleAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewScheduleAssignmentRepository(db *database.DB) roster.ScheduleAssignmentRepository {
	return &scheduleAssignmentRepositoryImpl{db: db}
}

// BulkCreate implements roster.ScheduleAssignmentRepository. One row per
// assigned employee; position preserves the engine's selection order.
func (r *scheduleAssignmentRepositoryImpl) BulkCreate(ctx context.Context, companyID string, assignments []roster.ScheduleAssignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_assignments (id, company_id, employee_id, shift_date, shift_type, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	for _, a := range assignments {
		dateKey := roster.DateKey(a.Date)
		for pos, employeeID := range a.EmployeeIDs {
			if _, err := q.Exec(ctx, query, uuid.NewString(), companyID, employeeID, dateKey, a.ShiftType, pos); err != nil {
				return fmt.Errorf("failed to insert assignment for %s on %s: %w", employeeID, dateKey, err)
			}
		}
	}

	return nil
}

// DeleteRange implements roster.ScheduleAssignmentRepository.
func (r *scheduleAssignmentRepositoryImpl) DeleteRange(ctx context.Context, companyID string, startKey, endKey string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM schedule_assignments
		WHERE company_id = $1 AND shift_date >= $2 AND shift_date <= $3
	`

	if _, err := q.Exec(ctx, query, companyID, startKey, endKey); err != nil {
		return fmt.Errorf("failed to delete assignments in range: %w", err)
	}

	return nil
}

// GetRange implements roster.ScheduleAssignmentRepository.
func (r *scheduleAssignmentRepositoryImpl) GetRange(ctx context.Context, companyID string, startKey, endKey string) ([]roster.StoredAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, to_char(shift_date, 'YYYY-MM-DD'), shift_type
		FROM schedule_assignments
		WHERE company_id = $1 AND shift_date >= $2 AND shift_date <= $3
		ORDER BY shift_date, shift_type, position
	`

	rows, err := q.Query(ctx, query, companyID, startKey, endKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []roster.StoredAssignment
	for rows.Next() {
		var a roster.StoredAssignment
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.EmployeeID, &a.DateKey, &a.ShiftType); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignments: %w", err)
	}

	return assignments, nil
}
