package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/wardline/rostering-backend-go/internal/domain/leave"
	"github.com/wardline/rostering-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// GetApprovedDays implements leave.LeaveRepository. Stored requests hold a
// date range; the overlap with the window is expanded into single days.
func (r *leaveRepositoryImpl) GetApprovedDays(ctx context.Context, companyID string, startKey, endKey string) ([]leave.LeaveDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, leave_type, start_date, end_date
		FROM leave_requests
		WHERE company_id = $1 AND status = 'approved'
		  AND start_date <= $3 AND end_date >= $2
	`

	rows, err := q.Query(ctx, query, companyID, startKey, endKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	windowStart, err := time.Parse("2006-01-02", startKey)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startKey, err)
	}
	windowEnd, err := time.Parse("2006-01-02", endKey)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endKey, err)
	}

	var days []leave.LeaveDay
	for rows.Next() {
		var employeeID string
		var leaveType leave.LeaveType
		var start, end time.Time
		if err := rows.Scan(&employeeID, &leaveType, &start, &end); err != nil {
			return nil, err
		}

		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			days = append(days, leave.LeaveDay{
				EmployeeID: employeeID,
				Date:       date,
				Type:       leaveType,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}

	return days, nil
}
