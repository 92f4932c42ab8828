package leave

import "context"

type LeaveRepository interface {
	// GetApprovedDays expands approved leave requests overlapping
	// [startKey, endKey] into per-employee days.
	GetApprovedDays(ctx context.Context, companyID string, startKey, endKey string) ([]LeaveDay, error)
}
