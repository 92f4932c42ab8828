package roster

import "context"

type Service interface {
	// GenerateSchedule runs the assignment engine over the requested window,
	// replaces any stored assignments in that window, and returns the result.
	GenerateSchedule(ctx context.Context, req GenerateScheduleRequest) (GenerateScheduleResponse, error)
	// ListAssignments returns stored assignments grouped per date/shift.
	ListAssignments(ctx context.Context, filter AssignmentFilter) (ListAssignmentsResponse, error)
}
