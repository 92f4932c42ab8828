package leave

import "time"

type LeaveType string

const (
	TypeAnnual    LeaveType = "annual"
	TypeSick      LeaveType = "sick"
	TypeUnpaid    LeaveType = "unpaid"
	TypeMaternity LeaveType = "maternity"
)

// LeaveDay is one approved day off for one employee, already expanded from
// the stored request range.
type LeaveDay struct {
	EmployeeID string
	Date       time.Time
	Type       LeaveType
}
