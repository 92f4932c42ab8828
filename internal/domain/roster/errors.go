package roster

import "errors"

var (
	// Precondition violations. The engine performs no partial work when
	// any of these fire.
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrUnknownShiftType = errors.New("unknown shift type in coverage requirement")
	ErrEmptyRoster      = errors.New("no eligible employees for scheduling run")

	ErrAssignmentNotFound = errors.New("schedule assignment not found")
	ErrInvalidRequestData = errors.New("invalid request data")
)
