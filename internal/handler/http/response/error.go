package response

import (
	"errors"
	"net/http"

	"github.com/wardline/rostering-backend-go/internal/domain/auth"
	"github.com/wardline/rostering-backend-go/internal/domain/employee"
	"github.com/wardline/rostering-backend-go/internal/domain/roster"
	"github.com/wardline/rostering-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")
	case errors.Is(err, auth.ErrMissingScope):
		Unauthorized(w, "Company scope missing from token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInvalidSkillLevel):
		BadRequest(w, "Skill level out of range", nil)

	// Roster domain errors
	case errors.Is(err, roster.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, roster.ErrUnknownShiftType):
		BadRequest(w, "Unknown shift type in coverage requirement", nil)
	case errors.Is(err, roster.ErrEmptyRoster):
		BadRequest(w, "No eligible employees for the scheduling run", nil)
	case errors.Is(err, roster.ErrAssignmentNotFound):
		NotFound(w, "Schedule assignment not found")
	case errors.Is(err, roster.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
