package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/wardline/rostering-backend-go/internal/pkg/validator"
)

type LevelRequirementDTO struct {
	Level int `json:"level"`
	Count int `json:"count"`
}

type CoverageRequirementDTO struct {
	Date              string                `json:"date"`
	ShiftType         string                `json:"shift_type"`
	LevelRequirements []LevelRequirementDTO `json:"level_requirements"`
}

type GenerationOptionsDTO struct {
	EnforceFairness          *bool `json:"enforce_fairness,omitempty"`
	EnforceMentorshipPairing bool  `json:"enforce_mentorship_pairing,omitempty"`
	PrioritizePreferences    bool  `json:"prioritize_preferences,omitempty"`
}

type GenerateScheduleRequest struct {
	StartDate            string                   `json:"start_date"`
	EndDate              string                   `json:"end_date"`
	TeamIDs              []string                 `json:"team_ids,omitempty"`
	CoverageRequirements []CoverageRequirementDTO `json:"coverage_requirements"`
	GenerationOptions    *GenerationOptionsDTO    `json:"generation_options,omitempty"`
	// Seed pins the scorer tie-break for reproducible runs. Optional.
	Seed *int64 `json:"seed,omitempty"`
}

func (r *GenerateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if len(r.CoverageRequirements) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "coverage_requirements",
			Message: "at least one coverage requirement is required",
		})
	}

	for i, cr := range r.CoverageRequirements {
		field := fmt.Sprintf("coverage_requirements[%d]", i)

		if _, ok := validator.IsValidDate(cr.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: "date must be a valid date in YYYY-MM-DD format",
			})
		}
		if !validator.IsInSlice(cr.ShiftType, WorkingShiftValues) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".shift_type",
				Message: "shift_type must be one of: " + strings.Join(WorkingShiftValues, ", "),
			})
		}
		if len(cr.LevelRequirements) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".level_requirements",
				Message: "at least one level requirement is required",
			})
		}
		for j, lr := range cr.LevelRequirements {
			lrField := fmt.Sprintf("%s.level_requirements[%d]", field, j)
			if lr.Level < 1 {
				errs = append(errs, validator.ValidationError{
					Field:   lrField + ".level",
					Message: "level must be a positive number",
				})
			}
			if lr.Count < 1 {
				errs = append(errs, validator.ValidationError{
					Field:   lrField + ".count",
					Message: "count must be a positive number",
				})
			}
		}
	}

	for i, teamID := range r.TeamIDs {
		if !validator.IsValidUUID(teamID) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("team_ids[%d]", i),
				Message: "team id must be a valid UUID",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Options resolves the request options against the defaults.
func (r *GenerateScheduleRequest) Options() GenerationOptions {
	opts := DefaultGenerationOptions()
	if r.GenerationOptions == nil {
		return opts
	}
	if r.GenerationOptions.EnforceFairness != nil {
		opts.EnforceFairness = *r.GenerationOptions.EnforceFairness
	}
	opts.EnforceMentorshipPairing = r.GenerationOptions.EnforceMentorshipPairing
	opts.PrioritizePreferences = r.GenerationOptions.PrioritizePreferences
	return opts
}

type AssignedEmployeeResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	SkillLevel int    `json:"skill_level"`
}

type ScheduleAssignmentResponse struct {
	Date      string                     `json:"date"`
	ShiftType string                     `json:"shift_type"`
	Employees []AssignedEmployeeResponse `json:"employees"`
}

type CoverageGapResponse struct {
	Date      string `json:"date"`
	ShiftType string `json:"shift_type"`
	Level     int    `json:"level"`
	Requested int    `json:"requested"`
	Filled    int    `json:"filled"`
}

type GenerateScheduleResponse struct {
	RunID        string                       `json:"run_id"`
	Seed         int64                        `json:"seed"`
	StartDate    string                       `json:"start_date"`
	EndDate      string                       `json:"end_date"`
	Assignments  []ScheduleAssignmentResponse `json:"assignments"`
	CoverageGaps []CoverageGapResponse        `json:"coverage_gaps,omitempty"`
}

type AssignmentFilter struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	TeamIDs   []string `json:"team_ids,omitempty"`
}

func (f *AssignmentFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAssignmentsResponse struct {
	TotalCount  int64                        `json:"total_count"`
	Assignments []ScheduleAssignmentResponse `json:"assignments"`
}

// DateKey is the canonical map key for roster dates.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
