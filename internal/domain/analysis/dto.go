package analysis

import "github.com/wardline/rostering-backend-go/internal/pkg/validator"

type TeamRiskRequest struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	TeamIDs   []string `json:"team_ids,omitempty"`
}

func (r *TeamRiskRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TeamRiskResponse struct {
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	Analyses  []NursingPatternAnalysis `json:"analyses"`
	Summary   TeamRiskSummary          `json:"summary"`
}
