package http

import (
	"encoding/json"
	"net/http"

	"github.com/wardline/rostering-backend-go/internal/domain/analysis"
	"github.com/wardline/rostering-backend-go/internal/domain/roster"
	"github.com/wardline/rostering-backend-go/internal/handler/http/response"
)

type RosterHandler interface {
	GenerateSchedule(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	AnalyzeTeamRisk(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService   roster.Service
	analysisService analysis.Service
}

func NewRosterHandler(rosterService roster.Service, analysisService analysis.Service) RosterHandler {
	return &rosterHandlerImpl{
		rosterService:   rosterService,
		analysisService: analysisService,
	}
}

// GenerateSchedule implements RosterHandler.
func (h *rosterHandlerImpl) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req roster.GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", nil)
		return
	}

	result, err := h.rosterService.GenerateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule generated successfully", result)
}

// ListAssignments implements RosterHandler.
func (h *rosterHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	filter := roster.AssignmentFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		TeamIDs:   queryList(r, "team_id"),
	}

	result, err := h.rosterService.ListAssignments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AnalyzeTeamRisk implements RosterHandler.
func (h *rosterHandlerImpl) AnalyzeTeamRisk(w http.ResponseWriter, r *http.Request) {
	req := analysis.TeamRiskRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		TeamIDs:   queryList(r, "team_id"),
	}

	result, err := h.analysisService.AnalyzeTeamRisk(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func queryList(r *http.Request, key string) []string {
	values := r.URL.Query()[key]
	if len(values) == 0 {
		return nil
	}
	return values
}
