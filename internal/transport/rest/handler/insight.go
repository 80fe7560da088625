package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"aiready/internal/service"
	"aiready/internal/transport/rest/middleware"
)

// InsightHandler handles workflow insight and organization summary endpoints
type InsightHandler struct {
	insightSvc *service.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightSvc *service.InsightService) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc}
}

// GetOwnInsights handles GET /v1/assessments/{assessmentId}/insights
func (h *InsightHandler) GetOwnInsights(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]
	participantID := middleware.GetParticipantID(r.Context())
	if participantID == "" || middleware.GetAssessmentID(r.Context()) != assessmentID {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	insights, err := h.insightSvc.AnalyzeParticipant(r.Context(), assessmentID, participantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, insights)
}

// SummarizeOrganization handles POST /v1/assessments/{assessmentId}/summary (admin)
func (h *InsightHandler) SummarizeOrganization(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]
	companyID := middleware.GetCompanyID(r.Context())
	if companyID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.insightSvc.SummarizeOrganization(r.Context(), companyID, assessmentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// GetSummary handles GET /v1/summary (admin)
func (h *InsightHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.GetCompanyID(r.Context())
	if companyID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.insightSvc.GetSummary(r.Context(), companyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summary == nil {
		writeError(w, http.StatusNotFound, "summary not computed yet")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
