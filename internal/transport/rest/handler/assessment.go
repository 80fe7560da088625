package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"aiready/internal/model"
	"aiready/internal/service"
	"aiready/internal/transport/rest/middleware"
)

// AssessmentHandler handles response submission and result endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
	templateSvc   *service.TemplateService
	insightSvc    *service.InsightService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(
	assessmentSvc *service.AssessmentService,
	templateSvc *service.TemplateService,
	insightSvc *service.InsightService,
) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
		templateSvc:   templateSvc,
		insightSvc:    insightSvc,
	}
}

// SubmitResponseRequest is the request body for submitting one answer
type SubmitResponseRequest struct {
	SectionID  string      `json:"sectionId"`
	QuestionID string      `json:"questionId"`
	Value      interface{} `json:"value"`
}

// SubmitResponse handles POST /v1/assessments/{assessmentId}/responses.
// The raw value is narrowed into the variant matching the question's
// declared type before it is stored.
func (h *AssessmentHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]
	participantID := middleware.GetParticipantID(r.Context())
	if participantID == "" || middleware.GetAssessmentID(r.Context()) != assessmentID {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	template, err := h.templateSvc.GetByID(r.Context(), assessmentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if template == nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}

	question, ok := template.QuestionByID(req.QuestionID)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown question id")
		return
	}

	response := &model.Response{
		ParticipantID: participantID,
		AssessmentID:  assessmentID,
		SectionID:     req.SectionID,
		QuestionID:    req.QuestionID,
		Value:         model.AnswerForQuestion(question.Type, req.Value),
	}

	if err := h.assessmentSvc.SubmitResponse(r.Context(), response); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// New answers invalidate any cached workflow analysis
	_ = h.insightSvc.InvalidateParticipant(r.Context(), assessmentID, participantID)

	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// ComputeResult handles POST /v1/assessments/{assessmentId}/result
func (h *AssessmentHandler) ComputeResult(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]
	participantID := middleware.GetParticipantID(r.Context())
	if participantID == "" || middleware.GetAssessmentID(r.Context()) != assessmentID {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.assessmentSvc.ComputeResult(r.Context(), assessmentID, participantID)
	if err == service.ErrTemplateNotFound {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetResult handles GET /v1/assessments/{assessmentId}/result
func (h *AssessmentHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]
	participantID := middleware.GetParticipantID(r.Context())
	if participantID == "" || middleware.GetAssessmentID(r.Context()) != assessmentID {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.assessmentSvc.GetResult(r.Context(), assessmentID, participantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "result not computed yet")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListResults handles GET /v1/assessments/{assessmentId}/results (admin)
func (h *AssessmentHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	assessmentID := mux.Vars(r)["assessmentId"]
	if middleware.GetAdminID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	results, err := h.assessmentSvc.GetResultsByAssessment(r.Context(), assessmentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
