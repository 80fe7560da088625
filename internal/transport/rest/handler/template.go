package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"aiready/internal/model"
	"aiready/internal/service"
	"aiready/internal/transport/rest/middleware"
)

// TemplateHandler handles template endpoints
type TemplateHandler struct {
	templateSvc *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateSvc *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateSvc: templateSvc}
}

// Create handles POST /v1/templates
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.GetCompanyID(r.Context())
	if companyID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var template model.Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	template.CompanyID = companyID

	id, err := h.templateSvc.Create(r.Context(), &template)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"templateId": id})
}

// List handles GET /v1/templates
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.GetCompanyID(r.Context())
	if companyID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	templates, err := h.templateSvc.GetByCompanyID(r.Context(), companyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": templates})
}

// Get handles GET /v1/templates/{templateId}
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	template, err := h.templateSvc.GetByID(r.Context(), templateID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if template == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}

	writeJSON(w, http.StatusOK, template)
}

// Update handles PUT /v1/templates/{templateId}
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]
	companyID := middleware.GetCompanyID(r.Context())
	if companyID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var template model.Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	template.ID = templateID
	template.CompanyID = companyID

	if err := h.templateSvc.Update(r.Context(), &template); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete handles DELETE /v1/templates/{templateId}
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	if err := h.templateSvc.Delete(r.Context(), templateID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
