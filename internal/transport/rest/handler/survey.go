package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/migration"
	"github.com/aaryashetye/survey-API/internal/model"
	"github.com/aaryashetye/survey-API/internal/service"
)

// SurveyHandler handles survey endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// Create handles POST /surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var survey model.Survey
	if err := json.NewDecoder(r.Body).Decode(&survey); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if survey.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if survey.CreatedBy != "" && !migration.IsGUID(survey.CreatedBy) {
		writeError(w, http.StatusBadRequest, "created_by must be a GUID")
		return
	}

	id, err := h.surveySvc.Create(r.Context(), &survey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Get handles GET /surveys/{id}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	survey, err := h.surveySvc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if survey == nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}
	writeJSON(w, http.StatusOK, survey)
}

// List handles GET /surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.surveySvc.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"surveys": surveys})
}

// Update handles PUT /surveys/{id}
func (h *SurveyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	delete(updates, "_id")
	delete(updates, "id")

	survey, err := h.surveySvc.Update(r.Context(), mux.Vars(r)["id"], updates)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if survey == nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}
	writeJSON(w, http.StatusOK, survey)
}

// Delete handles DELETE /surveys/{id}
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.surveySvc.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// RecalculateCounts handles POST /surveys/{id}/recalculate-counts
func (h *SurveyHandler) RecalculateCounts(w http.ResponseWriter, r *http.Request) {
	survey, err := h.surveySvc.RecalculateCounts(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if survey == nil {
		writeError(w, http.StatusNotFound, "survey not found")
		return
	}
	writeJSON(w, http.StatusOK, survey)
}
