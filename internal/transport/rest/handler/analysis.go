package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/model"
	"github.com/aaryashetye/survey-API/internal/repository"
	"github.com/aaryashetye/survey-API/internal/service"
)

// AnalysisHandler handles analysis record and map pin endpoints
type AnalysisHandler struct {
	analysisRepo repository.AnalysisRepo
	analysisSvc  *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisRepo repository.AnalysisRepo, analysisSvc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisRepo: analysisRepo,
		analysisSvc:  analysisSvc,
	}
}

// Create handles POST /analysis
func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var analysis model.Analysis
	if err := json.NewDecoder(r.Body).Decode(&analysis); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if analysis.SurveyID == "" {
		writeError(w, http.StatusBadRequest, "survey_id is required")
		return
	}

	id, err := h.analysisRepo.Create(r.Context(), &analysis)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Get handles GET /analysis/{id}
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.analysisRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if analysis == nil {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// List handles GET /analysis
func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	analyses, err := h.analysisRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"analyses": analyses})
}

// Update handles PUT /analysis/{id}
func (h *AnalysisHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	delete(updates, "_id")
	delete(updates, "id")

	analysis, err := h.analysisRepo.Update(r.Context(), mux.Vars(r)["id"], updates)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if analysis == nil {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// Delete handles DELETE /analysis/{id}
func (h *AnalysisHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.analysisRepo.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "analysis not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// MapPins handles GET /surveys/{surveyId}/map-pins
func (h *AnalysisHandler) MapPins(w http.ResponseWriter, r *http.Request) {
	pins, err := h.analysisSvc.MapPins(r.Context(), mux.Vars(r)["surveyId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pins": pins})
}
