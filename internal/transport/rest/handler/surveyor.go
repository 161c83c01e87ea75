package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/model"
	"github.com/aaryashetye/survey-API/internal/repository"
)

// SurveyorHandler handles surveyor account endpoints
type SurveyorHandler struct {
	surveyorRepo repository.SurveyorRepo
}

// NewSurveyorHandler creates a new surveyor handler
func NewSurveyorHandler(surveyorRepo repository.SurveyorRepo) *SurveyorHandler {
	return &SurveyorHandler{surveyorRepo: surveyorRepo}
}

// Create handles POST /surveyors. Emails are unique across surveyors.
func (h *SurveyorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var surveyor model.Surveyor
	if err := json.NewDecoder(r.Body).Decode(&surveyor); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if surveyor.Name == "" || surveyor.Email == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	existing, err := h.surveyorRepo.GetByEmail(r.Context(), surveyor.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "surveyor with this email already exists")
		return
	}

	id, err := h.surveyorRepo.Create(r.Context(), &surveyor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Get handles GET /surveyors/{id}
func (h *SurveyorHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyor, err := h.surveyorRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if surveyor == nil {
		writeError(w, http.StatusNotFound, "surveyor not found")
		return
	}
	writeJSON(w, http.StatusOK, surveyor)
}

// List handles GET /surveyors
func (h *SurveyorHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyors, err := h.surveyorRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"surveyors": surveyors})
}

// Update handles PUT /surveyors/{id}
func (h *SurveyorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	delete(updates, "_id")
	delete(updates, "id")

	surveyor, err := h.surveyorRepo.Update(r.Context(), mux.Vars(r)["id"], updates)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if surveyor == nil {
		writeError(w, http.StatusNotFound, "surveyor not found")
		return
	}
	writeJSON(w, http.StatusOK, surveyor)
}

// Delete handles DELETE /surveyors/{id}
func (h *SurveyorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.surveyorRepo.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "surveyor not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
