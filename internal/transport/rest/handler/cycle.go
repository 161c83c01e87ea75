package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/model"
	"github.com/aaryashetye/survey-API/internal/repository"
)

// CycleHandler handles survey cycle endpoints
type CycleHandler struct {
	cycleRepo repository.CycleRepo
}

// NewCycleHandler creates a new cycle handler
func NewCycleHandler(cycleRepo repository.CycleRepo) *CycleHandler {
	return &CycleHandler{cycleRepo: cycleRepo}
}

// Create handles POST /cycles
func (h *CycleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cycle model.SurveyCycle
	if err := json.NewDecoder(r.Body).Decode(&cycle); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if cycle.SurveyID == "" {
		writeError(w, http.StatusBadRequest, "survey_id is required")
		return
	}

	id, err := h.cycleRepo.Create(r.Context(), &cycle)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Get handles GET /cycles/{id}
func (h *CycleHandler) Get(w http.ResponseWriter, r *http.Request) {
	cycle, err := h.cycleRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if cycle == nil {
		writeError(w, http.StatusNotFound, "cycle not found")
		return
	}
	writeJSON(w, http.StatusOK, cycle)
}

// List handles GET /cycles
func (h *CycleHandler) List(w http.ResponseWriter, r *http.Request) {
	cycles, err := h.cycleRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"cycles": cycles})
}

// Update handles PUT /cycles/{id}
func (h *CycleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	delete(updates, "_id")
	delete(updates, "id")

	cycle, err := h.cycleRepo.Update(r.Context(), mux.Vars(r)["id"], updates)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if cycle == nil {
		writeError(w, http.StatusNotFound, "cycle not found")
		return
	}
	writeJSON(w, http.StatusOK, cycle)
}

// Delete handles DELETE /cycles/{id}
func (h *CycleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.cycleRepo.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "cycle not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
