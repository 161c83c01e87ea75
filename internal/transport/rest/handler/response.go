package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/migration"
	"github.com/aaryashetye/survey-API/internal/model"
	"github.com/aaryashetye/survey-API/internal/repository"
	"github.com/aaryashetye/survey-API/internal/service"
)

// ResponseHandler handles response endpoints
type ResponseHandler struct {
	responseSvc  *service.ResponseService
	analysisSvc  *service.AnalysisService
	responseRepo repository.ResponseRepo
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService, analysisSvc *service.AnalysisService, responseRepo repository.ResponseRepo) *ResponseHandler {
	return &ResponseHandler{
		responseSvc:  responseSvc,
		analysisSvc:  analysisSvc,
		responseRepo: responseRepo,
	}
}

// Submit handles POST /responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload bson.M
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, errs, err := h.responseSvc.Submit(r.Context(), payload)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if errs != nil {
		writeValidationFailure(w, errs)
		return
	}

	// cached pins are stale the moment a located submission lands
	_ = h.analysisSvc.InvalidatePins(r.Context(), response.SurveyID)

	writeJSON(w, http.StatusCreated, response)
}

// Get handles GET /responses/{id}
func (h *ResponseHandler) Get(w http.ResponseWriter, r *http.Request) {
	response, err := h.responseRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if response == nil {
		writeError(w, http.StatusNotFound, "response not found")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// List handles GET /responses, optionally filtered by ?survey_id=
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		responses []*model.Response
		err       error
	)
	if surveyID := r.URL.Query().Get("survey_id"); surveyID != "" {
		responses, err = h.responseRepo.GetBySurveyID(r.Context(), surveyID)
	} else {
		responses, err = h.responseRepo.GetAll(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": responses})
}

// Update handles PUT /responses/{id}. Only answers, location, and status are
// writable; the location is reshaped to canonical form first.
func (h *ResponseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body bson.M
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updates := bson.M{}
	if answers, ok := body["answers"]; ok {
		updates["answers"] = answers
	}
	if rawLoc, ok := body["location"]; ok {
		loc := migration.NormalizeLocation(rawLoc)
		if loc == nil {
			writeError(w, http.StatusBadRequest, "location is not valid")
			return
		}
		updates["location"] = loc
	}
	if status, ok := body["status"].(string); ok && status != "" {
		updates["status"] = status
	}
	if len(updates) == 0 {
		writeError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	response, err := h.responseRepo.UpdateFields(r.Context(), mux.Vars(r)["id"], updates)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if response == nil {
		writeError(w, http.StatusNotFound, "response not found")
		return
	}

	_ = h.analysisSvc.InvalidatePins(r.Context(), response.SurveyID)

	writeJSON(w, http.StatusOK, response)
}

// Delete handles DELETE /responses/{id}
func (h *ResponseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	response, err := h.responseRepo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if response == nil {
		writeError(w, http.StatusNotFound, "response not found")
		return
	}

	deleted, err := h.responseRepo.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if deleted {
		_ = h.analysisSvc.InvalidatePins(r.Context(), response.SurveyID)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
