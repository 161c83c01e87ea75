package handler

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/migration"
	"github.com/aaryashetye/survey-API/internal/model"
	"github.com/aaryashetye/survey-API/internal/repository"
	"github.com/aaryashetye/survey-API/internal/service"
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\- ]{6,14}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ParticipantHandler handles participant endpoints
type ParticipantHandler struct {
	participantRepo repository.ParticipantRepo
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(participantRepo repository.ParticipantRepo) *ParticipantHandler {
	return &ParticipantHandler{participantRepo: participantRepo}
}

// validateParticipant collects every field problem rather than stopping at
// the first, so the client can fix the whole form in one round trip.
func validateParticipant(p *model.Participant) service.ValidationErrors {
	errs := service.ValidationErrors{}

	if p.FirstName == "" {
		errs["name"] = "name is required."
	}
	if p.Age == nil {
		errs["age"] = "age is required."
	} else if *p.Age < 0 || *p.Age > 120 {
		errs["age"] = "age must be between 0 and 120."
	}
	switch p.Gender {
	case "", "male", "female", "other", "prefer_not_to_say":
	default:
		errs["gender"] = "gender must be one of male, female, other, prefer_not_to_say."
	}
	if p.Phone != "" && !phonePattern.MatchString(p.Phone) {
		errs["phone"] = "phone number is not valid."
	}
	if p.Email != "" && !emailPattern.MatchString(p.Email) {
		errs["email"] = "email address is not valid."
	}
	if p.SurveyID != "" && !migration.IsGUID(p.SurveyID) {
		errs["survey_id"] = "survey_id must be a GUID."
	}
	if p.Location != nil && (p.Location.Lat < -90 || p.Location.Lat > 90 || p.Location.Lng < -180 || p.Location.Lng > 180) {
		errs["location"] = "location coordinates are out of range."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Create handles POST /participants
func (h *ParticipantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var participant model.Participant
	if err := json.NewDecoder(r.Body).Decode(&participant); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validateParticipant(&participant); errs != nil {
		writeValidationFailure(w, errs)
		return
	}

	id, err := h.participantRepo.Create(r.Context(), &participant)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Get handles GET /participants/{id}
func (h *ParticipantHandler) Get(w http.ResponseWriter, r *http.Request) {
	participant, err := h.participantRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if participant == nil {
		writeError(w, http.StatusNotFound, "participant not found")
		return
	}
	writeJSON(w, http.StatusOK, participant)
}

// List handles GET /participants
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	participants, err := h.participantRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"participants": participants})
}

// Update handles PUT /participants/{id}
func (h *ParticipantHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	delete(updates, "_id")
	delete(updates, "id")
	updates["updated_at"] = model.ISONow()

	participant, err := h.participantRepo.Update(r.Context(), mux.Vars(r)["id"], updates)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if participant == nil {
		writeError(w, http.StatusNotFound, "participant not found")
		return
	}
	writeJSON(w, http.StatusOK, participant)
}

// Delete handles DELETE /participants/{id}
func (h *ParticipantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.participantRepo.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "participant not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
