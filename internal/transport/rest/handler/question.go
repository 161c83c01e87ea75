package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/migration"
	"github.com/aaryashetye/survey-API/internal/repository"
)

// QuestionHandler handles question-set endpoints. Incoming sets pass through
// the same normalizer the offline migration uses, so writes land canonical
// regardless of which legacy shape the client sends.
type QuestionHandler struct {
	questionSetRepo repository.QuestionSetRepo
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSetRepo repository.QuestionSetRepo) *QuestionHandler {
	return &QuestionHandler{questionSetRepo: questionSetRepo}
}

// Put handles POST /surveys/{surveyId}/questions, replacing the survey's
// question set. Identifiers already canonical are kept stable so answers
// keep resolving after an edit.
func (h *QuestionHandler) Put(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var doc bson.M
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	doc["survey_id"] = surveyID

	existing, err := h.questionSetRepo.GetBySurveyID(r.Context(), surveyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		// keep the stored identity and creation time across edits
		doc["_id"] = existing.ID
		doc["created_at"] = existing.CreatedAt
	}

	set, _ := migration.NormalizeQuestionSet(doc)
	if len(set.Questions) == 0 {
		writeError(w, http.StatusBadRequest, "questions list is required")
		return
	}

	if err := h.questionSetRepo.Upsert(r.Context(), set); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// GetBySurvey handles GET /surveys/{surveyId}/questions
func (h *QuestionHandler) GetBySurvey(w http.ResponseWriter, r *http.Request) {
	set, err := h.questionSetRepo.GetBySurveyID(r.Context(), mux.Vars(r)["surveyId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if set == nil {
		writeError(w, http.StatusNotFound, "question set not found")
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// List handles GET /questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	sets, err := h.questionSetRepo.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"question_sets": sets})
}

// DeleteBySurvey handles DELETE /surveys/{surveyId}/questions
func (h *QuestionHandler) DeleteBySurvey(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.questionSetRepo.DeleteBySurveyID(r.Context(), mux.Vars(r)["surveyId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "question set not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
