package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/migration"
	"github.com/aaryashetye/survey-API/internal/model"
	"github.com/aaryashetye/survey-API/internal/repository"
)

// ValidationErrors maps a field path to what is wrong with it.
type ValidationErrors map[string]string

// ResponseService records survey submissions. Submissions arrive with the
// same mixed legacy key spellings the store accumulated over time, so the
// payload stays a document until validated.
type ResponseService struct {
	responseRepo    repository.ResponseRepo
	questionSetRepo repository.QuestionSetRepo
}

// NewResponseService creates a new response service
func NewResponseService(responseRepo repository.ResponseRepo, questionSetRepo repository.QuestionSetRepo) *ResponseService {
	return &ResponseService{
		responseRepo:    responseRepo,
		questionSetRepo: questionSetRepo,
	}
}

// Submit validates and records one submission. Field problems come back as
// ValidationErrors; only store failures surface as errors.
func (s *ResponseService) Submit(ctx context.Context, payload bson.M) (*model.Response, ValidationErrors, error) {
	errs := ValidationErrors{}

	surveyID := migration.PickString(payload, "surveyId", "survey_id", "SurveyId", "id")
	if surveyID == "" {
		errs["survey_id"] = "survey_id is required."
	}

	location := migration.NormalizeLocation(migration.PickValue(payload, "Location", "location"))
	if location == nil {
		errs["location"] = "location with latitude/longitude (or lat/lng) is required."
	}

	rawAnswers, _ := migration.PickValue(payload, "Answers", "answers").([]interface{})
	if len(rawAnswers) == 0 {
		errs["answers"] = "answers list is required."
	}

	var set *model.QuestionSet
	if surveyID != "" {
		var err error
		set, err = s.questionSetRepo.GetBySurveyID(ctx, surveyID)
		if err != nil {
			return nil, nil, err
		}
	}

	answers := make([]model.Answer, 0, len(rawAnswers))
	for i, raw := range rawAnswers {
		m, ok := raw.(map[string]interface{})
		if !ok {
			errs[fmt.Sprintf("answers[%d]", i)] = "Each answer must be an object."
			continue
		}
		ans, problem := buildAnswer(bson.M(m), set)
		if problem != "" {
			errs[fmt.Sprintf("answers[%d]", i)] = problem
			continue
		}
		answers = append(answers, ans)
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}

	rating := applyRatings(answers, set)

	timestamp := migration.PickString(payload, "Timestamp", "timestamp")
	if timestamp == "" {
		timestamp = model.ISONow()
	}

	response := &model.Response{
		SurveyID:      surveyID,
		CycleID:       migration.PickString(payload, "cycleId", "cycle_id", "CycleId"),
		SurveyorID:    migration.PickString(payload, "surveyorId", "surveyor_id", "SurveyorId"),
		ParticipantID: migration.PickString(payload, "participantId", "participant_id", "ParticipantId"),
		Status:        "submitted",
		Answers:       answers,
		Location:      location,
		Rating:        rating,
		Timestamp:     timestamp,
	}

	if _, err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, nil, err
	}
	return response, nil, nil
}

// buildAnswer resolves one submitted answer. Index references are mapped to
// identifiers against the survey's question set; explicit references pass
// through as given, canonical or not.
func buildAnswer(a bson.M, set *model.QuestionSet) (model.Answer, string) {
	ans := model.Answer{}

	if idx, ok := answerIndex(a, "questionIndex", "question_index"); ok {
		if set == nil || idx < 0 || idx >= len(set.Questions) {
			return ans, "invalid questionIndex"
		}
		question := set.Questions[idx]
		ans.QuestionID = question.QuestionID
		if oidx, hasOpt := answerIndex(a, "optionIndex", "option_index"); hasOpt {
			if oidx < 0 || oidx >= len(question.Options) {
				return ans, "optionIndex out of range"
			}
			ans.OptionID = question.Options[oidx].OptionID
		}
	} else {
		ans.QuestionID = migration.PickValue(a, "questionId", "QuestionId", "question_id")
		ans.OptionID = migration.PickValue(a, "optionId", "OptionId", "option_id")
	}
	if ans.QuestionID == nil {
		return ans, "questionId/question_id is required (int or GUID)."
	}

	if t := migration.PickString(a, "questionType", "question_type", "QuestionType"); t != "" {
		if !model.ValidQuestionType(t) {
			return ans, "Invalid question_type."
		}
		ans.QuestionType = t
	}

	ans.Value = migration.PickValue(a, "option", "value", "Option", "Value")
	switch v := ans.Value.(type) {
	case nil:
	case string:
		ans.ValueText = &v
	default:
		if f, ok := migration.ToFloat(v); ok {
			ans.ValueNumber = &f
		}
	}

	return ans, ""
}

func answerIndex(a bson.M, keys ...string) (int, bool) {
	v := migration.PickValue(a, keys...)
	if v == nil {
		return 0, false
	}
	f, ok := migration.ToFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// applyRatings copies per-option ratings onto the answers and returns the
// overall average, nil when no answered option carries a rating.
func applyRatings(answers []model.Answer, set *model.QuestionSet) *float64 {
	if set == nil {
		return nil
	}

	sum, count := 0, 0
	for i := range answers {
		r := optionRating(set, answers[i].QuestionID, answers[i].OptionID)
		if r > 0 {
			answers[i].Rating = r
			sum += r
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := float64(sum) / float64(count)
	return &avg
}

func optionRating(set *model.QuestionSet, questionID, optionID interface{}) int {
	if questionID == nil || optionID == nil {
		return 0
	}
	for _, q := range set.Questions {
		if q.QuestionID != fmt.Sprint(questionID) {
			continue
		}
		for _, opt := range q.Options {
			if opt.OptionID == fmt.Sprint(optionID) {
				return opt.Rating
			}
		}
	}
	return 0
}
