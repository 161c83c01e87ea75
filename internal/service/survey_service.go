package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/cache"
	"github.com/aaryashetye/survey-API/internal/model"
	"github.com/aaryashetye/survey-API/internal/repository"
)

// SurveyService handles survey CRUD with a read-through cache
type SurveyService struct {
	surveyRepo      repository.SurveyRepo
	questionSetRepo repository.QuestionSetRepo
	participantRepo repository.ParticipantRepo
	surveyCache     cache.SurveyCache
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveyRepo repository.SurveyRepo, questionSetRepo repository.QuestionSetRepo, participantRepo repository.ParticipantRepo, surveyCache cache.SurveyCache) *SurveyService {
	return &SurveyService{
		surveyRepo:      surveyRepo,
		questionSetRepo: questionSetRepo,
		participantRepo: participantRepo,
		surveyCache:     surveyCache,
	}
}

// Create creates a new survey
func (s *SurveyService) Create(ctx context.Context, survey *model.Survey) (string, error) {
	return s.surveyRepo.Create(ctx, survey)
}

// GetByID retrieves a survey, serving cached reads when possible. A cache
// failure falls back to the store rather than failing the read.
func (s *SurveyService) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	if cached, err := s.surveyCache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	survey, err := s.surveyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey != nil {
		_ = s.surveyCache.Set(ctx, survey)
	}
	return survey, nil
}

// GetAll retrieves all surveys
func (s *SurveyService) GetAll(ctx context.Context) ([]*model.Survey, error) {
	return s.surveyRepo.GetAll(ctx)
}

// Update applies a partial update and invalidates the cached copy
func (s *SurveyService) Update(ctx context.Context, id string, updates bson.M) (*model.Survey, error) {
	survey, err := s.surveyRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	_ = s.surveyCache.Invalidate(ctx, id)
	return survey, nil
}

// Delete removes a survey and invalidates the cached copy
func (s *SurveyService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.surveyRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	_ = s.surveyCache.Invalidate(ctx, id)
	return deleted, nil
}

// RecalculateCounts re-derives the survey's question and participant counts
// from the owning collections.
func (s *SurveyService) RecalculateCounts(ctx context.Context, surveyID string) (*model.Survey, error) {
	questionCount := 0
	set, err := s.questionSetRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if set != nil {
		questionCount = len(set.Questions)
	}

	participantCount, err := s.participantRepo.CountBySurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	return s.Update(ctx, surveyID, bson.M{
		"question_count":    questionCount,
		"participant_count": int(participantCount),
	})
}
