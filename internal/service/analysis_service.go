package service

import (
	"context"

	"github.com/aaryashetye/survey-API/internal/cache"
	"github.com/aaryashetye/survey-API/internal/model"
	"github.com/aaryashetye/survey-API/internal/repository"
)

// AnalysisService derives map pins from submitted response locations
type AnalysisService struct {
	responseRepo  repository.ResponseRepo
	analysisCache cache.AnalysisCache
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(responseRepo repository.ResponseRepo, analysisCache cache.AnalysisCache) *AnalysisService {
	return &AnalysisService{
		responseRepo:  responseRepo,
		analysisCache: analysisCache,
	}
}

// MapPins returns one pin per located response for a survey, serving cached
// reads when possible. A cache failure falls back to the store.
func (s *AnalysisService) MapPins(ctx context.Context, surveyID string) ([]model.MapPin, error) {
	if cached, err := s.analysisCache.GetPins(ctx, surveyID); err == nil && cached != nil {
		return cached, nil
	}

	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	pins := make([]model.MapPin, 0, len(responses))
	for _, resp := range responses {
		if resp.Location == nil {
			continue
		}
		pins = append(pins, model.MapPin{
			Lat:   resp.Location.Lat,
			Lng:   resp.Location.Lng,
			Label: resp.ParticipantID,
		})
	}

	_ = s.analysisCache.SetPins(ctx, surveyID, pins)
	return pins, nil
}

// InvalidatePins drops the cached pin set after new submissions arrive
func (s *AnalysisService) InvalidatePins(ctx context.Context, surveyID string) error {
	return s.analysisCache.InvalidatePins(ctx, surveyID)
}
