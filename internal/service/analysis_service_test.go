package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaryashetye/survey-API/internal/model"
)

type stubAnalysisCache struct {
	pins        map[string][]model.MapPin
	sets        int
	invalidates int
}

func newStubAnalysisCache() *stubAnalysisCache {
	return &stubAnalysisCache{pins: map[string][]model.MapPin{}}
}

func (c *stubAnalysisCache) GetPins(ctx context.Context, surveyID string) ([]model.MapPin, error) {
	return c.pins[surveyID], nil
}

func (c *stubAnalysisCache) SetPins(ctx context.Context, surveyID string, pins []model.MapPin) error {
	c.sets++
	c.pins[surveyID] = pins
	return nil
}

func (c *stubAnalysisCache) InvalidatePins(ctx context.Context, surveyID string) error {
	c.invalidates++
	delete(c.pins, surveyID)
	return nil
}

func TestMapPinsBuiltFromLocatedResponses(t *testing.T) {
	repo := &stubResponseRepo{bySurvey: []*model.Response{
		{ID: "r1", ParticipantID: "p1", Location: &model.Location{Lat: 12.9, Lng: 77.5}},
		{ID: "r2"}, // no location, no pin
		{ID: "r3", ParticipantID: "p3", Location: &model.Location{Lat: 13.0, Lng: 77.6}},
	}}
	cacheStub := newStubAnalysisCache()
	svc := NewAnalysisService(repo, cacheStub)

	pins, err := svc.MapPins(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, pins, 2)
	assert.Equal(t, 12.9, pins[0].Lat)
	assert.Equal(t, "p1", pins[0].Label)
	assert.Equal(t, "p3", pins[1].Label)
	assert.Equal(t, 1, cacheStub.sets)

	// second read is served from the cache
	repo.bySurvey = nil
	pins, err = svc.MapPins(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, pins, 2)
	assert.Equal(t, 1, cacheStub.sets)
}

func TestInvalidatePins(t *testing.T) {
	cacheStub := newStubAnalysisCache()
	cacheStub.pins["s1"] = []model.MapPin{{Lat: 1, Lng: 2}}
	svc := NewAnalysisService(&stubResponseRepo{}, cacheStub)

	require.NoError(t, svc.InvalidatePins(context.Background(), "s1"))
	assert.Equal(t, 1, cacheStub.invalidates)
	assert.Empty(t, cacheStub.pins)
}
