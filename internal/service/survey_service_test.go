package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/model"
)

type stubSurveyRepo struct {
	surveys     map[string]*model.Survey
	gets        int
	lastUpdates bson.M
}

func newStubSurveyRepo() *stubSurveyRepo {
	return &stubSurveyRepo{surveys: map[string]*model.Survey{}}
}

func (r *stubSurveyRepo) Create(ctx context.Context, survey *model.Survey) (string, error) {
	if survey.ID == "" {
		survey.ID = "s1"
	}
	r.surveys[survey.ID] = survey
	return survey.ID, nil
}

func (r *stubSurveyRepo) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	r.gets++
	return r.surveys[id], nil
}

func (r *stubSurveyRepo) GetAll(ctx context.Context) ([]*model.Survey, error) { return nil, nil }

func (r *stubSurveyRepo) Update(ctx context.Context, id string, updates bson.M) (*model.Survey, error) {
	r.lastUpdates = updates
	return r.surveys[id], nil
}

func (r *stubSurveyRepo) Delete(ctx context.Context, id string) (bool, error) {
	_, ok := r.surveys[id]
	delete(r.surveys, id)
	return ok, nil
}

type stubSurveyCache struct {
	surveys     map[string]*model.Survey
	invalidates int
}

func newStubSurveyCache() *stubSurveyCache {
	return &stubSurveyCache{surveys: map[string]*model.Survey{}}
}

func (c *stubSurveyCache) Get(ctx context.Context, id string) (*model.Survey, error) {
	return c.surveys[id], nil
}

func (c *stubSurveyCache) Set(ctx context.Context, survey *model.Survey) error {
	c.surveys[survey.ID] = survey
	return nil
}

func (c *stubSurveyCache) Invalidate(ctx context.Context, id string) error {
	c.invalidates++
	delete(c.surveys, id)
	return nil
}

type stubParticipantRepo struct {
	count int64
}

func (r *stubParticipantRepo) Create(ctx context.Context, p *model.Participant) (string, error) {
	return "", nil
}
func (r *stubParticipantRepo) GetByID(ctx context.Context, id string) (*model.Participant, error) {
	return nil, nil
}
func (r *stubParticipantRepo) GetAll(ctx context.Context) ([]*model.Participant, error) {
	return nil, nil
}
func (r *stubParticipantRepo) CountBySurvey(ctx context.Context, surveyID string) (int64, error) {
	return r.count, nil
}
func (r *stubParticipantRepo) Update(ctx context.Context, id string, updates bson.M) (*model.Participant, error) {
	return nil, nil
}
func (r *stubParticipantRepo) Delete(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func TestSurveyGetByIDReadsThroughCache(t *testing.T) {
	repo := newStubSurveyRepo()
	cacheStub := newStubSurveyCache()
	svc := NewSurveyService(repo, &stubQuestionSetRepo{}, &stubParticipantRepo{}, cacheStub)

	id, err := svc.Create(context.Background(), &model.Survey{Title: "Water Access"})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, repo.gets)

	// second read hits the cache, not the store
	got, err = svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, repo.gets)
}

func TestSurveyUpdateInvalidatesCache(t *testing.T) {
	repo := newStubSurveyRepo()
	cacheStub := newStubSurveyCache()
	svc := NewSurveyService(repo, &stubQuestionSetRepo{}, &stubParticipantRepo{}, cacheStub)

	id, err := svc.Create(context.Background(), &model.Survey{Title: "Water Access"})
	require.NoError(t, err)
	_, err = svc.GetByID(context.Background(), id)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), id, bson.M{"title": "Water Access v2"})
	require.NoError(t, err)
	assert.Equal(t, 1, cacheStub.invalidates)

	_, err = svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 2, cacheStub.invalidates)
}

func TestRecalculateCounts(t *testing.T) {
	repo := newStubSurveyRepo()
	repo.surveys["s1"] = &model.Survey{ID: "s1", Title: "Water Access"}
	set := ratedQuestionSet("s1")
	svc := NewSurveyService(repo, &stubQuestionSetRepo{set: set}, &stubParticipantRepo{count: 12}, newStubSurveyCache())

	_, err := svc.RecalculateCounts(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, bson.M{"question_count": 2, "participant_count": 12}, repo.lastUpdates)
}
