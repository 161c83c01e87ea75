package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aaryashetye/survey-API/internal/model"
)

// ResponseRepo handles MongoDB operations for survey responses
type ResponseRepo interface {
	Create(ctx context.Context, response *model.Response) (string, error)
	GetByID(ctx context.Context, id string) (*model.Response, error)
	GetAll(ctx context.Context) ([]*model.Response, error)
	GetBySurveyID(ctx context.Context, surveyID string) ([]*model.Response, error)
	UpdateFields(ctx context.Context, id string, updates bson.M) (*model.Response, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{collection: db.Collection("responses")}
}

func (r *responseRepo) Create(ctx context.Context, response *model.Response) (string, error) {
	if response.ID == "" {
		response.ID = uuid.NewString()
	}
	if response.CreatedAt == "" {
		response.CreatedAt = model.ISONow()
	}
	if _, err := r.collection.InsertOne(ctx, response); err != nil {
		return "", err
	}
	return response.ID, nil
}

func (r *responseRepo) GetByID(ctx context.Context, id string) (*model.Response, error) {
	var response model.Response
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&response)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepo) GetAll(ctx context.Context) ([]*model.Response, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]*model.Response, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"survey_id": surveyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// UpdateFields applies a targeted $set so concurrent writers of unrelated
// fields are not clobbered.
func (r *responseRepo) UpdateFields(ctx context.Context, id string, updates bson.M) (*model.Response, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *responseRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
