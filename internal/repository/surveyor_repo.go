package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aaryashetye/survey-API/internal/model"
)

// SurveyorRepo handles MongoDB operations for surveyor accounts
type SurveyorRepo interface {
	Create(ctx context.Context, surveyor *model.Surveyor) (string, error)
	GetByID(ctx context.Context, id string) (*model.Surveyor, error)
	GetByEmail(ctx context.Context, email string) (*model.Surveyor, error)
	GetAll(ctx context.Context) ([]*model.Surveyor, error)
	Update(ctx context.Context, id string, updates bson.M) (*model.Surveyor, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type surveyorRepo struct {
	collection *mongo.Collection
}

// NewSurveyorRepo creates a new surveyor repository
func NewSurveyorRepo(db *mongo.Database) SurveyorRepo {
	return &surveyorRepo{collection: db.Collection("surveyors")}
}

func (r *surveyorRepo) Create(ctx context.Context, surveyor *model.Surveyor) (string, error) {
	if surveyor.ID == "" {
		surveyor.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, surveyor); err != nil {
		return "", err
	}
	return surveyor.ID, nil
}

func (r *surveyorRepo) GetByID(ctx context.Context, id string) (*model.Surveyor, error) {
	var surveyor model.Surveyor
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&surveyor)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &surveyor, nil
}

func (r *surveyorRepo) GetByEmail(ctx context.Context, email string) (*model.Surveyor, error) {
	var surveyor model.Surveyor
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&surveyor)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &surveyor, nil
}

func (r *surveyorRepo) GetAll(ctx context.Context) ([]*model.Surveyor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveyors []*model.Surveyor
	if err := cursor.All(ctx, &surveyors); err != nil {
		return nil, err
	}
	return surveyors, nil
}

func (r *surveyorRepo) Update(ctx context.Context, id string, updates bson.M) (*model.Surveyor, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *surveyorRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
