package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aaryashetye/survey-API/internal/model"
)

// AnalysisRepo handles MongoDB operations for analysis records
type AnalysisRepo interface {
	Create(ctx context.Context, analysis *model.Analysis) (string, error)
	GetByID(ctx context.Context, id string) (*model.Analysis, error)
	GetAll(ctx context.Context) ([]*model.Analysis, error)
	Update(ctx context.Context, id string, updates bson.M) (*model.Analysis, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type analysisRepo struct {
	collection *mongo.Collection
}

// NewAnalysisRepo creates a new analysis repository
func NewAnalysisRepo(db *mongo.Database) AnalysisRepo {
	return &analysisRepo{collection: db.Collection("analysis")}
}

func (r *analysisRepo) Create(ctx context.Context, analysis *model.Analysis) (string, error) {
	if analysis.ID == "" {
		analysis.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, analysis); err != nil {
		return "", err
	}
	return analysis.ID, nil
}

func (r *analysisRepo) GetByID(ctx context.Context, id string) (*model.Analysis, error) {
	var analysis model.Analysis
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&analysis)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (r *analysisRepo) GetAll(ctx context.Context) ([]*model.Analysis, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var analyses []*model.Analysis
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}

func (r *analysisRepo) Update(ctx context.Context, id string, updates bson.M) (*model.Analysis, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *analysisRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
