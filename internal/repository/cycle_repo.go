package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aaryashetye/survey-API/internal/model"
)

// CycleRepo handles MongoDB operations for survey cycles
type CycleRepo interface {
	Create(ctx context.Context, cycle *model.SurveyCycle) (string, error)
	GetByID(ctx context.Context, id string) (*model.SurveyCycle, error)
	GetAll(ctx context.Context) ([]*model.SurveyCycle, error)
	Update(ctx context.Context, id string, updates bson.M) (*model.SurveyCycle, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type cycleRepo struct {
	collection *mongo.Collection
}

// NewCycleRepo creates a new survey-cycle repository
func NewCycleRepo(db *mongo.Database) CycleRepo {
	return &cycleRepo{collection: db.Collection("survey_cycles")}
}

func (r *cycleRepo) Create(ctx context.Context, cycle *model.SurveyCycle) (string, error) {
	if cycle.ID == "" {
		cycle.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, cycle); err != nil {
		return "", err
	}
	return cycle.ID, nil
}

func (r *cycleRepo) GetByID(ctx context.Context, id string) (*model.SurveyCycle, error) {
	var cycle model.SurveyCycle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cycle)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

func (r *cycleRepo) GetAll(ctx context.Context) ([]*model.SurveyCycle, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cycles []*model.SurveyCycle
	if err := cursor.All(ctx, &cycles); err != nil {
		return nil, err
	}
	return cycles, nil
}

func (r *cycleRepo) Update(ctx context.Context, id string, updates bson.M) (*model.SurveyCycle, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *cycleRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
