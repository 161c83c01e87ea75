package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aaryashetye/survey-API/internal/model"
)

// QuestionSetRepo handles MongoDB operations for question-set documents,
// one document per survey.
type QuestionSetRepo interface {
	Upsert(ctx context.Context, set *model.QuestionSet) error
	GetBySurveyID(ctx context.Context, surveyID string) (*model.QuestionSet, error)
	GetAll(ctx context.Context) ([]*model.QuestionSet, error)
	DeleteBySurveyID(ctx context.Context, surveyID string) (bool, error)
}

type questionSetRepo struct {
	collection *mongo.Collection
}

// NewQuestionSetRepo creates a new question-set repository
func NewQuestionSetRepo(db *mongo.Database) QuestionSetRepo {
	return &questionSetRepo{collection: db.Collection("questions")}
}

func (r *questionSetRepo) Upsert(ctx context.Context, set *model.QuestionSet) error {
	replaceOpts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": set.ID}, set, replaceOpts)
	return err
}

func (r *questionSetRepo) GetBySurveyID(ctx context.Context, surveyID string) (*model.QuestionSet, error) {
	var set model.QuestionSet
	err := r.collection.FindOne(ctx, bson.M{"survey_id": surveyID}).Decode(&set)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *questionSetRepo) GetAll(ctx context.Context) ([]*model.QuestionSet, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sets []*model.QuestionSet
	if err := cursor.All(ctx, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *questionSetRepo) DeleteBySurveyID(ctx context.Context, surveyID string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"survey_id": surveyID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
