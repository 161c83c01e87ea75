package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aaryashetye/survey-API/internal/model"
)

// ParticipantRepo handles MongoDB operations for participants
type ParticipantRepo interface {
	Create(ctx context.Context, participant *model.Participant) (string, error)
	GetByID(ctx context.Context, id string) (*model.Participant, error)
	GetAll(ctx context.Context) ([]*model.Participant, error)
	CountBySurvey(ctx context.Context, surveyID string) (int64, error)
	Update(ctx context.Context, id string, updates bson.M) (*model.Participant, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type participantRepo struct {
	collection *mongo.Collection
}

// NewParticipantRepo creates a new participant repository
func NewParticipantRepo(db *mongo.Database) ParticipantRepo {
	return &participantRepo{collection: db.Collection("participants")}
}

func (r *participantRepo) Create(ctx context.Context, participant *model.Participant) (string, error) {
	if participant.ID == "" {
		participant.ID = uuid.NewString()
	}
	if participant.CreatedAt == "" {
		participant.CreatedAt = model.ISONow()
	}
	if _, err := r.collection.InsertOne(ctx, participant); err != nil {
		return "", err
	}
	return participant.ID, nil
}

func (r *participantRepo) GetByID(ctx context.Context, id string) (*model.Participant, error) {
	var participant model.Participant
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&participant)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepo) GetAll(ctx context.Context) ([]*model.Participant, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var participants []*model.Participant
	if err := cursor.All(ctx, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepo) CountBySurvey(ctx context.Context, surveyID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"survey_id": surveyID})
}

func (r *participantRepo) Update(ctx context.Context, id string, updates bson.M) (*model.Participant, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *participantRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
