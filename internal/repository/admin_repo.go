package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aaryashetye/survey-API/internal/model"
)

// AdminRepo handles MongoDB operations for admin accounts
type AdminRepo interface {
	Create(ctx context.Context, admin *model.Admin) (string, error)
	GetByID(ctx context.Context, id string) (*model.Admin, error)
	GetAll(ctx context.Context) ([]*model.Admin, error)
	Update(ctx context.Context, id string, updates bson.M) (*model.Admin, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type adminRepo struct {
	collection *mongo.Collection
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(db *mongo.Database) AdminRepo {
	return &adminRepo{collection: db.Collection("admins")}
}

func (r *adminRepo) Create(ctx context.Context, admin *model.Admin) (string, error) {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, admin); err != nil {
		return "", err
	}
	return admin.ID, nil
}

func (r *adminRepo) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	var admin model.Admin
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) GetAll(ctx context.Context) ([]*model.Admin, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var admins []*model.Admin
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *adminRepo) Update(ctx context.Context, id string, updates bson.M) (*model.Admin, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *adminRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
