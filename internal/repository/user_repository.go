package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"shootup-backend/internal/models"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("userprofile")}
}

func (r *UserRepository) FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// EnsureProfile lazily creates a minimal profile on first join. An
// existing profile is left untouched ($setOnInsert only).
func (r *UserRepository) EnsureProfile(ctx context.Context, userID, username string) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": bson.M{
			"username":         username,
			"following_events": []string{},
		}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

// UpsertFields sets only the provided fields and returns the profile as
// stored after the write.
func (r *UserRepository) UpsertFields(ctx context.Context, userID string, fields bson.M) (*models.UserProfile, error) {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": fields},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return r.FindByUserID(ctx, userID)
}
