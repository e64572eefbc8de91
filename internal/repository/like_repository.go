package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"shootup-backend/internal/models"
)

type LikeRepository struct {
	Col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{Col: db.Collection("like")}
}

// Insert creates a like row. A duplicate-key violation of the unique
// (media_id, user_id) index is reported as dup, not as an error.
func (r *LikeRepository) Insert(ctx context.Context, mediaID bson.ObjectID, userID string) (dup bool, err error) {
	doc := models.Like{
		ID:        bson.NewObjectID(),
		MediaID:   mediaID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	_, err = r.Col.InsertOne(ctx, doc)
	if err == nil {
		return false, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return true, nil
	}
	return false, err
}

// Delete removes the user's like on the media and reports whether a row
// actually existed.
func (r *LikeRepository) Delete(ctx context.Context, mediaID bson.ObjectID, userID string) (bool, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"media_id": mediaID, "user_id": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

func (r *LikeRepository) CountByMedia(ctx context.Context, mediaID bson.ObjectID) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"media_id": mediaID})
}
