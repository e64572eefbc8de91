package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"shootup-backend/internal/models"
)

type CommentRepository struct {
	Col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{Col: db.Collection("comment")}
}

func (r *CommentRepository) Insert(ctx context.Context, c *models.Comment) error {
	if _, err := r.Col.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListByMedia returns the media's comments oldest first.
func (r *CommentRepository) ListByMedia(ctx context.Context, mediaID bson.ObjectID) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cur, err := r.Col.Find(ctx, bson.M{"media_id": mediaID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.Comment{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
