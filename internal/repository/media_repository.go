package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"shootup-backend/internal/models"
)

type MediaRepository struct {
	Col *mongo.Collection
}

func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{Col: db.Collection("media")}
}

func (r *MediaRepository) Insert(ctx context.Context, m *models.Media) error {
	if _, err := r.Col.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert media: %w", err)
	}
	return nil
}

func (r *MediaRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Media, error) {
	var m models.Media
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MediaRepository) ListByEvent(ctx context.Context, eventID bson.ObjectID, sort bson.D) ([]models.Media, error) {
	cur, err := r.Col.Find(ctx, bson.M{"event_id": eventID}, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.Media{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MediaRepository) CountByEvent(ctx context.Context, eventID bson.ObjectID) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"event_id": eventID})
}

func (r *MediaRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"user_id": userID})
}

// FirstForEvent returns any media of the event for cover resolution,
// oldest first so the cover stays stable.
func (r *MediaRepository) FirstForEvent(ctx context.Context, eventID bson.ObjectID) (*models.Media, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})

	var m models.Media
	if err := r.Col.FindOne(ctx, bson.M{"event_id": eventID}, opts).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// AdjustLikesCount applies likes_count = max(0, likes_count + delta) via an
// update pipeline so the cached counter can never go negative, and returns
// the updated media.
func (r *MediaRepository) AdjustLikesCount(ctx context.Context, id bson.ObjectID, delta int) (*models.Media, error) {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "likes_count", Value: bson.D{
				{Key: "$max", Value: bson.A{
					0,
					bson.D{{Key: "$add", Value: bson.A{
						bson.D{{Key: "$ifNull", Value: bson.A{"$likes_count", 0}}},
						delta,
					}}},
				}},
			}},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m models.Media
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MediaRepository) IncCommentsCount(ctx context.Context, id bson.ObjectID) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"comments_count": 1}},
	)
	return err
}
