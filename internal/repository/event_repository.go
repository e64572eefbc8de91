package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"shootup-backend/internal/models"
)

type EventRepository struct {
	Col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{Col: db.Collection("event")}
}

func (r *EventRepository) Insert(ctx context.Context, ev *models.Event) error {
	if _, err := r.Col.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	var ev models.Event
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// FindByCode expects the code already normalized to uppercase; codes are
// stored uppercase only.
func (r *EventRepository) FindByCode(ctx context.Context, code string) (*models.Event, error) {
	var ev models.Event
	if err := r.Col.FindOne(ctx, bson.M{"code": code}).Decode(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) ListPublic(ctx context.Context, limit int64) ([]models.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.Col.Find(ctx, bson.M{"access": "public"}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := []models.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AddParticipant adds the user to the participant set ($addToSet keeps
// membership idempotent) and returns the updated event.
func (r *EventRepository) AddParticipant(ctx context.Context, id bson.ObjectID, userID string) (*models.Event, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ev models.Event
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"participants": userID}},
		opts,
	).Decode(&ev)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) ListByParticipant(ctx context.Context, userID string) ([]models.Event, error) {
	cur, err := r.Col.Find(ctx, bson.M{"participants": bson.M{"$in": []string{userID}}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := []models.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
