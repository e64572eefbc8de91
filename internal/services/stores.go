package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"shootup-backend/internal/models"
)

// Narrow store interfaces the services consume. The repository structs
// satisfy them; tests substitute doubles.

type eventStore interface {
	Insert(ctx context.Context, ev *models.Event) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error)
	FindByCode(ctx context.Context, code string) (*models.Event, error)
	ListPublic(ctx context.Context, limit int64) ([]models.Event, error)
	AddParticipant(ctx context.Context, id bson.ObjectID, userID string) (*models.Event, error)
	ListByParticipant(ctx context.Context, userID string) ([]models.Event, error)
}

type mediaStore interface {
	Insert(ctx context.Context, m *models.Media) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Media, error)
	ListByEvent(ctx context.Context, eventID bson.ObjectID, sort bson.D) ([]models.Media, error)
	CountByEvent(ctx context.Context, eventID bson.ObjectID) (int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	FirstForEvent(ctx context.Context, eventID bson.ObjectID) (*models.Media, error)
	AdjustLikesCount(ctx context.Context, id bson.ObjectID, delta int) (*models.Media, error)
	IncCommentsCount(ctx context.Context, id bson.ObjectID) error
}

type likeStore interface {
	Insert(ctx context.Context, mediaID bson.ObjectID, userID string) (dup bool, err error)
	Delete(ctx context.Context, mediaID bson.ObjectID, userID string) (bool, error)
}

type commentStore interface {
	Insert(ctx context.Context, c *models.Comment) error
	ListByMedia(ctx context.Context, mediaID bson.ObjectID) ([]models.Comment, error)
}

type userStore interface {
	FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	EnsureProfile(ctx context.Context, userID, username string) error
	UpsertFields(ctx context.Context, userID string, fields bson.M) (*models.UserProfile, error)
}
