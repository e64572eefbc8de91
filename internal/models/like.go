package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like rows are unique per (media_id, user_id); see bootstrap.EnsureLikeIndexes.
type Like struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	MediaID   bson.ObjectID `bson:"media_id" json:"media_id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
