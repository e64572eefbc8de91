package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Media struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   bson.ObjectID `bson:"event_id" json:"event_id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	URL       string        `bson:"url" json:"url"`
	MediaType string        `bson:"media_type" json:"media_type"` // photo, video
	Challenge *string       `bson:"challenge,omitempty" json:"challenge"`

	// Denormalized caches kept in step with the like/comment collections
	// on every mutation. Concurrent toggles by the same user can make
	// likes_count drift from the true like row count.
	LikesCount    int64 `bson:"likes_count" json:"likes_count"`
	CommentsCount int64 `bson:"comments_count" json:"comments_count"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
