package models

import "go.mongodb.org/mongo-driver/v2/bson"

// UserProfile is keyed by the external user_id string, not by _id.
// Profiles are created lazily on first join or explicit update.
type UserProfile struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID          string        `bson:"user_id" json:"user_id"`
	Username        string        `bson:"username" json:"username"`
	AvatarURL       *string       `bson:"avatar_url,omitempty" json:"avatar_url"`
	Bio             *string       `bson:"bio,omitempty" json:"bio"`
	FollowingEvents []string      `bson:"following_events" json:"following_events"`
}
