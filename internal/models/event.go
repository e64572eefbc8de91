package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Event struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Code         string        `bson:"code" json:"code"`
	Title        string        `bson:"title" json:"title"`
	DateISO      *string       `bson:"date_iso,omitempty" json:"date_iso"`
	Location     *string       `bson:"location,omitempty" json:"location"`
	Access       string        `bson:"access" json:"access"` // public, private
	CoverURL     *string       `bson:"cover_url,omitempty" json:"cover_url"`
	Participants []string      `bson:"participants" json:"participants"`
	Challenges   []string      `bson:"challenges" json:"challenges"`
	Ended        bool          `bson:"ended" json:"ended"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
}
