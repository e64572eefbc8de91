package dto

import "shootup-backend/internal/models"

type CreateEventReq struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	DateISO    *string  `json:"date_iso"`
	Location   *string  `json:"location"`
	Access     string   `json:"access" validate:"omitempty,oneof=public private"`
	CoverURL   *string  `json:"cover_url"`
	Challenges []string `json:"challenges"`
}

type JoinEventReq struct {
	Code     string  `json:"code" validate:"required,min=1,max=16"`
	UserID   string  `json:"user_id" validate:"required"`
	Username *string `json:"username"`
}

// ExploreItem is an event annotated for the explore feed. The embedded
// event's cover_url is already resolved (own cover, else first media url).
type ExploreItem struct {
	models.Event
	ParticipantsCount int   `json:"participants_count"`
	MediaCount        int64 `json:"media_count"`
}

type ExploreResponse struct {
	Events []ExploreItem `json:"events"`
}
