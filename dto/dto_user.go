package dto

import "shootup-backend/internal/models"

type UpdateUserReq struct {
	Username  *string `json:"username" validate:"omitempty,min=1,max=80"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio" validate:"omitempty,max=500"`
}

// UserView is a profile annotated with the events the user joined and
// how many media documents they authored.
type UserView struct {
	models.UserProfile
	JoinedEvents []models.Event `json:"joined_events"`
	UploadsCount int64          `json:"uploads_count"`
}
