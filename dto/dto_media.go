package dto

import "shootup-backend/internal/models"

type UploadMediaReq struct {
	EventID   string  `json:"event_id" validate:"required"`
	UserID    string  `json:"user_id" validate:"required"`
	URL       string  `json:"url" validate:"required"`
	MediaType string  `json:"media_type" validate:"omitempty,oneof=photo video"`
	Challenge *string `json:"challenge"`
}

type ToggleLikeReq struct {
	UserID string `json:"user_id" validate:"required"`
}

type MediaListResponse struct {
	Items []models.Media `json:"items"`
}
