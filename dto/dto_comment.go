package dto

import "shootup-backend/internal/models"

type AddCommentReq struct {
	UserID string `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required,min=1,max=2000"`
}

type CommentListResponse struct {
	Items []models.Comment `json:"items"`
}
