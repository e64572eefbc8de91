package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"shootup-backend/dto"
	"shootup-backend/internal/models"
)

type MediaService struct {
	Events   eventStore
	Media    mediaStore
	Likes    likeStore
	Comments commentStore
}

// Upload stores a media document after checking the event exists.
func (s *MediaService) Upload(ctx context.Context, eventID bson.ObjectID, body dto.UploadMediaReq) (*models.Media, error) {
	if _, err := s.Events.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	mediaType := body.MediaType
	if mediaType == "" {
		mediaType = "photo"
	}

	m := &models.Media{
		ID:            bson.NewObjectID(),
		EventID:       eventID,
		UserID:        body.UserID,
		URL:           body.URL,
		MediaType:     mediaType,
		Challenge:     body.Challenge,
		LikesCount:    0,
		CommentsCount: 0,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.Media.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MediaService) ListForEvent(ctx context.Context, eventID bson.ObjectID, sort string) ([]models.Media, error) {
	return s.Media.ListByEvent(ctx, eventID, sortSpec(sort))
}

// ToggleLike removes the user's like if present, otherwise creates one,
// then adjusts the cached likes_count. The existence check and the counter
// write are separate store calls, so same-user concurrent toggles can make
// the counter drift from the true like row count; the unique like index
// bounds that drift to the counter itself.
func (s *MediaService) ToggleLike(ctx context.Context, mediaID bson.ObjectID, userID string) (*models.Media, error) {
	if _, err := s.Media.FindByID(ctx, mediaID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}

	removed, err := s.Likes.Delete(ctx, mediaID, userID)
	if err != nil {
		return nil, err
	}

	delta := -1
	if !removed {
		dup, err := s.Likes.Insert(ctx, mediaID, userID)
		if err != nil {
			return nil, err
		}
		if dup {
			// Lost a race against an identical toggle; the row exists,
			// leave the counter alone.
			delta = 0
		} else {
			delta = 1
		}
	}

	updated, err := s.Media.AdjustLikesCount(ctx, mediaID, delta)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *MediaService) ListComments(ctx context.Context, mediaID bson.ObjectID) ([]models.Comment, error) {
	return s.Comments.ListByMedia(ctx, mediaID)
}

// AddComment inserts the comment, then bumps the cached comments_count.
// The two writes are independent; a counter failure leaves the comment in
// place.
func (s *MediaService) AddComment(ctx context.Context, mediaID bson.ObjectID, body dto.AddCommentReq) error {
	if _, err := s.Media.FindByID(ctx, mediaID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrMediaNotFound
		}
		return err
	}

	c := &models.Comment{
		ID:        bson.NewObjectID(),
		MediaID:   mediaID,
		UserID:    body.UserID,
		Text:      body.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Comments.Insert(ctx, c); err != nil {
		return err
	}

	return s.Media.IncCommentsCount(ctx, mediaID)
}

// sortSpec maps the client sort key to a store sort. Unknown keys fall
// back to newest first.
func sortSpec(sort string) bson.D {
	switch sort {
	case "participant":
		return bson.D{{Key: "user_id", Value: 1}}
	case "challenge":
		return bson.D{{Key: "challenge", Value: 1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}
