package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"shootup-backend/dto"
	"shootup-backend/internal/models"
	"shootup-backend/utils"
)

const defaultExploreLimit = 24

type EventService struct {
	Events eventStore
	Media  mediaStore
	Users  userStore
}

func (s *EventService) Create(ctx context.Context, body dto.CreateEventReq) (*models.Event, error) {
	access := body.Access
	if access == "" {
		access = "public"
	}
	challenges := body.Challenges
	if challenges == nil {
		challenges = []string{}
	}

	ev := &models.Event{
		ID:           bson.NewObjectID(),
		Code:         utils.JoinCode(),
		Title:        body.Title,
		DateISO:      body.DateISO,
		Location:     body.Location,
		Access:       access,
		CoverURL:     body.CoverURL,
		Participants: []string{},
		Challenges:   challenges,
		Ended:        false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Events.Insert(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// Explore lists public events newest first, each annotated with counts and
// a resolved cover.
func (s *EventService) Explore(ctx context.Context, limit int64) ([]dto.ExploreItem, error) {
	events, err := s.Events.ListPublic(ctx, clampExploreLimit(limit))
	if err != nil {
		return nil, err
	}

	items := make([]dto.ExploreItem, 0, len(events))
	for _, ev := range events {
		mediaCount, err := s.Media.CountByEvent(ctx, ev.ID)
		if err != nil {
			return nil, err
		}

		if ev.CoverURL == nil {
			first, err := s.Media.FirstForEvent(ctx, ev.ID)
			if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			if first != nil {
				ev.CoverURL = &first.URL
			}
		}

		items = append(items, dto.ExploreItem{
			Event:             ev,
			ParticipantsCount: len(ev.Participants),
			MediaCount:        mediaCount,
		})
	}
	return items, nil
}

// Join adds the user to the event's participant set and lazily creates a
// profile. A profile-write failure after the event update leaves the
// event updated; there is no rollback.
func (s *EventService) Join(ctx context.Context, body dto.JoinEventReq) (*models.Event, error) {
	ev, err := s.GetByCode(ctx, body.Code)
	if err != nil {
		return nil, err
	}

	updated, err := s.Events.AddParticipant(ctx, ev.ID, body.UserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	username := "Guest"
	if body.Username != nil && *body.Username != "" {
		username = *body.Username
	}
	if err := s.Users.EnsureProfile(ctx, body.UserID, username); err != nil {
		return nil, err
	}

	return updated, nil
}

// GetByCode normalizes the code to uppercase; codes are stored uppercase
// only, so one lookup covers case-insensitive matching.
func (s *EventService) GetByCode(ctx context.Context, code string) (*models.Event, error) {
	ev, err := s.Events.FindByCode(ctx, strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return ev, nil
}

func (s *EventService) GetByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	ev, err := s.Events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return ev, nil
}

func clampExploreLimit(limit int64) int64 {
	if limit <= 0 {
		return defaultExploreLimit
	}
	return limit
}
