package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"shootup-backend/dto"
	"shootup-backend/internal/models"
)

type UserService struct {
	Users  userStore
	Events eventStore
	Media  mediaStore
}

// GuestProfile is the synthesized default for users without a stored
// profile. It is never persisted.
func GuestProfile(userID string) models.UserProfile {
	return models.UserProfile{
		UserID:          userID,
		Username:        "Guest",
		FollowingEvents: []string{},
	}
}

// View returns the profile (or the Guest default) annotated with joined
// events and the user's upload count.
func (s *UserService) View(ctx context.Context, userID string) (*dto.UserView, error) {
	profile, err := s.Users.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		guest := GuestProfile(userID)
		profile = &guest
	}
	profile.UserID = userID

	joined, err := s.Events.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}
	uploads, err := s.Media.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserView{
		UserProfile:  *profile,
		JoinedEvents: joined,
		UploadsCount: uploads,
	}, nil
}

// Update upserts only the provided fields. With nothing to set, the
// update is a no-op and ok is false for the caller to acknowledge without
// touching the store.
func (s *UserService) Update(ctx context.Context, userID string, body dto.UpdateUserReq) (*models.UserProfile, bool, error) {
	fields := bson.M{}
	if body.Username != nil {
		fields["username"] = *body.Username
	}
	if body.AvatarURL != nil {
		fields["avatar_url"] = *body.AvatarURL
	}
	if body.Bio != nil {
		fields["bio"] = *body.Bio
	}

	if len(fields) == 0 {
		return nil, false, nil
	}

	profile, err := s.Users.UpsertFields(ctx, userID, fields)
	if err != nil {
		return nil, false, err
	}
	return profile, true, nil
}
