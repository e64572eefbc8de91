package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"shootup-backend/dto"
	"shootup-backend/internal/models"
)

func strptr(s string) *string { return &s }

func TestCreate_NewEventShape(t *testing.T) {
	events := new(MockEventStore)
	events.On("Insert", mock.Anything, mock.Anything).Return(nil)

	svc := &EventService{Events: events}
	ev, err := svc.Create(context.Background(), dto.CreateEventReq{Title: "Beach Day"})
	require.NoError(t, err)

	assert.Len(t, ev.Code, 6)
	assert.Equal(t, strings.ToUpper(ev.Code), ev.Code)
	assert.Equal(t, "Beach Day", ev.Title)
	assert.Equal(t, "public", ev.Access)
	assert.Equal(t, []string{}, ev.Participants)
	assert.Equal(t, []string{}, ev.Challenges)
	assert.False(t, ev.Ended)
	assert.False(t, ev.CreatedAt.IsZero())
	events.AssertExpectations(t)
}

func TestJoin_AddsParticipantAndLazyProfile(t *testing.T) {
	id := bson.NewObjectID()
	stored := &models.Event{ID: id, Code: "AB12CD", Participants: []string{}}
	updated := &models.Event{ID: id, Code: "AB12CD", Participants: []string{"u1"}}

	events := new(MockEventStore)
	users := new(MockUserStore)
	// Lowercased input must be looked up uppercased; codes are stored
	// uppercase only.
	events.On("FindByCode", mock.Anything, "AB12CD").Return(stored, nil)
	events.On("AddParticipant", mock.Anything, id, "u1").Return(updated, nil)
	users.On("EnsureProfile", mock.Anything, "u1", "Guest").Return(nil)

	svc := &EventService{Events: events, Users: users}
	got, err := svc.Join(context.Background(), dto.JoinEventReq{Code: "ab12cd", UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"u1"}, got.Participants)
	events.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestJoin_RepeatJoinLeavesParticipantsUnchanged(t *testing.T) {
	id := bson.NewObjectID()
	joined := &models.Event{ID: id, Code: "AB12CD", Participants: []string{"u1"}}

	events := new(MockEventStore)
	users := new(MockUserStore)
	events.On("FindByCode", mock.Anything, "AB12CD").Return(joined, nil)
	// The store's set update reports the same membership on a repeat join.
	events.On("AddParticipant", mock.Anything, id, "u1").Return(joined, nil)
	users.On("EnsureProfile", mock.Anything, "u1", "Guest").Return(nil)

	svc := &EventService{Events: events, Users: users}
	first, err := svc.Join(context.Background(), dto.JoinEventReq{Code: "AB12CD", UserID: "u1"})
	require.NoError(t, err)
	second, err := svc.Join(context.Background(), dto.JoinEventReq{Code: "AB12CD", UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"u1"}, first.Participants)
	assert.Equal(t, []string{"u1"}, second.Participants)
	// Membership always goes through the store's set op, never a list append.
	events.AssertNumberOfCalls(t, "AddParticipant", 2)
}

func TestJoin_ProvidedUsername(t *testing.T) {
	id := bson.NewObjectID()
	ev := &models.Event{ID: id, Code: "AB12CD", Participants: []string{"u2"}}

	events := new(MockEventStore)
	users := new(MockUserStore)
	events.On("FindByCode", mock.Anything, "AB12CD").Return(ev, nil)
	events.On("AddParticipant", mock.Anything, id, "u2").Return(ev, nil)
	users.On("EnsureProfile", mock.Anything, "u2", "Ana").Return(nil)

	svc := &EventService{Events: events, Users: users}
	_, err := svc.Join(context.Background(), dto.JoinEventReq{Code: "AB12CD", UserID: "u2", Username: strptr("Ana")})
	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestJoin_UnknownCode(t *testing.T) {
	events := new(MockEventStore)
	users := new(MockUserStore)
	events.On("FindByCode", mock.Anything, "NOPE42").Return(nil, mongo.ErrNoDocuments)

	svc := &EventService{Events: events, Users: users}
	_, err := svc.Join(context.Background(), dto.JoinEventReq{Code: "nope42", UserID: "u1"})

	assert.ErrorIs(t, err, ErrEventNotFound)
	users.AssertNotCalled(t, "EnsureProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestExplore_AnnotatesAndResolvesCover(t *testing.T) {
	withCover := models.Event{
		ID:           bson.NewObjectID(),
		Access:       "public",
		CoverURL:     strptr("https://cdn.example.com/cover.jpg"),
		Participants: []string{"u1", "u2"},
	}
	noCover := models.Event{
		ID:           bson.NewObjectID(),
		Access:       "public",
		Participants: []string{"u1"},
	}

	events := new(MockEventStore)
	media := new(MockMediaStore)
	events.On("ListPublic", mock.Anything, int64(24)).Return([]models.Event{withCover, noCover}, nil)
	media.On("CountByEvent", mock.Anything, withCover.ID).Return(int64(3), nil)
	media.On("CountByEvent", mock.Anything, noCover.ID).Return(int64(1), nil)
	media.On("FirstForEvent", mock.Anything, noCover.ID).
		Return(&models.Media{URL: "https://cdn.example.com/first.jpg"}, nil)

	svc := &EventService{Events: events, Media: media}
	items, err := svc.Explore(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 2, items[0].ParticipantsCount)
	assert.Equal(t, int64(3), items[0].MediaCount)
	assert.Equal(t, "https://cdn.example.com/cover.jpg", *items[0].CoverURL)

	assert.Equal(t, 1, items[1].ParticipantsCount)
	assert.Equal(t, int64(1), items[1].MediaCount)
	assert.Equal(t, "https://cdn.example.com/first.jpg", *items[1].CoverURL)

	// An explicit cover is never overridden by media.
	media.AssertNotCalled(t, "FirstForEvent", mock.Anything, withCover.ID)
}

func TestExplore_NoMediaNoCover(t *testing.T) {
	bare := models.Event{ID: bson.NewObjectID(), Access: "public", Participants: []string{}}

	events := new(MockEventStore)
	media := new(MockMediaStore)
	events.On("ListPublic", mock.Anything, int64(24)).Return([]models.Event{bare}, nil)
	media.On("CountByEvent", mock.Anything, bare.ID).Return(int64(0), nil)
	media.On("FirstForEvent", mock.Anything, bare.ID).Return(nil, mongo.ErrNoDocuments)

	svc := &EventService{Events: events, Media: media}
	items, err := svc.Explore(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Nil(t, items[0].CoverURL)
	assert.Equal(t, int64(0), items[0].MediaCount)
}
