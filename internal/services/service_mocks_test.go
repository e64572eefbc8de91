package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"shootup-backend/internal/models"
)

// Test doubles for the store interfaces.

type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) Insert(ctx context.Context, ev *models.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockEventStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) FindByCode(ctx context.Context, code string) (*models.Event, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) ListPublic(ctx context.Context, limit int64) ([]models.Event, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventStore) AddParticipant(ctx context.Context, id bson.ObjectID, userID string) (*models.Event, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) ListByParticipant(ctx context.Context, userID string) ([]models.Event, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Event), args.Error(1)
}

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Insert(ctx context.Context, doc *models.Media) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockMediaStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaStore) ListByEvent(ctx context.Context, eventID bson.ObjectID, sort bson.D) ([]models.Media, error) {
	args := m.Called(ctx, eventID, sort)
	return args.Get(0).([]models.Media), args.Error(1)
}

func (m *MockMediaStore) CountByEvent(ctx context.Context, eventID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMediaStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMediaStore) FirstForEvent(ctx context.Context, eventID bson.ObjectID) (*models.Media, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaStore) AdjustLikesCount(ctx context.Context, id bson.ObjectID, delta int) (*models.Media, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaStore) IncCommentsCount(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLikeStore struct {
	mock.Mock
}

func (m *MockLikeStore) Insert(ctx context.Context, mediaID bson.ObjectID, userID string) (bool, error) {
	args := m.Called(ctx, mediaID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeStore) Delete(ctx context.Context, mediaID bson.ObjectID, userID string) (bool, error) {
	args := m.Called(ctx, mediaID, userID)
	return args.Bool(0), args.Error(1)
}

type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) Insert(ctx context.Context, c *models.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommentStore) ListByMedia(ctx context.Context, mediaID bson.ObjectID) ([]models.Comment, error) {
	args := m.Called(ctx, mediaID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserStore) EnsureProfile(ctx context.Context, userID, username string) error {
	args := m.Called(ctx, userID, username)
	return args.Error(0)
}

func (m *MockUserStore) UpsertFields(ctx context.Context, userID string, fields bson.M) (*models.UserProfile, error) {
	args := m.Called(ctx, userID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}
