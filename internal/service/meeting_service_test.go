package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
)

type MockMeetingRepository struct {
	mock.Mock
}

func (m *MockMeetingRepository) Create(meeting *model.Meeting) error {
	return m.Called(meeting).Error(0)
}

func (m *MockMeetingRepository) FindAll() ([]model.Meeting, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) FindByID(id uuid.UUID) (*model.Meeting, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func newMeetingFixture(repo *MockMeetingRepository) MeetingService {
	hub := ws.NewHub(zap.NewNop())
	go hub.Run()
	return NewMeetingService(repo, hub)
}

func TestCreateMeeting(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := newMeetingFixture(repo)

	repo.On("Create", mock.AnythingOfType("*model.Meeting")).Return(nil)

	start := time.Now().Add(24 * time.Hour)
	req := &model.Meeting{Title: "Warden sync", StartTime: &start}
	require.NoError(t, svc.Create(req, "actor"))
	assert.Equal(t, "actor", req.CreatedBy)
}

func TestCreateMeetingEndBeforeStart(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := newMeetingFixture(repo)

	start := time.Now().Add(2 * time.Hour)
	end := start.Add(-time.Hour)
	err := svc.Create(&model.Meeting{Title: "Bad times", StartTime: &start, EndTime: &end}, "actor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_time")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDeleteMeetingUnknownID(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := newMeetingFixture(repo)

	id := uuid.New()
	repo.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(id), ErrMeetingNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}
