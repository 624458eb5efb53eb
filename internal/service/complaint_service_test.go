package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
)

type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(complaint *model.Complaint) error {
	return m.Called(complaint).Error(0)
}

func (m *MockComplaintRepository) FindAll() ([]model.Complaint, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) FindByID(id uuid.UUID) (*model.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) Update(complaint *model.Complaint) error {
	return m.Called(complaint).Error(0)
}

func (m *MockComplaintRepository) CountByStatus() (*model.ComplaintStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ComplaintStats), args.Error(1)
}

func newComplaintFixture(repo *MockComplaintRepository, at time.Time) *complaintService {
	hub := ws.NewHub(zap.NewNop())
	go hub.Run()
	svc := NewComplaintService(repo, hub).(*complaintService)
	svc.now = func() time.Time { return at }
	return svc
}

func pendingComplaint() *model.Complaint {
	c := &model.Complaint{
		Title:       "Broken fan",
		Description: "Ceiling fan not working",
		Location:    "Room 204",
		Priority:    model.PriorityMedium,
		Status:      model.ComplaintPending,
	}
	c.ID = uuid.New()
	return c
}

func TestCreateComplaintStartsPending(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := newComplaintFixture(repo, time.Now())

	repo.On("Create", mock.AnythingOfType("*model.Complaint")).Return(nil)

	req := &model.Complaint{
		Title:       "Leaky tap",
		Description: "Bathroom tap dripping",
		Location:    "Floor 2",
		Status:      model.ComplaintResolved, // submitted status is ignored
	}
	require.NoError(t, svc.Create(req, "actor-1"))
	assert.Equal(t, model.ComplaintPending, req.Status)
	assert.Equal(t, model.PriorityMedium, req.Priority)
	assert.Nil(t, req.ResolvedAt)
}

func TestCreateComplaintMissingTitle(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := newComplaintFixture(repo, time.Now())

	err := svc.Create(&model.Complaint{Description: "x", Location: "y"}, "actor-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestResolveSetsResolvedAt(t *testing.T) {
	repo := new(MockComplaintRepository)
	at := time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)
	svc := newComplaintFixture(repo, at)

	c := pendingComplaint()
	repo.On("FindByID", c.ID).Return(c, nil)
	repo.On("Update", c).Return(nil)

	cost := int64(450)
	updated, err := svc.UpdateStatus(c.ID, &ComplaintUpdate{Status: model.ComplaintResolved, Cost: &cost}, "actor-1")
	require.NoError(t, err)
	require.NotNil(t, updated.ResolvedAt)
	assert.Equal(t, at, *updated.ResolvedAt)
	assert.Equal(t, &cost, updated.Cost)
}

func TestReResolveIsIdempotent(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := newComplaintFixture(repo, time.Now())

	first := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	c := pendingComplaint()
	c.Status = model.ComplaintResolved
	c.ResolvedAt = &first
	repo.On("FindByID", c.ID).Return(c, nil)

	updated, err := svc.UpdateStatus(c.ID, &ComplaintUpdate{Status: model.ComplaintResolved}, "actor-1")
	require.NoError(t, err)
	assert.Equal(t, first, *updated.ResolvedAt)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestResolvedComplaintIsReadOnly(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := newComplaintFixture(repo, time.Now())

	at := time.Now()
	c := pendingComplaint()
	c.Status = model.ComplaintResolved
	c.ResolvedAt = &at
	repo.On("FindByID", c.ID).Return(c, nil)

	cost := int64(100)
	_, err := svc.UpdateStatus(c.ID, &ComplaintUpdate{Status: model.ComplaintResolved, Cost: &cost}, "actor-1")
	assert.ErrorIs(t, err, ErrComplaintResolved)

	comment := "done"
	_, err = svc.UpdateStatus(c.ID, &ComplaintUpdate{Status: model.ComplaintResolved, ResolutionComment: &comment}, "actor-1")
	assert.ErrorIs(t, err, ErrComplaintResolved)
}

func TestReopenClearsResolvedAt(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := newComplaintFixture(repo, time.Now())

	at := time.Now()
	c := pendingComplaint()
	c.Status = model.ComplaintResolved
	c.ResolvedAt = &at
	repo.On("FindByID", c.ID).Return(c, nil)
	repo.On("Update", c).Return(nil)

	updated, err := svc.UpdateStatus(c.ID, &ComplaintUpdate{Status: model.ComplaintInProgress}, "actor-1")
	require.NoError(t, err)
	assert.Equal(t, model.ComplaintInProgress, updated.Status)
	assert.Nil(t, updated.ResolvedAt)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := newComplaintFixture(repo, time.Now())

	_, err := svc.UpdateStatus(uuid.New(), &ComplaintUpdate{Status: "escalated"}, "actor-1")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusUnknownComplaint(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := newComplaintFixture(repo, time.Now())

	id := uuid.New()
	repo.On("FindByID", id).Return(nil, assert.AnError)

	_, err := svc.UpdateStatus(id, &ComplaintUpdate{Status: model.ComplaintPending}, "actor-1")
	assert.ErrorIs(t, err, ErrComplaintNotFound)
}
