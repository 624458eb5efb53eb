package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(room *model.Room) error {
	return m.Called(room).Error(0)
}

func (m *MockRoomRepository) FindAll() ([]model.Room, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByRoomNumber(roomNumber string) (*model.Room, error) {
	args := m.Called(roomNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Room), args.Error(1)
}

type rosterMocks struct {
	students *MockStudentRepository
	staff    *MockStaffRepository
	branches *MockBranchRepository
	rooms    *MockRoomRepository
}

func newRosterFixture() (RosterService, *rosterMocks) {
	m := &rosterMocks{
		students: new(MockStudentRepository),
		staff:    new(MockStaffRepository),
		branches: new(MockBranchRepository),
		rooms:    new(MockRoomRepository),
	}
	hub := ws.NewHub(zap.NewNop())
	go hub.Run()
	return NewRosterService(m.students, m.staff, m.branches, m.rooms, hub), m
}

func (m *rosterMocks) knownBranch(name string) {
	m.branches.On("FindByName", name).Return(&model.Branch{Name: name}, nil)
}

func TestCreateStudentStampsAuditFields(t *testing.T) {
	svc, mocks := newRosterFixture()

	mocks.knownBranch("GANGA")
	mocks.students.On("FindByStudentID", "STU-001").Return(nil, gorm.ErrRecordNotFound)
	mocks.students.On("Create", mock.AnythingOfType("*model.Student")).Return(nil)

	req := &model.Student{StudentID: "STU-001", Name: "Ravi", Branch: "GANGA"}
	require.NoError(t, svc.CreateStudent(req, "admin-uuid"))
	assert.Equal(t, "admin-uuid", req.CreatedBy)
	assert.Equal(t, "admin-uuid", req.UpdatedBy)
}

func TestCreateStudentDuplicateID(t *testing.T) {
	svc, mocks := newRosterFixture()

	mocks.knownBranch("GANGA")
	existing := &model.Student{StudentID: "STU-001"}
	existing.ID = uuid.New()
	mocks.students.On("FindByStudentID", "STU-001").Return(existing, nil)

	err := svc.CreateStudent(&model.Student{StudentID: "STU-001", Name: "Ravi", Branch: "GANGA"}, "actor")
	assert.ErrorIs(t, err, ErrStudentIDExists)
	mocks.students.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateStudentMissingBranch(t *testing.T) {
	svc, _ := newRosterFixture()

	err := svc.CreateStudent(&model.Student{StudentID: "STU-002", Name: "Ravi"}, "actor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Branch")
}

func TestCreateStudentUnknownBranch(t *testing.T) {
	svc, mocks := newRosterFixture()

	mocks.branches.On("FindByName", "NOWHERE").Return(nil, gorm.ErrRecordNotFound)

	err := svc.CreateStudent(&model.Student{StudentID: "STU-003", Name: "Ravi", Branch: "NOWHERE"}, "actor")
	assert.ErrorIs(t, err, ErrUnknownBranch)
	mocks.students.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateStudentUnknownID(t *testing.T) {
	svc, mocks := newRosterFixture()

	id := uuid.New()
	mocks.knownBranch("GANGA")
	mocks.students.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStudent(id, &model.Student{StudentID: "STU-001", Name: "Ravi", Branch: "GANGA"}, "actor")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCreateStaffDefaultsToWarden(t *testing.T) {
	svc, mocks := newRosterFixture()

	mocks.knownBranch("SARAYU")
	mocks.staff.On("FindByStaffID", "EMP-010").Return(nil, gorm.ErrRecordNotFound)
	mocks.staff.On("Create", mock.AnythingOfType("*model.Staff")).Return(nil)

	req := &model.Staff{StaffID: "EMP-010", Name: "Lakshmi", Branch: "SARAYU"}
	require.NoError(t, svc.CreateStaff(req, "actor"))
	assert.Equal(t, model.RoleWarden, req.Role)
}

func TestCreateStaffDuplicateID(t *testing.T) {
	svc, mocks := newRosterFixture()

	mocks.knownBranch("SARAYU")
	existing := &model.Staff{StaffID: "EMP-010"}
	existing.ID = uuid.New()
	mocks.staff.On("FindByStaffID", "EMP-010").Return(existing, nil)

	err := svc.CreateStaff(&model.Staff{StaffID: "EMP-010", Name: "Lakshmi", Branch: "SARAYU"}, "actor")
	assert.ErrorIs(t, err, ErrStaffIDExists)
}

func TestDeleteStudentUnknownID(t *testing.T) {
	svc, mocks := newRosterFixture()

	id := uuid.New()
	mocks.students.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteStudent(id), ErrRecordNotFound)
	mocks.students.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestListRoomsReportsOccupancy(t *testing.T) {
	svc, mocks := newRosterFixture()

	mocks.rooms.On("FindAll").Return([]model.Room{
		{RoomNumber: "101", Capacity: 4},
		{RoomNumber: "102", Capacity: 2},
	}, nil)
	mocks.students.On("CountByRoom", "101").Return(int64(3), nil)
	mocks.students.On("CountByRoom", "102").Return(int64(2), nil)

	view, err := svc.ListRooms()
	require.NoError(t, err)
	require.Len(t, view, 2)
	assert.Equal(t, int64(3), view[0].Occupancy)
	assert.Equal(t, int64(1), view[0].AvailableBeds)
	assert.Equal(t, int64(0), view[1].AvailableBeds)
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	svc, mocks := newRosterFixture()

	existing := &model.Room{RoomNumber: "101", Capacity: 4}
	existing.ID = uuid.New()
	mocks.rooms.On("FindByRoomNumber", "101").Return(existing, nil)

	err := svc.CreateRoom(&model.Room{RoomNumber: "101", Capacity: 4}, "actor")
	assert.ErrorIs(t, err, ErrRoomExists)
	mocks.rooms.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAssignRoomRejectsFullRoom(t *testing.T) {
	svc, mocks := newRosterFixture()

	student := &model.Student{StudentID: "STU-001", Name: "Ravi", RoomNumber: "102"}
	student.ID = uuid.New()
	mocks.students.On("FindByID", student.ID).Return(student, nil)
	mocks.rooms.On("FindByRoomNumber", "101").Return(&model.Room{RoomNumber: "101", Capacity: 2}, nil)
	mocks.students.On("CountByRoom", "101").Return(int64(2), nil)

	_, err := svc.AssignRoom(student.ID, "101", "actor")
	assert.ErrorIs(t, err, ErrRoomFull)
	mocks.students.AssertNotCalled(t, "Update", mock.Anything)
}

func TestAssignRoomUnknownRoom(t *testing.T) {
	svc, mocks := newRosterFixture()

	student := &model.Student{StudentID: "STU-001", Name: "Ravi"}
	student.ID = uuid.New()
	mocks.students.On("FindByID", student.ID).Return(student, nil)
	mocks.rooms.On("FindByRoomNumber", "999").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AssignRoom(student.ID, "999", "actor")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestAssignRoomClearsAssignment(t *testing.T) {
	svc, mocks := newRosterFixture()

	student := &model.Student{StudentID: "STU-001", Name: "Ravi", RoomNumber: "101"}
	student.ID = uuid.New()
	mocks.students.On("FindByID", student.ID).Return(student, nil)
	mocks.students.On("Update", mock.AnythingOfType("*model.Student")).Return(nil)

	updated, err := svc.AssignRoom(student.ID, "", "actor")
	require.NoError(t, err)
	assert.Equal(t, "", updated.RoomNumber)
	mocks.rooms.AssertNotCalled(t, "FindByRoomNumber", mock.Anything)
}
