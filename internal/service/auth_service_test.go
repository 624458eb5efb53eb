package service

import (
	"errors"
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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uuid.UUID) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) Update(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	return m.Called(userID, hashedPassword).Error(0)
}

func (m *MockUserRepository) UpdateTokenVersion(userID uuid.UUID, version string) error {
	return m.Called(userID, version).Error(0)
}

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(staff *model.Staff) error {
	return m.Called(staff).Error(0)
}

func (m *MockStaffRepository) FindAll(branch string) ([]model.Staff, error) {
	args := m.Called(branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindByID(id uuid.UUID) (*model.Staff, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindByStaffID(staffID string) (*model.Staff, error) {
	args := m.Called(staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindByEmail(email string) (*model.Staff, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffRepository) Update(staff *model.Staff) error {
	return m.Called(staff).Error(0)
}

func (m *MockStaffRepository) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockStaffRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(student *model.Student) error {
	return m.Called(student).Error(0)
}

func (m *MockStudentRepository) FindAll(branch string) ([]model.Student, error) {
	args := m.Called(branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByID(id uuid.UUID) (*model.Student, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByStudentID(studentID string) (*model.Student, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByEmail(email string) (*model.Student, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

func (m *MockStudentRepository) Update(student *model.Student) error {
	return m.Called(student).Error(0)
}

func (m *MockStudentRepository) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockStudentRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentRepository) CountByRoom(roomNumber string) (int64, error) {
	args := m.Called(roomNumber)
	return args.Get(0).(int64), args.Error(1)
}

func newAuthFixture(userRepo *MockUserRepository, staffRepo *MockStaffRepository,
	studentRepo *MockStudentRepository) AuthService {
	hub := ws.NewHub(zap.NewNop())
	go hub.Run()
	return NewAuthService(userRepo, staffRepo, studentRepo, hub, zap.NewNop())
}

func activeUser(t *testing.T, email, password string) *model.User {
	t.Helper()
	user := &model.User{Email: email, IsActive: true}
	require.NoError(t, user.SetPassword(password))
	user.ID = uuid.New()
	return user
}

func TestLoginStaffProfileResolvesItsRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	staffRepo := new(MockStaffRepository)
	studentRepo := new(MockStudentRepository)
	svc := newAuthFixture(userRepo, staffRepo, studentRepo)

	user := activeUser(t, "warden@example.com", "secret123")
	userRepo.On("FindByEmail", "warden@example.com").Return(user, nil)
	userRepo.On("UpdateTokenVersion", user.ID, mock.AnythingOfType("string")).Return(nil)
	staffRepo.On("FindByEmail", "warden@example.com").Return(
		&model.Staff{Role: model.RoleWarden, Branch: "GANGA"}, nil)

	resp, err := svc.Login("warden@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleWarden, resp.Session.Role)
	assert.Equal(t, "GANGA", resp.Session.Branch)
	assert.True(t, resp.Session.ProfileComplete)
	assert.NotEmpty(t, resp.Token)
	studentRepo.AssertNotCalled(t, "FindByEmail", mock.Anything)
}

func TestLoginStudentProfileResolvesStudentRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	staffRepo := new(MockStaffRepository)
	studentRepo := new(MockStudentRepository)
	svc := newAuthFixture(userRepo, staffRepo, studentRepo)

	user := activeUser(t, "s1@example.com", "secret123")
	userRepo.On("FindByEmail", "s1@example.com").Return(user, nil)
	userRepo.On("UpdateTokenVersion", user.ID, mock.AnythingOfType("string")).Return(nil)
	staffRepo.On("FindByEmail", "s1@example.com").Return(nil, gorm.ErrRecordNotFound)
	studentRepo.On("FindByEmail", "s1@example.com").Return(
		&model.Student{Branch: "KRISHNA"}, nil)

	resp, err := svc.Login("s1@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, resp.Session.Role)
	assert.Equal(t, "KRISHNA", resp.Session.Branch)
}

func TestLoginNoProfileResolvesGuest(t *testing.T) {
	userRepo := new(MockUserRepository)
	staffRepo := new(MockStaffRepository)
	studentRepo := new(MockStudentRepository)
	svc := newAuthFixture(userRepo, staffRepo, studentRepo)

	user := activeUser(t, "new@example.com", "secret123")
	userRepo.On("FindByEmail", "new@example.com").Return(user, nil)
	userRepo.On("UpdateTokenVersion", user.ID, mock.AnythingOfType("string")).Return(nil)
	staffRepo.On("FindByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	studentRepo.On("FindByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Login("new@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleGuest, resp.Session.Role)
	assert.False(t, resp.Session.ProfileComplete)
}

func TestLoginProfileLookupFailureIsNotGuest(t *testing.T) {
	userRepo := new(MockUserRepository)
	staffRepo := new(MockStaffRepository)
	studentRepo := new(MockStudentRepository)
	svc := newAuthFixture(userRepo, staffRepo, studentRepo)

	user := activeUser(t, "warden@example.com", "secret123")
	userRepo.On("FindByEmail", "warden@example.com").Return(user, nil)
	staffRepo.On("FindByEmail", "warden@example.com").Return(nil, errors.New("connection refused"))

	_, err := svc.Login("warden@example.com", "secret123")
	assert.ErrorIs(t, err, ErrProfileLookup)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	staffRepo := new(MockStaffRepository)
	studentRepo := new(MockStudentRepository)
	svc := newAuthFixture(userRepo, staffRepo, studentRepo)

	user := activeUser(t, "warden@example.com", "secret123")
	userRepo.On("FindByEmail", "warden@example.com").Return(user, nil)

	_, err := svc.Login("warden@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	staffRepo := new(MockStaffRepository)
	studentRepo := new(MockStudentRepository)
	svc := newAuthFixture(userRepo, staffRepo, studentRepo)

	user := activeUser(t, "old@example.com", "secret123")
	user.IsActive = false
	userRepo.On("FindByEmail", "old@example.com").Return(user, nil)

	_, err := svc.Login("old@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserInactive)
}
