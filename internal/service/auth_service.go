package service

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/repository"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrSessionRevoked     = errors.New("session expired, please sign in again")
	// ErrProfileLookup marks an unexpected failure while resolving the role,
	// distinct from the expected "no profile yet" (which resolves to guest).
	ErrProfileLookup = errors.New("failed to look up user profile")
	ErrEmailExists   = errors.New("an account with this email already exists")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Logout(userID uuid.UUID) error
	// GetSession re-runs role resolution against the profile tables, so a
	// profile created after sign-in is picked up without a new token.
	GetSession(tokenString string) (*model.Session, error)
	Register(req *RegisterRequest, creatorID string) (*model.User, error)
}

type LoginResponse struct {
	Token   string        `json:"token"`
	Session model.Session `json:"session"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type authService struct {
	userRepo    repository.UserRepository
	staffRepo   repository.StaffRepository
	studentRepo repository.StudentRepository
	hub         *ws.Hub
	log         *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, staffRepo repository.StaffRepository,
	studentRepo repository.StudentRepository, hub *ws.Hub, log *zap.Logger) AuthService {
	return &authService{
		userRepo:    userRepo,
		staffRepo:   staffRepo,
		studentRepo: studentRepo,
		hub:         hub,
		log:         log,
	}
}

// resolveRole implements the role resolution policy: a staff profile wins
// (its role field is authoritative); otherwise a student profile implies the
// fixed "student" role; otherwise the session is a guest with an incomplete
// profile. Lookup failures are surfaced, never silently treated as "no
// profile".
func (s *authService) resolveRole(email string) (role, branch string, err error) {
	staff, err := s.staffRepo.FindByEmail(email)
	if err == nil {
		if model.IsStaffRole(staff.Role) {
			return staff.Role, staff.Branch, nil
		}
		return model.RoleGuest, staff.Branch, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", ErrProfileLookup
	}

	student, err := s.studentRepo.FindByEmail(email)
	if err == nil {
		return model.RoleStudent, student.Branch, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", ErrProfileLookup
	}

	return model.RoleGuest, "", nil
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	role, branch, err := s.resolveRole(user.Email)
	if err != nil {
		s.log.Error("role resolution failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	// Single session: a fresh token version invalidates earlier tokens.
	newTokenVersion := uuid.New().String()
	if err := s.userRepo.UpdateTokenVersion(user.ID, newTokenVersion); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, role, branch, newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	s.hub.Publish("sessions", "signed_in", user.ID.String(), user.Email+" signed in")

	return &LoginResponse{
		Token: token,
		Session: model.Session{
			UserID:          user.ID,
			Email:           user.Email,
			Role:            role,
			Branch:          branch,
			ProfileComplete: role != model.RoleGuest,
		},
	}, nil
}

func (s *authService) Logout(userID uuid.UUID) error {
	// Bumping the token version revokes every outstanding token.
	if err := s.userRepo.UpdateTokenVersion(userID, uuid.New().String()); err != nil {
		return err
	}
	s.hub.Publish("sessions", "signed_out", userID.String(), "")
	return nil
}

func (s *authService) GetSession(tokenString string) (*model.Session, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, ErrSessionRevoked
	}

	role, branch, err := s.resolveRole(user.Email)
	if err != nil {
		return nil, err
	}

	return &model.Session{
		UserID:          user.ID,
		Email:           user.Email,
		Role:            role,
		Branch:          branch,
		ProfileComplete: role != model.RoleGuest,
	}, nil
}

func (s *authService) Register(req *RegisterRequest, creatorID string) (*model.User, error) {
	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	user := &model.User{
		Email:    req.Email,
		IsActive: true,
	}
	user.CreatedBy = creatorID
	user.UpdatedBy = creatorID
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
