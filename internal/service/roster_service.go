package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/repository"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/validator"
)

var (
	ErrStudentIDExists = errors.New("a student with this student_id already exists")
	ErrStaffIDExists   = errors.New("a staff member with this staff_id already exists")
	ErrRecordNotFound  = errors.New("record not found")
	ErrUnknownBranch   = errors.New("unknown branch")
	ErrRoomExists      = errors.New("a room with this room_number already exists")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is at capacity")
)

// RosterService owns the student and staff rosters, the two largest
// Postgres-backed lists.
type RosterService interface {
	CreateStudent(req *model.Student, actor string) error
	UpdateStudent(id uuid.UUID, req *model.Student, actor string) (*model.Student, error)
	DeleteStudent(id uuid.UUID) error
	ListStudents(branch string) ([]model.Student, error)

	CreateStaff(req *model.Staff, actor string) error
	UpdateStaff(id uuid.UUID, req *model.Staff, actor string) (*model.Staff, error)
	DeleteStaff(id uuid.UUID) error
	ListStaff(branch string) ([]model.Staff, error)

	CreateRoom(req *model.Room, actor string) error
	ListRooms() ([]model.RoomOccupancy, error)
	AssignRoom(studentID uuid.UUID, roomNumber, actor string) (*model.Student, error)
}

type rosterService struct {
	studentRepo repository.StudentRepository
	staffRepo   repository.StaffRepository
	branchRepo  repository.BranchRepository
	roomRepo    repository.RoomRepository
	hub         *ws.Hub
}

func NewRosterService(studentRepo repository.StudentRepository, staffRepo repository.StaffRepository,
	branchRepo repository.BranchRepository, roomRepo repository.RoomRepository, hub *ws.Hub) RosterService {
	return &rosterService{
		studentRepo: studentRepo,
		staffRepo:   staffRepo,
		branchRepo:  branchRepo,
		roomRepo:    roomRepo,
		hub:         hub,
	}
}

// checkBranch rejects records naming a branch the deployment does not have.
func (s *rosterService) checkBranch(name string) error {
	if _, err := s.branchRepo.FindByName(name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownBranch
		}
		return err
	}
	return nil
}

func (s *rosterService) CreateStudent(req *model.Student, actor string) error {
	// Validation short-circuits before any persistence call.
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validator.FirstError(errs)
	}

	if err := s.checkBranch(req.Branch); err != nil {
		return err
	}

	// Friendly duplicate check before the unique index rejects it.
	existing, _ := s.studentRepo.FindByStudentID(req.StudentID)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrStudentIDExists
	}

	req.CreatedBy = actor
	req.UpdatedBy = actor
	if err := s.studentRepo.Create(req); err != nil {
		return err
	}

	go s.hub.Publish("students", "insert", req.ID.String(),
		fmt.Sprintf("Student '%s' added to %s", req.Name, req.Branch))
	return nil
}

func (s *rosterService) UpdateStudent(id uuid.UUID, req *model.Student, actor string) (*model.Student, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	if err := s.checkBranch(req.Branch); err != nil {
		return nil, err
	}

	existing, err := s.studentRepo.FindByID(id)
	if err != nil {
		return nil, ErrRecordNotFound
	}

	if req.StudentID != existing.StudentID {
		dup, _ := s.studentRepo.FindByStudentID(req.StudentID)
		if dup != nil && dup.ID != id {
			return nil, ErrStudentIDExists
		}
	}

	existing.StudentID = req.StudentID
	existing.Name = req.Name
	existing.Branch = req.Branch
	existing.CourseYear = req.CourseYear
	existing.RoomNumber = req.RoomNumber
	existing.ContactNumber = req.ContactNumber
	existing.Email = req.Email
	existing.UpdatedBy = actor

	if err := s.studentRepo.Update(existing); err != nil {
		return nil, err
	}

	go s.hub.Publish("students", "update", existing.ID.String(), "")
	return existing, nil
}

func (s *rosterService) DeleteStudent(id uuid.UUID) error {
	if _, err := s.studentRepo.FindByID(id); err != nil {
		return ErrRecordNotFound
	}
	if err := s.studentRepo.Delete(id); err != nil {
		return err
	}
	go s.hub.Publish("students", "delete", id.String(), "")
	return nil
}

func (s *rosterService) ListStudents(branch string) ([]model.Student, error) {
	return s.studentRepo.FindAll(branch)
}

func (s *rosterService) CreateStaff(req *model.Staff, actor string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validator.FirstError(errs)
	}

	if err := s.checkBranch(req.Branch); err != nil {
		return err
	}

	existing, _ := s.staffRepo.FindByStaffID(req.StaffID)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrStaffIDExists
	}

	if req.Role == "" {
		req.Role = model.RoleWarden
	}
	req.CreatedBy = actor
	req.UpdatedBy = actor
	if err := s.staffRepo.Create(req); err != nil {
		return err
	}

	go s.hub.Publish("staff", "insert", req.ID.String(),
		fmt.Sprintf("Staff '%s' added to %s", req.Name, req.Branch))
	return nil
}

func (s *rosterService) UpdateStaff(id uuid.UUID, req *model.Staff, actor string) (*model.Staff, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	if err := s.checkBranch(req.Branch); err != nil {
		return nil, err
	}

	existing, err := s.staffRepo.FindByID(id)
	if err != nil {
		return nil, ErrRecordNotFound
	}

	if req.StaffID != existing.StaffID {
		dup, _ := s.staffRepo.FindByStaffID(req.StaffID)
		if dup != nil && dup.ID != id {
			return nil, ErrStaffIDExists
		}
	}

	existing.StaffID = req.StaffID
	existing.Name = req.Name
	existing.Branch = req.Branch
	if req.Role != "" {
		existing.Role = req.Role
	}
	existing.ContactNumber = req.ContactNumber
	existing.Email = req.Email
	existing.UpdatedBy = actor

	if err := s.staffRepo.Update(existing); err != nil {
		return nil, err
	}

	go s.hub.Publish("staff", "update", existing.ID.String(), "")
	return existing, nil
}

func (s *rosterService) DeleteStaff(id uuid.UUID) error {
	if _, err := s.staffRepo.FindByID(id); err != nil {
		return ErrRecordNotFound
	}
	if err := s.staffRepo.Delete(id); err != nil {
		return err
	}
	go s.hub.Publish("staff", "delete", id.String(), "")
	return nil
}

func (s *rosterService) ListStaff(branch string) ([]model.Staff, error) {
	return s.staffRepo.FindAll(branch)
}

func (s *rosterService) CreateRoom(req *model.Room, actor string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validator.FirstError(errs)
	}
	if req.Branch != "" {
		if err := s.checkBranch(req.Branch); err != nil {
			return err
		}
	}

	existing, _ := s.roomRepo.FindByRoomNumber(req.RoomNumber)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrRoomExists
	}

	req.CreatedBy = actor
	req.UpdatedBy = actor
	if err := s.roomRepo.Create(req); err != nil {
		return err
	}

	go s.hub.Publish("rooms", "insert", req.ID.String(),
		fmt.Sprintf("Room %s added (%d beds)", req.RoomNumber, req.Capacity))
	return nil
}

// ListRooms joins each room with its live occupancy from the roster.
func (s *rosterService) ListRooms() ([]model.RoomOccupancy, error) {
	rooms, err := s.roomRepo.FindAll()
	if err != nil {
		return nil, err
	}

	view := make([]model.RoomOccupancy, 0, len(rooms))
	for _, room := range rooms {
		occupancy, err := s.studentRepo.CountByRoom(room.RoomNumber)
		if err != nil {
			return nil, err
		}
		view = append(view, model.RoomOccupancy{
			Room:          room,
			Occupancy:     occupancy,
			AvailableBeds: int64(room.Capacity) - occupancy,
		})
	}
	return view, nil
}

// AssignRoom moves a student into a room, refusing rooms already at
// capacity. An empty room number clears the assignment.
func (s *rosterService) AssignRoom(studentID uuid.UUID, roomNumber, actor string) (*model.Student, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		return nil, ErrRecordNotFound
	}
	if student.RoomNumber == roomNumber {
		return student, nil
	}

	if roomNumber != "" {
		room, err := s.roomRepo.FindByRoomNumber(roomNumber)
		if err != nil {
			return nil, ErrRoomNotFound
		}
		occupancy, err := s.studentRepo.CountByRoom(roomNumber)
		if err != nil {
			return nil, err
		}
		if occupancy >= int64(room.Capacity) {
			return nil, ErrRoomFull
		}
	}

	student.RoomNumber = roomNumber
	student.UpdatedBy = actor
	if err := s.studentRepo.Update(student); err != nil {
		return nil, err
	}

	go s.hub.Publish("students", "update", student.ID.String(),
		fmt.Sprintf("Student '%s' moved to room %s", student.Name, roomNumber))
	return student, nil
}
