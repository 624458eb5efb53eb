package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/service"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/export"
)

type RosterHandler struct {
	service service.RosterService
}

func NewRosterHandler(s service.RosterService) *RosterHandler {
	return &RosterHandler{service: s}
}

func (h *RosterHandler) GetStudents(c *fiber.Ctx) error {
	students, err := h.service.ListStudents(c.Query("branch"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(students)
}

func (h *RosterHandler) CreateStudent(c *fiber.Ctx) error {
	var student model.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateStudent(&student, getUserID(c)); err != nil {
		if errors.Is(err, service.ErrStudentIDExists) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Student added", "data": student})
}

func (h *RosterHandler) UpdateStudent(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var student model.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateStudent(id, &student, getUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrStudentIDExists):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Student updated", "data": updated})
}

func (h *RosterHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}
	if err := h.service.DeleteStudent(id); err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Student removed"})
}

func (h *RosterHandler) ExportStudents(c *fiber.Ctx) error {
	students, err := h.service.ListStudents(c.Query("branch"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Student ID", "Name", "Branch", "Course/Year", "Room", "Contact", "Email", "Added"}
	rows := make([][]any, 0, len(students))
	for _, s := range students {
		rows = append(rows, []any{s.StudentID, s.Name, s.Branch, s.CourseYear, s.RoomNumber, s.ContactNumber, s.Email, export.Timestamp(s.CreatedAt)})
	}
	return sendWorkbook(c, "StudentsList", "Students", headers, rows)
}

func (h *RosterHandler) GetStaff(c *fiber.Ctx) error {
	staff, err := h.service.ListStaff(c.Query("branch"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(staff)
}

func (h *RosterHandler) CreateStaff(c *fiber.Ctx) error {
	var staff model.Staff
	if err := c.BodyParser(&staff); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateStaff(&staff, getUserID(c)); err != nil {
		if errors.Is(err, service.ErrStaffIDExists) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Staff added", "data": staff})
}

func (h *RosterHandler) UpdateStaff(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	var staff model.Staff
	if err := c.BodyParser(&staff); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateStaff(id, &staff, getUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrStaffIDExists):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Staff updated", "data": updated})
}

func (h *RosterHandler) DeleteStaff(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}
	if err := h.service.DeleteStaff(id); err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Staff removed"})
}

func (h *RosterHandler) ExportStaff(c *fiber.Ctx) error {
	staff, err := h.service.ListStaff(c.Query("branch"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Staff ID", "Name", "Branch", "Role", "Contact", "Email", "Added"}
	rows := make([][]any, 0, len(staff))
	for _, s := range staff {
		rows = append(rows, []any{s.StaffID, s.Name, s.Branch, s.Role, s.ContactNumber, s.Email, export.Timestamp(s.CreatedAt)})
	}
	return sendWorkbook(c, "StaffList", "Staff", headers, rows)
}

func (h *RosterHandler) GetRooms(c *fiber.Ctx) error {
	rooms, err := h.service.ListRooms()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(rooms)
}

func (h *RosterHandler) CreateRoom(c *fiber.Ctx) error {
	var room model.Room
	if err := c.BodyParser(&room); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateRoom(&room, getUserID(c)); err != nil {
		if errors.Is(err, service.ErrRoomExists) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Room added", "data": room})
}

func (h *RosterHandler) AssignRoom(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var body struct {
		RoomNumber string `json:"room_number"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	student, err := h.service.AssignRoom(id, body.RoomNumber, getUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound), errors.Is(err, service.ErrRoomNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrRoomFull):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Room assignment updated", "data": student})
}
