package handler

import (
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/sca-operations5/hostelapp-srikanth/internal/kvstore"
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/repository"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
)

type AttendanceHandler struct {
	store       kvstore.Store
	studentRepo repository.StudentRepository
	hub         *ws.Hub
	mu          sync.Mutex
}

func NewAttendanceHandler(store kvstore.Store, studentRepo repository.StudentRepository, hub *ws.Hub) *AttendanceHandler {
	return &AttendanceHandler{store: store, studentRepo: studentRepo, hub: hub}
}

func attendanceKey(branch, date string) string {
	return fmt.Sprintf("attendance:%s:%s", branch, date)
}

// GetSheet returns the marks for one branch and date. An unmarked sheet
// comes back with an empty marks map, not a 404.
func (h *AttendanceHandler) GetSheet(c *fiber.Ctx) error {
	branch := c.Query("branch")
	date := c.Query("date")
	if branch == "" || date == "" {
		return c.Status(400).JSON(fiber.Map{"error": "branch and date are required"})
	}

	sheet, ok, err := kvstore.GetDocument[model.AttendanceSheet](c.UserContext(), h.store, attendanceKey(branch, date))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if !ok {
		sheet = model.AttendanceSheet{Branch: branch, Date: date, Marks: map[string]string{}}
	}
	if sheet.Marks == nil {
		sheet.Marks = map[string]string{}
	}
	return c.JSON(sheet)
}

// MarkSheet merges the submitted marks into the stored sheet. Students the
// request does not name keep their existing mark.
func (h *AttendanceHandler) MarkSheet(c *fiber.Ctx) error {
	var req model.AttendanceSheet
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Branch == "" || req.Date == "" {
		return c.Status(400).JSON(fiber.Map{"error": "branch and date are required"})
	}
	for id, mark := range req.Marks {
		if mark != model.AttendancePresent && mark != model.AttendanceAbsent {
			return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("invalid mark '%s' for student %s", mark, id)})
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	key := attendanceKey(req.Branch, req.Date)
	sheet, ok, err := kvstore.GetDocument[model.AttendanceSheet](c.UserContext(), h.store, key)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if !ok || sheet.Marks == nil {
		sheet = model.AttendanceSheet{Branch: req.Branch, Date: req.Date, Marks: map[string]string{}}
	}
	for id, mark := range req.Marks {
		sheet.Marks[id] = mark
	}
	if err := kvstore.PutDocument(c.UserContext(), h.store, key, sheet); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	go h.hub.Publish("attendance", "update", key,
		fmt.Sprintf("Attendance marked for %s on %s", req.Branch, req.Date))
	return c.JSON(fiber.Map{"message": "Attendance saved", "data": sheet})
}

// ExportSheet exports one branch-day sheet with student names resolved
// from the roster. Unmarked students appear as absent.
func (h *AttendanceHandler) ExportSheet(c *fiber.Ctx) error {
	branch := c.Query("branch")
	date := c.Query("date")
	if branch == "" || date == "" {
		return c.Status(400).JSON(fiber.Map{"error": "branch and date are required"})
	}

	sheet, _, err := kvstore.GetDocument[model.AttendanceSheet](c.UserContext(), h.store, attendanceKey(branch, date))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	students, err := h.studentRepo.FindAll(branch)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Student ID", "Name", "Branch", "Date", "Status"}
	rows := make([][]any, 0, len(students))
	for _, s := range students {
		mark, ok := sheet.Marks[s.StudentID]
		if !ok {
			mark = model.AttendanceAbsent
		}
		rows = append(rows, []any{s.StudentID, s.Name, branch, date, mark})
	}
	return sendWorkbook(c, "Attendance_"+branch, "Attendance", headers, rows)
}
