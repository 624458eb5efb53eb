package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/service"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/export"
)

type MeetingHandler struct {
	service service.MeetingService
}

func NewMeetingHandler(s service.MeetingService) *MeetingHandler {
	return &MeetingHandler{service: s}
}

func (h *MeetingHandler) GetMeetings(c *fiber.Ctx) error {
	meetings, err := h.service.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(meetings)
}

func (h *MeetingHandler) CreateMeeting(c *fiber.Ctx) error {
	var meeting model.Meeting
	if err := c.BodyParser(&meeting); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(&meeting, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Meeting scheduled", "data": meeting})
}

func (h *MeetingHandler) DeleteMeeting(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid meeting ID"})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrMeetingNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Meeting deleted"})
}

func (h *MeetingHandler) ExportMeetings(c *fiber.Ctx) error {
	meetings, err := h.service.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Title", "Description", "Start", "End", "Participants", "Location", "Branch"}
	rows := make([][]any, 0, len(meetings))
	for _, m := range meetings {
		start := ""
		if m.StartTime != nil {
			start = export.Timestamp(*m.StartTime)
		}
		end := ""
		if m.EndTime != nil {
			end = export.Timestamp(*m.EndTime)
		}
		branch := m.Branch
		if branch == "" {
			branch = "All Branches"
		}
		rows = append(rows, []any{m.Title, m.Description, start, end, m.Participants, m.Location, branch})
	}
	return sendWorkbook(c, "MeetingsSchedule", "Meetings", headers, rows)
}
