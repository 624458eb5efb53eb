package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/service"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/export"
)

type ComplaintHandler struct {
	service service.ComplaintService
}

func NewComplaintHandler(s service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: s}
}

func (h *ComplaintHandler) GetComplaints(c *fiber.Ctx) error {
	complaints, err := h.service.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(complaints)
}

func (h *ComplaintHandler) CreateComplaint(c *fiber.Ctx) error {
	var complaint model.Complaint
	if err := c.BodyParser(&complaint); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(&complaint, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Complaint submitted", "data": complaint})
}

func (h *ComplaintHandler) UpdateComplaint(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid complaint ID"})
	}

	var req service.ComplaintUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateStatus(id, &req, getUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComplaintNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrComplaintResolved):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Complaint updated", "data": updated})
}

func (h *ComplaintHandler) GetComplaintStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch complaint stats"})
	}
	return c.JSON(stats)
}

func (h *ComplaintHandler) ExportComplaints(c *fiber.Ctx) error {
	complaints, err := h.service.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Title", "Description", "Location", "Priority", "Status", "Cost", "Comment", "Resolved At", "Date"}
	rows := make([][]any, 0, len(complaints))
	for _, cp := range complaints {
		resolved := ""
		if cp.ResolvedAt != nil {
			resolved = export.Timestamp(*cp.ResolvedAt)
		}
		cost := ""
		if cp.Cost != nil {
			cost = strconv.FormatInt(*cp.Cost, 10)
		}
		rows = append(rows, []any{cp.Title, cp.Description, cp.Location, cp.Priority, cp.Status, cost, cp.ResolutionComment, resolved, export.Timestamp(cp.CreatedAt)})
	}
	return sendWorkbook(c, "ComplaintsLog", "Complaints", headers, rows)
}
