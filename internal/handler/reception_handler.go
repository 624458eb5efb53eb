package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sca-operations5/hostelapp-srikanth/internal/kvstore"
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/export"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/validator"
)

type ReceptionHandler struct {
	visitors *kvstore.Collection[model.VisitorEntry, *model.VisitorEntry]
	hub      *ws.Hub
	now      func() time.Time
}

func NewReceptionHandler(store kvstore.Store, hub *ws.Hub) *ReceptionHandler {
	return &ReceptionHandler{
		visitors: kvstore.NewCollection[model.VisitorEntry, *model.VisitorEntry](store, "receptionLog"),
		hub:      hub,
		now:      time.Now,
	}
}

func (h *ReceptionHandler) GetVisitors(c *fiber.Ctx) error {
	visitors, err := h.visitors.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(visitors)
}

func (h *ReceptionHandler) CreateVisitor(c *fiber.Ctx) error {
	var visitor model.VisitorEntry
	if err := c.BodyParser(&visitor); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(visitor)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if visitor.EntryTime == "" {
		visitor.EntryTime = h.now().Format(time.RFC3339)
	}
	visitor.ExitTime = ""

	saved, err := h.visitors.Add(c.UserContext(), visitor)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("receptionLog", "insert", strconv.FormatInt(saved.ID, 10),
		"Visitor "+saved.Name+" checked in")
	return c.Status(201).JSON(fiber.Map{"message": "Visitor logged", "data": saved})
}

// CheckoutVisitor stamps the exit time. Checking out twice keeps the first
// exit time.
func (h *ReceptionHandler) CheckoutVisitor(c *fiber.Ctx) error {
	id, err := parseRecordID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	updated, err := h.visitors.Update(c.UserContext(), id, func(v *model.VisitorEntry) error {
		if v.ExitTime == "" {
			v.ExitTime = h.now().Format(time.RFC3339)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Visitor entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("receptionLog", "update", strconv.FormatInt(id, 10),
		"Visitor "+updated.Name+" checked out")
	return c.JSON(fiber.Map{"message": "Visitor checked out", "data": updated})
}

func (h *ReceptionHandler) ExportVisitors(c *fiber.Ctx) error {
	visitors, err := h.visitors.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Name", "Phone", "Address", "Purpose", "Student", "Branch", "Entry", "Exit"}
	rows := make([][]any, 0, len(visitors))
	for _, v := range visitors {
		exit := "On premises"
		if v.ExitTime != "" {
			exit = visitTimestamp(v.ExitTime)
		}
		rows = append(rows, []any{v.Name, v.Phone, v.Address, v.Purpose, v.RelatedStudentName, v.RelatedStudentBranch, visitTimestamp(v.EntryTime), exit})
	}
	return sendWorkbook(c, "ReceptionLog", "Visitors", headers, rows)
}

// visitTimestamp renders a stored RFC3339 entry/exit time the way every
// other export renders timestamps. A value that doesn't parse (older
// records logged free-form) is kept as-is.
func visitTimestamp(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return export.Timestamp(t)
}
