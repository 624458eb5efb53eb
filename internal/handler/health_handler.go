package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sca-operations5/hostelapp-srikanth/internal/kvstore"
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/export"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/validator"
)

type HealthHandler struct {
	records *kvstore.Collection[model.HealthRecord, *model.HealthRecord]
	hub     *ws.Hub
}

func NewHealthHandler(store kvstore.Store, hub *ws.Hub) *HealthHandler {
	return &HealthHandler{
		records: kvstore.NewCollection[model.HealthRecord, *model.HealthRecord](store, "healthLog"),
		hub:     hub,
	}
}

func (h *HealthHandler) GetRecords(c *fiber.Ctx) error {
	records, err := h.records.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(records)
}

func (h *HealthHandler) CreateRecord(c *fiber.Ctx) error {
	var record model.HealthRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(record)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	saved, err := h.records.Add(c.UserContext(), record)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("healthLog", "insert", strconv.FormatInt(saved.ID, 10),
		"Health record for "+saved.StudentName)
	return c.Status(201).JSON(fiber.Map{"message": "Health record logged", "data": saved})
}

func (h *HealthHandler) ExportRecords(c *fiber.Ctx) error {
	records, err := h.records.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Student", "Branch", "Floor", "Illness", "Medications", "Hospital", "Hospital Details", "Expenses", "Incharge Notified", "Care Provided", "Logged"}
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{r.StudentName, r.Branch, r.Floor, r.IllnessReason, r.MedicationsTaken, r.SentToHospital, r.HospitalDetails, r.Expenses, r.FloorInchargeNotified, r.CareProvided, export.Timestamp(r.CreatedAt)})
	}
	return sendWorkbook(c, "HealthLog", "Health", headers, rows)
}
