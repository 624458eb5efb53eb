package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sca-operations5/hostelapp-srikanth/internal/kvstore"
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/export"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/validator"
)

type TransportHandler struct {
	vehicles   *kvstore.Collection[model.Vehicle, *model.Vehicle]
	logs       *kvstore.Collection[model.VehicleLog, *model.VehicleLog]
	attendance *kvstore.Collection[model.DriverAttendance, *model.DriverAttendance]
	hub        *ws.Hub
}

func NewTransportHandler(store kvstore.Store, hub *ws.Hub) *TransportHandler {
	return &TransportHandler{
		vehicles:   kvstore.NewCollection[model.Vehicle, *model.Vehicle](store, "vehicles"),
		logs:       kvstore.NewCollection[model.VehicleLog, *model.VehicleLog](store, "vehicleLogs"),
		attendance: kvstore.NewCollection[model.DriverAttendance, *model.DriverAttendance](store, "driverAttendance"),
		hub:        hub,
	}
}

func (h *TransportHandler) GetVehicles(c *fiber.Ctx) error {
	vehicles, err := h.vehicles.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(vehicles)
}

func (h *TransportHandler) CreateVehicle(c *fiber.Ctx) error {
	var vehicle model.Vehicle
	if err := c.BodyParser(&vehicle); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(vehicle)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if vehicle.Status == "" {
		vehicle.Status = model.VehicleActive
	}

	saved, err := h.vehicles.Add(c.UserContext(), vehicle)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("vehicles", "insert", strconv.FormatInt(saved.ID, 10),
		"Vehicle "+saved.Number+" added")
	return c.Status(201).JSON(fiber.Map{"message": "Vehicle added", "data": saved})
}

// ToggleVehicle flips a vehicle between active and inactive.
func (h *TransportHandler) ToggleVehicle(c *fiber.Ctx) error {
	id, err := parseRecordID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	updated, err := h.vehicles.Update(c.UserContext(), id, func(v *model.Vehicle) error {
		if v.Status == model.VehicleActive {
			v.Status = model.VehicleInactive
		} else {
			v.Status = model.VehicleActive
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Vehicle not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("vehicles", "update", strconv.FormatInt(id, 10),
		"Vehicle "+updated.Number+" is now "+updated.Status)
	return c.JSON(fiber.Map{"message": "Vehicle updated", "data": updated})
}

func (h *TransportHandler) ExportVehicles(c *fiber.Ctx) error {
	vehicles, err := h.vehicles.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Number", "Driver", "Route", "Status", "Added"}
	rows := make([][]any, 0, len(vehicles))
	for _, v := range vehicles {
		rows = append(rows, []any{v.Number, v.Driver, v.Route, v.Status, export.Timestamp(v.CreatedAt)})
	}
	return sendWorkbook(c, "Vehicles", "Vehicles", headers, rows)
}

func (h *TransportHandler) GetLogs(c *fiber.Ctx) error {
	logs, err := h.logs.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(logs)
}

func (h *TransportHandler) CreateLog(c *fiber.Ctx) error {
	var entry model.VehicleLog
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(entry)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	switch entry.Type {
	case model.LogMileage:
		if entry.Reading == "" {
			return c.Status(400).JSON(fiber.Map{"error": "missing required field 'reading'"})
		}
	case model.LogRefuel:
		if entry.FuelAmount == "" || entry.Cost == "" {
			return c.Status(400).JSON(fiber.Map{"error": "refuel entries need fuel_amount and cost"})
		}
	case model.LogMaintenance:
		if entry.Notes == "" {
			return c.Status(400).JSON(fiber.Map{"error": "missing required field 'notes'"})
		}
	}

	saved, err := h.logs.Add(c.UserContext(), entry)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("vehicleLogs", "insert", strconv.FormatInt(saved.ID, 10),
		entry.Type+" logged for "+entry.VehicleNumber)
	return c.Status(201).JSON(fiber.Map{"message": "Log entry added", "data": saved})
}

func (h *TransportHandler) GetDriverAttendance(c *fiber.Ctx) error {
	marks, err := h.attendance.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(marks)
}

func (h *TransportHandler) RecordDriverAttendance(c *fiber.Ctx) error {
	var mark model.DriverAttendance
	if err := c.BodyParser(&mark); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(mark)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	saved, err := h.attendance.Add(c.UserContext(), mark)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("driverAttendance", "insert", strconv.FormatInt(saved.ID, 10),
		saved.Driver+" marked "+saved.Status)
	return c.Status(201).JSON(fiber.Map{"message": "Attendance recorded", "data": saved})
}

func (h *TransportHandler) ExportDriverAttendance(c *fiber.Ctx) error {
	marks, err := h.attendance.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Driver", "Date", "Status", "Recorded"}
	rows := make([][]any, 0, len(marks))
	for _, m := range marks {
		rows = append(rows, []any{m.Driver, m.Date, m.Status, export.Timestamp(m.CreatedAt)})
	}
	return sendWorkbook(c, "DriverAttendanceLog", "Driver Attendance", headers, rows)
}

func (h *TransportHandler) ExportLogs(c *fiber.Ctx) error {
	logs, err := h.logs.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Vehicle", "Type", "Date", "Reading", "Fuel Amount", "Cost", "Notes", "Logged"}
	rows := make([][]any, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []any{l.VehicleNumber, l.Type, l.Date, l.Reading, l.FuelAmount, l.Cost, l.Notes, export.Timestamp(l.CreatedAt)})
	}
	return sendWorkbook(c, "VehicleLogs", "Logs", headers, rows)
}
