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

type LeaveHandler struct {
	leaves  *kvstore.Collection[model.LeaveRequest, *model.LeaveRequest]
	outings *kvstore.Collection[model.OutingPermission, *model.OutingPermission]
	hub     *ws.Hub
}

func NewLeaveHandler(store kvstore.Store, hub *ws.Hub) *LeaveHandler {
	return &LeaveHandler{
		leaves:  kvstore.NewCollection[model.LeaveRequest, *model.LeaveRequest](store, "leaveRequests"),
		outings: kvstore.NewCollection[model.OutingPermission, *model.OutingPermission](store, "outingPermissions"),
		hub:     hub,
	}
}

func parseRecordID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func (h *LeaveHandler) GetLeaves(c *fiber.Ctx) error {
	leaves, err := h.leaves.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(leaves)
}

func (h *LeaveHandler) CreateLeave(c *fiber.Ctx) error {
	var leave model.LeaveRequest
	if err := c.BodyParser(&leave); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(leave)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	leave.Status = model.ApprovalPending

	saved, err := h.leaves.Add(c.UserContext(), leave)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("leaveRequests", "insert", strconv.FormatInt(saved.ID, 10),
		"Leave request from "+saved.ApplicantName)
	return c.Status(201).JSON(fiber.Map{"message": "Leave request submitted", "data": saved})
}

func (h *LeaveHandler) UpdateLeaveStatus(c *fiber.Ctx) error {
	id, err := parseRecordID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if !model.IsValidApprovalStatus(req.Status) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	updated, err := h.leaves.Update(c.UserContext(), id, func(l *model.LeaveRequest) error {
		l.Status = req.Status
		return nil
	})
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Leave request not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("leaveRequests", "update", strconv.FormatInt(id, 10),
		"Leave request "+updated.Status)
	return c.JSON(fiber.Map{"message": "Leave request updated", "data": updated})
}

func (h *LeaveHandler) ExportLeaves(c *fiber.Ctx) error {
	leaves, err := h.leaves.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Applicant", "Type", "Start Date", "End Date", "Reason", "Status", "Requested"}
	rows := make([][]any, 0, len(leaves))
	for _, l := range leaves {
		rows = append(rows, []any{l.ApplicantName, l.LeaveType, l.StartDate, l.EndDate, l.Reason, l.Status, export.Timestamp(l.CreatedAt)})
	}
	return sendWorkbook(c, "LeaveRequests", "Leaves", headers, rows)
}

func (h *LeaveHandler) GetOutings(c *fiber.Ctx) error {
	outings, err := h.outings.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(outings)
}

func (h *LeaveHandler) CreateOuting(c *fiber.Ctx) error {
	var outing model.OutingPermission
	if err := c.BodyParser(&outing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(outing)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	outing.Status = model.ApprovalPending

	saved, err := h.outings.Add(c.UserContext(), outing)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("outingPermissions", "insert", strconv.FormatInt(saved.ID, 10),
		"Outing request from "+saved.StudentName)
	return c.Status(201).JSON(fiber.Map{"message": "Outing permission submitted", "data": saved})
}

func (h *LeaveHandler) UpdateOutingStatus(c *fiber.Ctx) error {
	id, err := parseRecordID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}
	var req struct {
		Status         string `json:"status"`
		ParentNotified string `json:"parent_notified"`
		ParentResponse string `json:"parent_response"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Status != "" && !model.IsValidApprovalStatus(req.Status) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	updated, err := h.outings.Update(c.UserContext(), id, func(o *model.OutingPermission) error {
		if req.Status != "" {
			o.Status = req.Status
		}
		if req.ParentNotified != "" {
			o.ParentNotified = req.ParentNotified
		}
		if req.ParentResponse != "" {
			o.ParentResponse = req.ParentResponse
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Outing permission not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("outingPermissions", "update", strconv.FormatInt(id, 10),
		"Outing permission "+updated.Status)
	return c.JSON(fiber.Map{"message": "Outing permission updated", "data": updated})
}

func (h *LeaveHandler) ExportOutings(c *fiber.Ctx) error {
	outings, err := h.outings.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Student", "Branch", "Destination", "Reason", "Departure", "Return", "Parent Notified", "Parent Response", "Status", "Requested"}
	rows := make([][]any, 0, len(outings))
	for _, o := range outings {
		rows = append(rows, []any{o.StudentName, o.Branch, o.Destination, o.Reason, o.DepartureTime, o.ReturnTime, o.ParentNotified, o.ParentResponse, o.Status, export.Timestamp(o.CreatedAt)})
	}
	return sendWorkbook(c, "OutingPermissions", "Outings", headers, rows)
}
