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

type MessHandler struct {
	meals    *kvstore.Collection[model.Meal, *model.Meal]
	feedback *kvstore.Collection[model.FoodFeedback, *model.FoodFeedback]
	hub      *ws.Hub
}

func NewMessHandler(store kvstore.Store, hub *ws.Hub) *MessHandler {
	return &MessHandler{
		meals:    kvstore.NewCollection[model.Meal, *model.Meal](store, "meals"),
		feedback: kvstore.NewCollection[model.FoodFeedback, *model.FoodFeedback](store, "foodFeedback"),
		hub:      hub,
	}
}

func (h *MessHandler) GetMeals(c *fiber.Ctx) error {
	meals, err := h.meals.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(meals)
}

func (h *MessHandler) CreateMeal(c *fiber.Ctx) error {
	var meal model.Meal
	if err := c.BodyParser(&meal); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(meal)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	saved, err := h.meals.Add(c.UserContext(), meal)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("meals", "insert", strconv.FormatInt(saved.ID, 10),
		saved.Type+" scheduled for "+saved.Branch)
	return c.Status(201).JSON(fiber.Map{"message": "Meal scheduled", "data": saved})
}

func (h *MessHandler) UpdateMeal(c *fiber.Ctx) error {
	id, err := parseRecordID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}
	var req struct {
		Menu         string `json:"menu"`
		DispatchTime string `json:"dispatch_time"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.meals.Update(c.UserContext(), id, func(m *model.Meal) error {
		if req.Menu != "" {
			m.Menu = req.Menu
		}
		if req.DispatchTime != "" {
			m.DispatchTime = req.DispatchTime
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Meal not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("meals", "update", strconv.FormatInt(id, 10),
		updated.Type+" updated for "+updated.Branch)
	return c.JSON(fiber.Map{"message": "Meal updated", "data": updated})
}

func (h *MessHandler) DeleteMeal(c *fiber.Ctx) error {
	id, err := parseRecordID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}
	if err := h.meals.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Meal not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("meals", "delete", strconv.FormatInt(id, 10), "")
	return c.JSON(fiber.Map{"message": "Meal removed"})
}

func (h *MessHandler) ExportMeals(c *fiber.Ctx) error {
	meals, err := h.meals.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Type", "Menu", "Dispatch Time", "Branch", "Added"}
	rows := make([][]any, 0, len(meals))
	for _, m := range meals {
		rows = append(rows, []any{m.Type, m.Menu, m.DispatchTime, m.Branch, export.Timestamp(m.CreatedAt)})
	}
	return sendWorkbook(c, "MessSchedule", "Meals", headers, rows)
}

func (h *MessHandler) GetFeedback(c *fiber.Ctx) error {
	feedback, err := h.feedback.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(feedback)
}

func (h *MessHandler) CreateFeedback(c *fiber.Ctx) error {
	var fb model.FoodFeedback
	if err := c.BodyParser(&fb); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(validator.ValidateStruct(fb)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	saved, err := h.feedback.Add(c.UserContext(), fb)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	go h.hub.Publish("foodFeedback", "insert", strconv.FormatInt(saved.ID, 10),
		"Feedback from "+saved.StudentName)
	return c.Status(201).JSON(fiber.Map{"message": "Feedback submitted", "data": saved})
}

func (h *MessHandler) ExportFeedback(c *fiber.Ctx) error {
	feedback, err := h.feedback.List(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Student", "Branch", "Floor", "Type", "Details", "Rating", "Submitted"}
	rows := make([][]any, 0, len(feedback))
	for _, f := range feedback {
		rows = append(rows, []any{f.StudentName, f.Branch, f.Floor, f.FeedbackType, f.Details, f.Rating, export.Timestamp(f.CreatedAt)})
	}
	return sendWorkbook(c, "FoodFeedback", "Feedback", headers, rows)
}
