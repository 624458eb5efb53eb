package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/repository"
)

type BranchHandler struct {
	repo repository.BranchRepository
}

func NewBranchHandler(repo repository.BranchRepository) *BranchHandler {
	return &BranchHandler{repo: repo}
}

func (h *BranchHandler) GetBranches(c *fiber.Ctx) error {
	branches, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(branches)
}

func (h *BranchHandler) GetFloors(c *fiber.Ctx) error {
	return c.JSON(model.Floors)
}
