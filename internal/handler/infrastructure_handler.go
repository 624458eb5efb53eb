package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/sca-operations5/hostelapp-srikanth/internal/kvstore"
	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/repository"
	"github.com/sca-operations5/hostelapp-srikanth/internal/service"
	"github.com/sca-operations5/hostelapp-srikanth/internal/ws"
)

type InfrastructureHandler struct {
	store      kvstore.Store
	branchRepo repository.BranchRepository
	hub        *ws.Hub
	mu         sync.Mutex
}

func NewInfrastructureHandler(store kvstore.Store, branchRepo repository.BranchRepository, hub *ws.Hub) *InfrastructureHandler {
	return &InfrastructureHandler{store: store, branchRepo: branchRepo, hub: hub}
}

func parseBranchID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("branchID"), 10, 32)
	return uint(id), err
}

// GetCounts returns the count document for one branch, zero counts when
// nothing has been recorded yet.
func (h *InfrastructureHandler) GetCounts(c *fiber.Ctx) error {
	branchID, err := parseBranchID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch ID"})
	}

	counts, _, err := kvstore.GetDocument[model.Infrastructure](c.UserContext(), h.store, service.InfraKey(branchID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(counts)
}

// PutCounts merges the submitted counts into the branch document. A field
// the request omits keeps its stored value; only named fields change.
func (h *InfrastructureHandler) PutCounts(c *fiber.Ctx) error {
	branchID, err := parseBranchID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch ID"})
	}

	var submitted map[string]int
	if err := json.Unmarshal(c.Body(), &submitted); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	key := service.InfraKey(branchID)
	counts, _, err := kvstore.GetDocument[model.Infrastructure](c.UserContext(), h.store, key)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	// Overlay via the JSON field names so the count list stays in one place.
	raw, err := json.Marshal(counts)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	merged := map[string]int{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	for field, value := range submitted {
		if _, known := merged[field]; !known {
			return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("unknown count field '%s'", field)})
		}
		merged[field] = value
	}
	raw, err = json.Marshal(merged)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if err := json.Unmarshal(raw, &counts); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	if err := kvstore.PutDocument(c.UserContext(), h.store, key, counts); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	go h.hub.Publish("infrastructure", "update", strconv.FormatUint(uint64(branchID), 10), "Infrastructure counts updated")
	return c.JSON(fiber.Map{"message": "Infrastructure saved", "data": counts})
}

// ExportCounts exports every branch's counts, one row per branch.
func (h *InfrastructureHandler) ExportCounts(c *fiber.Ctx) error {
	branches, err := h.branchRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	headers := []string{"Branch", "Rooms", "AC Rooms", "Beds", "Fans", "Lights", "Chairs", "Digital Boards", "Planks",
		"Reception Tables", "Reception Chairs", "RO Plants", "Lab Equipments", "Mosquito Meshes", "Doors",
		"Cameras", "CC Cameras", "Kitchen Equipments", "Bathroom Hangers", "Student Capacity", "Room Capacity"}
	rows := make([][]any, 0, len(branches))
	for _, b := range branches {
		counts, _, err := kvstore.GetDocument[model.Infrastructure](c.UserContext(), h.store, service.InfraKey(b.ID))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		rows = append(rows, []any{b.Name, counts.Rooms, counts.ACRooms, counts.Beds, counts.Fans, counts.Lights,
			counts.Chairs, counts.DigitalBoards, counts.Planks, counts.ReceptionTables, counts.ReceptionChairs,
			counts.ROPlants, counts.LabEquipments, counts.MosquitoMeshes, counts.Doors, counts.Cameras,
			counts.CCCameras, counts.KitchenEquipments, counts.BathroomHangers, counts.StudentCapacity, counts.RoomCapacity})
	}
	return sendWorkbook(c, "Infrastructure", "Infrastructure", headers, rows)
}
