package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sca-operations5/hostelapp-srikanth/pkg/export"
)

// Helpers to pull user info from context (set by the auth middleware).
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func getUserEmail(c *fiber.Ctx) string {
	email := c.Locals("user_email")
	if email == nil {
		return ""
	}
	return email.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// sendWorkbook streams an .xlsx attachment built from the visible list. An
// empty list is a user-facing "no data" notice, not a server failure.
func sendWorkbook(c *fiber.Ctx, baseName, sheet string, headers []string, rows [][]any) error {
	buf, err := export.Workbook(sheet, headers, rows)
	if errors.Is(err, export.ErrNoData) {
		return c.Status(400).JSON(fiber.Map{"error": "No data to export"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.FileName(baseName)+`"`)
	return c.Send(buf)
}
