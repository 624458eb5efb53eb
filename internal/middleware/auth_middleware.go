package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sca-operations5/hostelapp-srikanth/internal/model"
	"github.com/sca-operations5/hostelapp-srikanth/internal/repository"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/jwt"
)

// RequireAuth validates the session token and sets user info in context.
// A missing or invalid token is the API equivalent of "redirect to the
// sign-in page".
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Strict session check against the DB: signing out bumps the
		// token version and revokes every outstanding token.
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}
		if !user.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "User account is inactive"})
		}
		if user.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"error": "Session expired, please sign in again"})
		}

		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_email", claims.Email)
		c.Locals("user_role", claims.Role)
		c.Locals("user_branch", claims.Branch)

		return c.Next()
	}
}

// RequireRoles gates a route on an allow-list of roles. Evaluation order
// follows the navigation guard: an unresolved role ("profile setup
// incomplete") is rejected before the allow-list is consulted, so an
// incomplete profile never reaches gated content.
func RequireRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role == "" || role == model.RoleGuest {
			return c.Status(403).JSON(fiber.Map{"error": "Profile setup incomplete. Contact an administrator to be assigned a role."})
		}

		if !model.IsAllowed(role, allowed) {
			return c.Status(403).JSON(fiber.Map{
				"error": "Unauthorized: role '" + role + "' may not access this resource",
			})
		}

		return c.Next()
	}
}
