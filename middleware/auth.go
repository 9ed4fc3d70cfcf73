package middleware

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,128}$`)

// UserRequired resolves the acting user from the X-User-ID header. The app
// is a single-user companion backend; the header identifies which device
// profile the request belongs to, it is not an authentication scheme.
func UserRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing X-User-ID header",
			})
		}
		if !userIDPattern.MatchString(userID) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid user id",
			})
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}
