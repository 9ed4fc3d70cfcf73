package handlers

import (
	"vitalog/app"
	"vitalog/middleware"
	"vitalog/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the user's profile, defaults included
func GetProfile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		return success(c, fiber.Map{"profile": a.User.Profile(c.Context(), userID)})
	}
}

// SaveProfile creates or replaces the user's profile
func SaveProfile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SaveProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		userID := middleware.GetUserID(c)

		profile, err := a.User.SaveProfile(c.Context(), userID, req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save profile", err)
		}

		return success(c, fiber.Map{"profile": profile})
	}
}
