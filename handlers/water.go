package handlers

import (
	"errors"

	"vitalog/app"
	"vitalog/middleware"
	"vitalog/models"
	"vitalog/repository"

	"github.com/gofiber/fiber/v2"
)

// LogWaterIntake records one drink
func LogWaterIntake(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateWaterIntakeRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		userID := middleware.GetUserID(c)

		intake, err := a.Water.Log(c.Context(), userID, req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save water intake", err)
		}

		return created(c, fiber.Map{"intake": intake})
	}
}

// GetWaterIntakes lists a day's intakes with the running total
func GetWaterIntakes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("date")
		if date == "" {
			return badRequest(c, "date is required")
		}

		userID := middleware.GetUserID(c)
		intakes := a.Water.ByDate(c.Context(), userID, date)

		return success(c, fiber.Map{
			"intakes":  intakes,
			"total_ml": a.Water.TotalForDate(c.Context(), userID, date),
		})
	}
}

// UpdateWaterIntake edits one intake
func UpdateWaterIntake(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateWaterIntakeRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Water.Update(c.Context(), c.Params("id"), req.Patch()); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Water intake not found")
			}
			return serverErrorWithDetails(c, "Failed to update water intake", err)
		}

		return success(c, fiber.Map{"message": "Water intake updated"})
	}
}

// DeleteWaterIntake removes one intake
func DeleteWaterIntake(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Water.Remove(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Water intake not found")
			}
			return serverErrorWithDetails(c, "Failed to delete water intake", err)
		}

		return success(c, fiber.Map{"message": "Water intake deleted"})
	}
}
