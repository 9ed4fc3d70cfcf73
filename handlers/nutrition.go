package handlers

import (
	"errors"

	"vitalog/app"
	"vitalog/middleware"
	"vitalog/models"
	"vitalog/repository"

	"github.com/gofiber/fiber/v2"
)

// LogNutrition records one food item or meal
func LogNutrition(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNutritionEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		userID := middleware.GetUserID(c)

		entry, err := a.Nutrition.Log(c.Context(), userID, req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save nutrition entry", err)
		}

		return created(c, fiber.Map{"entry": entry})
	}
}

// GetNutritionEntries lists a day's entries with macro totals
func GetNutritionEntries(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("date")
		if date == "" {
			return badRequest(c, "date is required")
		}

		userID := middleware.GetUserID(c)

		return success(c, fiber.Map{
			"entries": a.Nutrition.ByDate(c.Context(), userID, date),
			"totals":  a.Nutrition.TotalsForDate(c.Context(), userID, date),
		})
	}
}

// UpdateNutritionEntry edits one entry
func UpdateNutritionEntry(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateNutritionEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Nutrition.Update(c.Context(), c.Params("id"), req.Patch()); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Nutrition entry not found")
			}
			return serverErrorWithDetails(c, "Failed to update nutrition entry", err)
		}

		return success(c, fiber.Map{"message": "Nutrition entry updated"})
	}
}

// DeleteNutritionEntry removes one entry
func DeleteNutritionEntry(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Nutrition.Remove(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Nutrition entry not found")
			}
			return serverErrorWithDetails(c, "Failed to delete nutrition entry", err)
		}

		return success(c, fiber.Map{"message": "Nutrition entry deleted"})
	}
}
