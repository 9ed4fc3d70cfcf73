package handlers

import (
	"errors"
	"time"

	"vitalog/app"
	"vitalog/middleware"
	"vitalog/models"
	"vitalog/repository"

	"github.com/gofiber/fiber/v2"
)

// LogSleep records one night of sleep
func LogSleep(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateSleepEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		userID := middleware.GetUserID(c)

		entry, err := a.Sleep.Log(c.Context(), userID, req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save sleep entry", err)
		}

		return created(c, fiber.Map{"entry": entry})
	}
}

// GetSleepEntries lists a day's entries plus the recent average
func GetSleepEntries(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("date")
		if date == "" {
			return badRequest(c, "date is required")
		}

		days := c.QueryInt("days", 7)
		if days < 1 || days > 90 {
			days = 7
		}

		userID := middleware.GetUserID(c)
		avg := a.Sleep.RecentAverageDuration(c.Context(), userID, days, time.Now())

		return success(c, fiber.Map{
			"entries":             a.Sleep.ByDate(c.Context(), userID, date),
			"average_duration_s":  int64(avg.Seconds()),
			"average_window_days": days,
		})
	}
}

// UpdateSleepEntry edits one entry
func UpdateSleepEntry(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateSleepEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Sleep.Update(c.Context(), c.Params("id"), req.Patch()); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Sleep entry not found")
			}
			return serverErrorWithDetails(c, "Failed to update sleep entry", err)
		}

		return success(c, fiber.Map{"message": "Sleep entry updated"})
	}
}

// DeleteSleepEntry removes one entry
func DeleteSleepEntry(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Sleep.Remove(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Sleep entry not found")
			}
			return serverErrorWithDetails(c, "Failed to delete sleep entry", err)
		}

		return success(c, fiber.Map{"message": "Sleep entry deleted"})
	}
}
