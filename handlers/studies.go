package handlers

import (
	"errors"

	"vitalog/app"
	"vitalog/middleware"
	"vitalog/models"
	"vitalog/repository"

	"github.com/gofiber/fiber/v2"
)

// SaveStudy adds a medical study to the user's library
func SaveStudy(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateStudyRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		userID := middleware.GetUserID(c)

		study, err := a.Study.Save(c.Context(), userID, req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save study", err)
		}

		return created(c, fiber.Map{"study": study})
	}
}

// GetStudies lists saved studies, optionally filtered by supplement name
func GetStudies(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		return success(c, fiber.Map{
			"studies": a.Study.List(c.Context(), userID, c.Query("supplement")),
		})
	}
}

// UpdateStudy edits one study
func UpdateStudy(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateStudyRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Study.Update(c.Context(), c.Params("id"), req.Patch()); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Study not found")
			}
			return serverErrorWithDetails(c, "Failed to update study", err)
		}

		return success(c, fiber.Map{"message": "Study updated"})
	}
}

// DeleteStudy removes one study
func DeleteStudy(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Study.Remove(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Study not found")
			}
			return serverErrorWithDetails(c, "Failed to delete study", err)
		}

		return success(c, fiber.Map{"message": "Study deleted"})
	}
}
