package handlers

import (
	"errors"

	"vitalog/app"
	"vitalog/middleware"
	"vitalog/models"
	"vitalog/repository"
	"vitalog/services"

	"github.com/gofiber/fiber/v2"
)

// CreateSupplement adds a supplement to the user's cabinet
func CreateSupplement(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateSupplementRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		userID := middleware.GetUserID(c)

		supplement, err := a.Supplement.Create(c.Context(), userID, req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save supplement", err)
		}

		return created(c, fiber.Map{"supplement": supplement})
	}
}

// GetSupplements lists the user's supplements
func GetSupplements(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		activeOnly := c.QueryBool("active", false)

		return success(c, fiber.Map{
			"supplements": a.Supplement.List(c.Context(), userID, activeOnly),
		})
	}
}

// UpdateSupplement edits one supplement
func UpdateSupplement(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateSupplementRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Supplement.Update(c.Context(), c.Params("id"), req.Patch()); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Supplement not found")
			}
			return serverErrorWithDetails(c, "Failed to update supplement", err)
		}

		return success(c, fiber.Map{"message": "Supplement updated"})
	}
}

// DeleteSupplement removes one supplement
func DeleteSupplement(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Supplement.Remove(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Supplement not found")
			}
			return serverErrorWithDetails(c, "Failed to delete supplement", err)
		}

		return success(c, fiber.Map{"message": "Supplement deleted"})
	}
}

// LogDose records one supplement dose
func LogDose(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateDoseRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		userID := middleware.GetUserID(c)

		dose, err := a.Supplement.LogDose(c.Context(), userID, req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save dose", err)
		}

		return created(c, fiber.Map{"dose": dose})
	}
}

// GetDoses lists a day's doses with adherence counts
func GetDoses(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("date")
		if date == "" {
			return badRequest(c, "date is required")
		}

		userID := middleware.GetUserID(c)
		taken, total := a.Supplement.TakenCountByDate(c.Context(), userID, date)

		return success(c, fiber.Map{
			"doses": a.Supplement.DosesByDate(c.Context(), userID, date),
			"taken": taken,
			"total": total,
		})
	}
}

// UpdateDose edits one dose, typically flipping its taken flag
func UpdateDose(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateDoseRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Supplement.UpdateDose(c.Context(), c.Params("id"), req.Patch()); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Dose not found")
			}
			return serverErrorWithDetails(c, "Failed to update dose", err)
		}

		return success(c, fiber.Map{"message": "Dose updated"})
	}
}

// DeleteDose removes one dose
func DeleteDose(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Supplement.RemoveDose(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, repository.ErrNotFoundLocally) {
				return notFound(c, "Dose not found")
			}
			return serverErrorWithDetails(c, "Failed to delete dose", err)
		}

		return success(c, fiber.Map{"message": "Dose deleted"})
	}
}

// LookupBarcode resolves a scanned product code
func LookupBarcode(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params("code")

		barcode, err := a.Supplement.LookupBarcode(c.Context(), code)
		if err != nil {
			if errors.Is(err, services.ErrBarcodeUnknown) {
				return notFound(c, "Barcode not recognized")
			}
			return serverErrorWithDetails(c, "Failed to look up barcode", err)
		}

		return success(c, fiber.Map{"barcode": barcode})
	}
}

// SaveBarcode stores a product code mapping
func SaveBarcode(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateBarcodeRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return badRequest(c, err.Error())
		}

		userID := middleware.GetUserID(c)

		barcode, err := a.Supplement.SaveBarcode(c.Context(), userID, req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save barcode", err)
		}

		return created(c, fiber.Map{"barcode": barcode})
	}
}
