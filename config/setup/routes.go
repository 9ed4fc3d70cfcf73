package setup

import (
	"time"

	"vitalog/app"
	"vitalog/handlers"
	"vitalog/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {

	// Public routes
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	// Protected API routes
	api := fiberApp.Group("/api", middleware.UserRequired(), limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID, ok := c.Locals("userID").(string); ok {
				return "user:" + userID
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for your account",
			})
		},
	}))

	api.Post("/water", handlers.LogWaterIntake(application))
	api.Get("/water", handlers.GetWaterIntakes(application))
	api.Put("/water/:id", handlers.UpdateWaterIntake(application))
	api.Delete("/water/:id", handlers.DeleteWaterIntake(application))

	api.Post("/supplements", handlers.CreateSupplement(application))
	api.Get("/supplements", handlers.GetSupplements(application))
	api.Put("/supplements/:id", handlers.UpdateSupplement(application))
	api.Delete("/supplements/:id", handlers.DeleteSupplement(application))

	api.Post("/doses", handlers.LogDose(application))
	api.Get("/doses", handlers.GetDoses(application))
	api.Put("/doses/:id", handlers.UpdateDose(application))
	api.Delete("/doses/:id", handlers.DeleteDose(application))

	api.Get("/barcodes/:code", handlers.LookupBarcode(application))
	api.Post("/barcodes", handlers.SaveBarcode(application))

	api.Post("/sleep", handlers.LogSleep(application))
	api.Get("/sleep", handlers.GetSleepEntries(application))
	api.Put("/sleep/:id", handlers.UpdateSleepEntry(application))
	api.Delete("/sleep/:id", handlers.DeleteSleepEntry(application))

	api.Post("/nutrition", handlers.LogNutrition(application))
	api.Get("/nutrition", handlers.GetNutritionEntries(application))
	api.Put("/nutrition/:id", handlers.UpdateNutritionEntry(application))
	api.Delete("/nutrition/:id", handlers.DeleteNutritionEntry(application))

	api.Get("/profile", handlers.GetProfile(application))
	api.Put("/profile", handlers.SaveProfile(application))

	api.Post("/studies", handlers.SaveStudy(application))
	api.Get("/studies", handlers.GetStudies(application))
	api.Put("/studies/:id", handlers.UpdateStudy(application))
	api.Delete("/studies/:id", handlers.DeleteStudy(application))

	api.Get("/sync/status", handlers.GetSyncStatus(application))
	api.Post("/sync", handlers.SyncNow(application))
	api.Get("/connectivity", handlers.GetConnectivity(application))
	api.Put("/connectivity", handlers.SetConnectivity(application))
}
