package handlers

import (
	"vitalog/app"
	"vitalog/models"

	"github.com/gofiber/fiber/v2"
)

// GetSyncStatus reports per-collection pending counts and connectivity
func GetSyncStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, fiber.Map{
			"online":      a.Policy.Online(),
			"pending":     a.SyncWorker.PendingTotal(),
			"collections": a.SyncWorker.Statuses(),
		})
	}
}

// SyncNow triggers an immediate sync pass
func SyncNow(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		flushed := a.SyncWorker.SyncNow(c.Context())

		return success(c, fiber.Map{
			"flushed": flushed,
			"pending": a.SyncWorker.PendingTotal(),
		})
	}
}

// GetConnectivity reports whether remote calls are currently attempted
func GetConnectivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, fiber.Map{"online": a.Policy.Online()})
	}
}

// SetConnectivity flips the app between online and offline mode
func SetConnectivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SetConnectivityRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		a.Policy.SetOffline(req.Offline)
		a.Logger.Info("connectivity changed", "offline", req.Offline)

		return success(c, fiber.Map{"online": a.Policy.Online()})
	}
}
