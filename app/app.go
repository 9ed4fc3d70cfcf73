package app

import (
	"log/slog"

	"vitalog/connectivity"
	"vitalog/services"
	"vitalog/sync"
	"vitalog/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Water      *services.WaterService
	Supplement *services.SupplementService
	Sleep      *services.SleepService
	Nutrition  *services.NutritionService
	User       *services.UserService
	Study      *services.StudyService

	SyncWorker *sync.Worker
	Policy     *connectivity.Policy
	Validator  *validator.Validator
	Logger     *slog.Logger
}

// New creates a new App instance with all dependencies
func New(
	water *services.WaterService,
	supplement *services.SupplementService,
	sleep *services.SleepService,
	nutrition *services.NutritionService,
	user *services.UserService,
	study *services.StudyService,
	syncWorker *sync.Worker,
	policy *connectivity.Policy,
	logger *slog.Logger,
) *App {
	return &App{
		Water:      water,
		Supplement: supplement,
		Sleep:      sleep,
		Nutrition:  nutrition,
		User:       user,
		Study:      study,
		SyncWorker: syncWorker,
		Policy:     policy,
		Validator:  validator.New(),
		Logger:     logger,
	}
}
