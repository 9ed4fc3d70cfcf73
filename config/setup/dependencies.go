package setup

import (
	"context"
	"log/slog"

	"vitalog/app"
	"vitalog/config"
	"vitalog/connectivity"
	"vitalog/models"
	"vitalog/remote"
	"vitalog/repository"
	"vitalog/services"
	"vitalog/store"
	"vitalog/sync"
)

// InitLocalStore opens the SQLite cache database
func InitLocalStore(dbPath string, logger *slog.Logger) (*store.Local, error) {
	local, err := store.Open(dbPath, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("local store initialized", "path", dbPath)
	return local, nil
}

// InitRemoteStore picks the remote backend: Firestore when a project is
// configured, an in-memory store otherwise (development and tests).
func InitRemoteStore(ctx context.Context, logger *slog.Logger) (remote.Store, error) {
	cfg := config.AppConfig

	if cfg.FirestoreProject == "" {
		logger.Warn("no Firestore project configured, using in-memory remote")
		return remote.NewMemory(), nil
	}

	fs, err := remote.NewFirestore(ctx, cfg.FirestoreProject, cfg.FirestoreDatabase, nil)
	if err != nil {
		return nil, err
	}

	logger.Info("remote store initialized", "project", cfg.FirestoreProject, "database", cfg.FirestoreDatabase)
	return fs, nil
}

// InitApp builds the per-collection repositories, the services over them,
// and the background sync worker. The returned App carries everything the
// handlers need.
func InitApp(local *store.Local, remoteStore remote.Store, logger *slog.Logger) *app.App {
	cfg := config.AppConfig

	policy := connectivity.NewPolicy(cfg.StartOffline)
	timeout := cfg.RemoteTimeout

	waterRepo := repository.New[models.WaterIntake, models.WaterIntakePatch](
		models.CollectionWaterIntakes, local, remoteStore, policy, logger, timeout)
	supplementRepo := repository.New[models.Supplement, models.SupplementPatch](
		models.CollectionSupplements, local, remoteStore, policy, logger, timeout)
	doseRepo := repository.New[models.SupplementDose, models.SupplementDosePatch](
		models.CollectionSupplementDoses, local, remoteStore, policy, logger, timeout)
	barcodeRepo := repository.New[models.SupplementBarcode, models.SupplementBarcodePatch](
		models.CollectionSupplementBarcodes, local, remoteStore, policy, logger, timeout)
	sleepRepo := repository.New[models.SleepEntry, models.SleepEntryPatch](
		models.CollectionSleepEntries, local, remoteStore, policy, logger, timeout)
	nutritionRepo := repository.New[models.NutritionEntry, models.NutritionEntryPatch](
		models.CollectionNutritionEntries, local, remoteStore, policy, logger, timeout)
	userRepo := repository.New[models.User, models.UserPatch](
		models.CollectionUsers, local, remoteStore, policy, logger, timeout)
	studyRepo := repository.New[models.MedicalStudy, models.MedicalStudyPatch](
		models.CollectionMedicalStudies, local, remoteStore, policy, logger, timeout)

	syncWorker := sync.NewWorker([]sync.Syncer{
		waterRepo,
		supplementRepo,
		doseRepo,
		barcodeRepo,
		sleepRepo,
		nutritionRepo,
		userRepo,
		studyRepo,
	}, policy, logger, cfg.SyncInterval, cfg.SyncMaxInterval)
	syncWorker.Start()
	logger.Info("sync worker started")

	application := app.New(
		services.NewWaterService(waterRepo),
		services.NewSupplementService(supplementRepo, doseRepo, barcodeRepo),
		services.NewSleepService(sleepRepo),
		services.NewNutritionService(nutritionRepo),
		services.NewUserService(userRepo),
		services.NewStudyService(studyRepo),
		syncWorker,
		policy,
		logger,
	)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(syncWorker *sync.Worker, local *store.Local, logger *slog.Logger) {
	logger.Info("shutting down services...")

	// Stop sync worker
	if syncWorker != nil {
		syncWorker.Stop()
		logger.Info("sync worker stopped")
	}

	// Close local store
	if local != nil {
		local.Close()
		logger.Info("local store closed")
	}
}
