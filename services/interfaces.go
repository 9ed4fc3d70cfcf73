package services

import (
	"context"

	"vitalog/models"
	"vitalog/repository"
)

// Narrow per-entity views of the syncing repository. Services depend on
// these instead of the concrete generic type so tests can substitute mocks.

type WaterRepository interface {
	Create(ctx context.Context, rec models.WaterIntake) (models.WaterIntake, error)
	Read(ctx context.Context, query repository.Query[models.WaterIntake]) []models.WaterIntake
	Update(ctx context.Context, id models.ID, patch models.WaterIntakePatch) error
	Delete(ctx context.Context, id models.ID) error
}

type SupplementRepository interface {
	Create(ctx context.Context, rec models.Supplement) (models.Supplement, error)
	Read(ctx context.Context, query repository.Query[models.Supplement]) []models.Supplement
	Update(ctx context.Context, id models.ID, patch models.SupplementPatch) error
	Delete(ctx context.Context, id models.ID) error
}

type DoseRepository interface {
	Create(ctx context.Context, rec models.SupplementDose) (models.SupplementDose, error)
	Read(ctx context.Context, query repository.Query[models.SupplementDose]) []models.SupplementDose
	Update(ctx context.Context, id models.ID, patch models.SupplementDosePatch) error
	Delete(ctx context.Context, id models.ID) error
}

type BarcodeRepository interface {
	Create(ctx context.Context, rec models.SupplementBarcode) (models.SupplementBarcode, error)
	Read(ctx context.Context, query repository.Query[models.SupplementBarcode]) []models.SupplementBarcode
}

type SleepRepository interface {
	Create(ctx context.Context, rec models.SleepEntry) (models.SleepEntry, error)
	Read(ctx context.Context, query repository.Query[models.SleepEntry]) []models.SleepEntry
	Update(ctx context.Context, id models.ID, patch models.SleepEntryPatch) error
	Delete(ctx context.Context, id models.ID) error
}

type NutritionRepository interface {
	Create(ctx context.Context, rec models.NutritionEntry) (models.NutritionEntry, error)
	Read(ctx context.Context, query repository.Query[models.NutritionEntry]) []models.NutritionEntry
	Update(ctx context.Context, id models.ID, patch models.NutritionEntryPatch) error
	Delete(ctx context.Context, id models.ID) error
}

type UserRepository interface {
	Create(ctx context.Context, rec models.User) (models.User, error)
	Read(ctx context.Context, query repository.Query[models.User]) []models.User
	Update(ctx context.Context, id models.ID, patch models.UserPatch) error
}

type StudyRepository interface {
	Create(ctx context.Context, rec models.MedicalStudy) (models.MedicalStudy, error)
	Read(ctx context.Context, query repository.Query[models.MedicalStudy]) []models.MedicalStudy
	Update(ctx context.Context, id models.ID, patch models.MedicalStudyPatch) error
	Delete(ctx context.Context, id models.ID) error
}
