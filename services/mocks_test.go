package services

import (
	"context"
	"sort"

	"vitalog/models"
	"vitalog/repository"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// applyQuery filters and sorts canned mock data the way the real repository
// would, so tests exercise the Match/Less funcs the services build.
func applyQuery[T any](all []T, q repository.Query[T]) []T {
	out := make([]T, 0, len(all))
	for _, rec := range all {
		if q.Match == nil || q.Match(rec) {
			out = append(out, rec)
		}
	}
	if q.Less != nil {
		sort.SliceStable(out, func(i, j int) bool { return q.Less(out[i], out[j]) })
	}
	return out
}

// MockWaterRepository is a mock implementation of WaterRepository
type MockWaterRepository struct {
	mock.Mock
}

var _ WaterRepository = (*MockWaterRepository)(nil)

func (m *MockWaterRepository) Create(ctx context.Context, rec models.WaterIntake) (models.WaterIntake, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.WaterIntake), args.Error(1)
}

func (m *MockWaterRepository) Read(ctx context.Context, q repository.Query[models.WaterIntake]) []models.WaterIntake {
	args := m.Called(ctx, q)
	all, _ := args.Get(0).([]models.WaterIntake)
	return applyQuery(all, q)
}

func (m *MockWaterRepository) Update(ctx context.Context, id models.ID, patch models.WaterIntakePatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockWaterRepository) Delete(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSupplementRepository is a mock implementation of SupplementRepository
type MockSupplementRepository struct {
	mock.Mock
}

var _ SupplementRepository = (*MockSupplementRepository)(nil)

func (m *MockSupplementRepository) Create(ctx context.Context, rec models.Supplement) (models.Supplement, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.Supplement), args.Error(1)
}

func (m *MockSupplementRepository) Read(ctx context.Context, q repository.Query[models.Supplement]) []models.Supplement {
	args := m.Called(ctx, q)
	all, _ := args.Get(0).([]models.Supplement)
	return applyQuery(all, q)
}

func (m *MockSupplementRepository) Update(ctx context.Context, id models.ID, patch models.SupplementPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockSupplementRepository) Delete(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDoseRepository is a mock implementation of DoseRepository
type MockDoseRepository struct {
	mock.Mock
}

var _ DoseRepository = (*MockDoseRepository)(nil)

func (m *MockDoseRepository) Create(ctx context.Context, rec models.SupplementDose) (models.SupplementDose, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.SupplementDose), args.Error(1)
}

func (m *MockDoseRepository) Read(ctx context.Context, q repository.Query[models.SupplementDose]) []models.SupplementDose {
	args := m.Called(ctx, q)
	all, _ := args.Get(0).([]models.SupplementDose)
	return applyQuery(all, q)
}

func (m *MockDoseRepository) Update(ctx context.Context, id models.ID, patch models.SupplementDosePatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockDoseRepository) Delete(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBarcodeRepository is a mock implementation of BarcodeRepository
type MockBarcodeRepository struct {
	mock.Mock
}

var _ BarcodeRepository = (*MockBarcodeRepository)(nil)

func (m *MockBarcodeRepository) Create(ctx context.Context, rec models.SupplementBarcode) (models.SupplementBarcode, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.SupplementBarcode), args.Error(1)
}

func (m *MockBarcodeRepository) Read(ctx context.Context, q repository.Query[models.SupplementBarcode]) []models.SupplementBarcode {
	args := m.Called(ctx, q)
	all, _ := args.Get(0).([]models.SupplementBarcode)
	return applyQuery(all, q)
}

// MockSleepRepository is a mock implementation of SleepRepository
type MockSleepRepository struct {
	mock.Mock
}

var _ SleepRepository = (*MockSleepRepository)(nil)

func (m *MockSleepRepository) Create(ctx context.Context, rec models.SleepEntry) (models.SleepEntry, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.SleepEntry), args.Error(1)
}

func (m *MockSleepRepository) Read(ctx context.Context, q repository.Query[models.SleepEntry]) []models.SleepEntry {
	args := m.Called(ctx, q)
	all, _ := args.Get(0).([]models.SleepEntry)
	return applyQuery(all, q)
}

func (m *MockSleepRepository) Update(ctx context.Context, id models.ID, patch models.SleepEntryPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockSleepRepository) Delete(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNutritionRepository is a mock implementation of NutritionRepository
type MockNutritionRepository struct {
	mock.Mock
}

var _ NutritionRepository = (*MockNutritionRepository)(nil)

func (m *MockNutritionRepository) Create(ctx context.Context, rec models.NutritionEntry) (models.NutritionEntry, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.NutritionEntry), args.Error(1)
}

func (m *MockNutritionRepository) Read(ctx context.Context, q repository.Query[models.NutritionEntry]) []models.NutritionEntry {
	args := m.Called(ctx, q)
	all, _ := args.Get(0).([]models.NutritionEntry)
	return applyQuery(all, q)
}

func (m *MockNutritionRepository) Update(ctx context.Context, id models.ID, patch models.NutritionEntryPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockNutritionRepository) Delete(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

var _ UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, rec models.User) (models.User, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) Read(ctx context.Context, q repository.Query[models.User]) []models.User {
	args := m.Called(ctx, q)
	all, _ := args.Get(0).([]models.User)
	return applyQuery(all, q)
}

func (m *MockUserRepository) Update(ctx context.Context, id models.ID, patch models.UserPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

// MockStudyRepository is a mock implementation of StudyRepository
type MockStudyRepository struct {
	mock.Mock
}

var _ StudyRepository = (*MockStudyRepository)(nil)

func (m *MockStudyRepository) Create(ctx context.Context, rec models.MedicalStudy) (models.MedicalStudy, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.MedicalStudy), args.Error(1)
}

func (m *MockStudyRepository) Read(ctx context.Context, q repository.Query[models.MedicalStudy]) []models.MedicalStudy {
	args := m.Called(ctx, q)
	all, _ := args.Get(0).([]models.MedicalStudy)
	return applyQuery(all, q)
}

func (m *MockStudyRepository) Update(ctx context.Context, id models.ID, patch models.MedicalStudyPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockStudyRepository) Delete(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
