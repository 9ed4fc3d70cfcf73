package models

// Remote collection names. Each entity type syncs against exactly one
// collection, and the LocalStore slot names are derived from these.
const (
	CollectionWaterIntakes       = "waterIntakes"
	CollectionSupplements        = "supplements"
	CollectionSupplementDoses    = "supplementDoses"
	CollectionSleepEntries       = "sleepEntries"
	CollectionNutritionEntries   = "nutritionEntries"
	CollectionUsers              = "users"
	CollectionMedicalStudies     = "medicalStudies"
	CollectionSupplementBarcodes = "supplementBarcodes"
)
