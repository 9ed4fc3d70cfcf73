package models

// Request DTOs for the HTTP API. Validation tags are enforced at the handler
// boundary; patches built from update requests only carry the provided fields.

type CreateWaterIntakeRequest struct {
	Amount int    `json:"amount" validate:"required,gt=0,lte=5000"`
	Date   string `json:"date" validate:"required,dateformat"`
	Time   int64  `json:"time" validate:"gte=0"`
}

type UpdateWaterIntakeRequest struct {
	Amount *int    `json:"amount" validate:"omitempty,gt=0,lte=5000"`
	Date   *string `json:"date" validate:"omitempty,dateformat"`
	Time   *int64  `json:"time" validate:"omitempty,gte=0"`
}

func (r UpdateWaterIntakeRequest) Patch() WaterIntakePatch {
	return WaterIntakePatch{Amount: r.Amount, Date: r.Date, Time: r.Time}
}

type CreateSupplementRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	Brand   string  `json:"brand" validate:"max=200"`
	Dosage  float64 `json:"dosage" validate:"gte=0"`
	Unit    string  `json:"unit" validate:"max=20"`
	Barcode string  `json:"barcode" validate:"omitempty,barcode"`
}

type UpdateSupplementRequest struct {
	Name    *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Brand   *string  `json:"brand" validate:"omitempty,max=200"`
	Dosage  *float64 `json:"dosage" validate:"omitempty,gte=0"`
	Unit    *string  `json:"unit" validate:"omitempty,max=20"`
	Barcode *string  `json:"barcode" validate:"omitempty,barcode"`
	Active  *bool    `json:"active"`
}

func (r UpdateSupplementRequest) Patch() SupplementPatch {
	return SupplementPatch{
		Name:    r.Name,
		Brand:   r.Brand,
		Dosage:  r.Dosage,
		Unit:    r.Unit,
		Barcode: r.Barcode,
		Active:  r.Active,
	}
}

type CreateDoseRequest struct {
	SupplementID string  `json:"supplement_id" validate:"required"`
	Date         string  `json:"date" validate:"required,dateformat"`
	Time         int64   `json:"time" validate:"gte=0"`
	Amount       float64 `json:"amount" validate:"gte=0"`
	Taken        bool    `json:"taken"`
}

type UpdateDoseRequest struct {
	Date   *string  `json:"date" validate:"omitempty,dateformat"`
	Time   *int64   `json:"time" validate:"omitempty,gte=0"`
	Amount *float64 `json:"amount" validate:"omitempty,gte=0"`
	Taken  *bool    `json:"taken"`
}

func (r UpdateDoseRequest) Patch() SupplementDosePatch {
	return SupplementDosePatch{Date: r.Date, Time: r.Time, Amount: r.Amount, Taken: r.Taken}
}

type CreateSleepEntryRequest struct {
	Date     string `json:"date" validate:"required,dateformat"`
	BedTime  int64  `json:"bed_time" validate:"required,gt=0"`
	WakeTime int64  `json:"wake_time" validate:"required,gtfield=BedTime"`
	Quality  int    `json:"quality" validate:"omitempty,min=1,max=5"`
}

type UpdateSleepEntryRequest struct {
	Date     *string `json:"date" validate:"omitempty,dateformat"`
	BedTime  *int64  `json:"bed_time" validate:"omitempty,gt=0"`
	WakeTime *int64  `json:"wake_time" validate:"omitempty,gt=0"`
	Quality  *int    `json:"quality" validate:"omitempty,min=1,max=5"`
}

func (r UpdateSleepEntryRequest) Patch() SleepEntryPatch {
	return SleepEntryPatch{Date: r.Date, BedTime: r.BedTime, WakeTime: r.WakeTime, Quality: r.Quality}
}

type CreateNutritionEntryRequest struct {
	Date     string  `json:"date" validate:"required,dateformat"`
	Time     int64   `json:"time" validate:"gte=0"`
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Calories float64 `json:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
}

type UpdateNutritionEntryRequest struct {
	Date     *string  `json:"date" validate:"omitempty,dateformat"`
	Time     *int64   `json:"time" validate:"omitempty,gte=0"`
	Name     *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Calories *float64 `json:"calories" validate:"omitempty,gte=0"`
	Protein  *float64 `json:"protein" validate:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs" validate:"omitempty,gte=0"`
	Fat      *float64 `json:"fat" validate:"omitempty,gte=0"`
}

func (r UpdateNutritionEntryRequest) Patch() NutritionEntryPatch {
	return NutritionEntryPatch{
		Date:     r.Date,
		Time:     r.Time,
		Name:     r.Name,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
	}
}

type SaveProfileRequest struct {
	Email              string  `json:"email" validate:"omitempty,email"`
	Name               string  `json:"name" validate:"max=200"`
	HeightCm           float64 `json:"height_cm" validate:"gte=0,lte=300"`
	WeightKg           float64 `json:"weight_kg" validate:"gte=0,lte=700"`
	DailyWaterTargetMl int     `json:"daily_water_target_ml" validate:"gte=0,lte=20000"`
}

type CreateStudyRequest struct {
	Title          string `json:"title" validate:"required,min=1,max=500"`
	URL            string `json:"url" validate:"omitempty,url"`
	Journal        string `json:"journal" validate:"max=200"`
	SupplementName string `json:"supplement_name" validate:"max=200"`
	PublishedAt    string `json:"published_at" validate:"omitempty,dateformat"`
	Notes          string `json:"notes" validate:"max=5000"`
}

type UpdateStudyRequest struct {
	Title          *string `json:"title" validate:"omitempty,min=1,max=500"`
	URL            *string `json:"url" validate:"omitempty,url"`
	Journal        *string `json:"journal" validate:"omitempty,max=200"`
	SupplementName *string `json:"supplement_name" validate:"omitempty,max=200"`
	PublishedAt    *string `json:"published_at" validate:"omitempty,dateformat"`
	Notes          *string `json:"notes" validate:"omitempty,max=5000"`
}

func (r UpdateStudyRequest) Patch() MedicalStudyPatch {
	return MedicalStudyPatch{
		Title:          r.Title,
		URL:            r.URL,
		Journal:        r.Journal,
		SupplementName: r.SupplementName,
		PublishedAt:    r.PublishedAt,
		Notes:          r.Notes,
	}
}

type CreateBarcodeRequest struct {
	Code   string  `json:"code" validate:"required,barcode"`
	Name   string  `json:"name" validate:"required,min=1,max=200"`
	Brand  string  `json:"brand" validate:"max=200"`
	Dosage float64 `json:"dosage" validate:"gte=0"`
	Unit   string  `json:"unit" validate:"max=20"`
}

type SetConnectivityRequest struct {
	Offline bool `json:"offline"`
}
