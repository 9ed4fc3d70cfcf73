package services

import (
	"context"
	"time"

	"vitalog/models"
	"vitalog/repository"
)

// SupplementService covers the supplement cabinet: the supplements a user
// takes, their individual doses, and the barcode mappings that prefill the
// supplement form after a scan.
type SupplementService struct {
	supplements SupplementRepository
	doses       DoseRepository
	barcodes    BarcodeRepository
}

func NewSupplementService(supplements SupplementRepository, doses DoseRepository, barcodes BarcodeRepository) *SupplementService {
	return &SupplementService{
		supplements: supplements,
		doses:       doses,
		barcodes:    barcodes,
	}
}

// ==================== SUPPLEMENTS ====================

func (ss *SupplementService) Create(ctx context.Context, userID string, req models.CreateSupplementRequest) (models.Supplement, error) {
	return ss.supplements.Create(ctx, models.Supplement{
		UserID:  userID,
		Name:    req.Name,
		Brand:   req.Brand,
		Dosage:  req.Dosage,
		Unit:    req.Unit,
		Barcode: req.Barcode,
		Active:  true,
	})
}

// List returns the user's supplements sorted by name, optionally only the
// ones still taken.
func (ss *SupplementService) List(ctx context.Context, userID string, activeOnly bool) []models.Supplement {
	return ss.supplements.Read(ctx, repository.Query[models.Supplement]{
		Match: func(s models.Supplement) bool {
			if s.UserID != userID {
				return false
			}
			return !activeOnly || s.Active
		},
		Less: func(a, b models.Supplement) bool { return a.Name < b.Name },
	})
}

func (ss *SupplementService) Update(ctx context.Context, id string, patch models.SupplementPatch) error {
	return ss.supplements.Update(ctx, models.RemoteID(id), patch)
}

func (ss *SupplementService) Remove(ctx context.Context, id string) error {
	return ss.supplements.Delete(ctx, models.RemoteID(id))
}

// ==================== DOSES ====================

func (ss *SupplementService) LogDose(ctx context.Context, userID string, req models.CreateDoseRequest) (models.SupplementDose, error) {
	at := req.Time
	if at == 0 {
		at = time.Now().Unix()
	}
	return ss.doses.Create(ctx, models.SupplementDose{
		UserID:       userID,
		SupplementID: req.SupplementID,
		Date:         req.Date,
		Time:         at,
		Amount:       req.Amount,
		Taken:        req.Taken,
	})
}

// DosesByDate returns a day's doses ordered by time ascending.
func (ss *SupplementService) DosesByDate(ctx context.Context, userID, date string) []models.SupplementDose {
	return ss.doses.Read(ctx, repository.Query[models.SupplementDose]{
		Match: func(d models.SupplementDose) bool { return d.UserID == userID && d.Date == date },
		Less:  func(a, b models.SupplementDose) bool { return a.Time < b.Time },
	})
}

func (ss *SupplementService) UpdateDose(ctx context.Context, id string, patch models.SupplementDosePatch) error {
	return ss.doses.Update(ctx, models.RemoteID(id), patch)
}

func (ss *SupplementService) RemoveDose(ctx context.Context, id string) error {
	return ss.doses.Delete(ctx, models.RemoteID(id))
}

// TakenCountByDate reports adherence for one day: taken vs total doses.
func (ss *SupplementService) TakenCountByDate(ctx context.Context, userID, date string) (taken, total int) {
	for _, d := range ss.DosesByDate(ctx, userID, date) {
		total++
		if d.Taken {
			taken++
		}
	}
	return taken, total
}

// ==================== BARCODES ====================

// LookupBarcode resolves a scanned code to supplement details. Read's
// offline fallback applies, so previously seen codes resolve without
// connectivity.
func (ss *SupplementService) LookupBarcode(ctx context.Context, code string) (models.SupplementBarcode, error) {
	matches := ss.barcodes.Read(ctx, repository.Query[models.SupplementBarcode]{
		Match: func(b models.SupplementBarcode) bool { return b.Code == code },
	})
	if len(matches) == 0 {
		return models.SupplementBarcode{}, ErrBarcodeUnknown
	}
	return matches[0], nil
}

// SaveBarcode stores a user-submitted code → supplement mapping.
func (ss *SupplementService) SaveBarcode(ctx context.Context, userID string, req models.CreateBarcodeRequest) (models.SupplementBarcode, error) {
	return ss.barcodes.Create(ctx, models.SupplementBarcode{
		UserID: userID,
		Code:   req.Code,
		Name:   req.Name,
		Brand:  req.Brand,
		Dosage: req.Dosage,
		Unit:   req.Unit,
	})
}
