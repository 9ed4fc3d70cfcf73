package services

import (
	"context"
	"time"

	"vitalog/models"
	"vitalog/repository"
)

// WaterService handles water-intake logging and the hydration aggregates the
// dashboard shows.
type WaterService struct {
	repo WaterRepository
}

func NewWaterService(repo WaterRepository) *WaterService {
	return &WaterService{repo: repo}
}

// Log records one drink. A missing time defaults to now.
func (ws *WaterService) Log(ctx context.Context, userID string, req models.CreateWaterIntakeRequest) (models.WaterIntake, error) {
	at := req.Time
	if at == 0 {
		at = time.Now().Unix()
	}
	return ws.repo.Create(ctx, models.WaterIntake{
		UserID: userID,
		Amount: req.Amount,
		Date:   req.Date,
		Time:   at,
	})
}

// ByDate returns a day's intakes ordered by time ascending.
func (ws *WaterService) ByDate(ctx context.Context, userID, date string) []models.WaterIntake {
	return ws.repo.Read(ctx, repository.Query[models.WaterIntake]{
		Match: func(w models.WaterIntake) bool { return w.UserID == userID && w.Date == date },
		Less:  func(a, b models.WaterIntake) bool { return a.Time < b.Time },
	})
}

func (ws *WaterService) Update(ctx context.Context, id string, patch models.WaterIntakePatch) error {
	return ws.repo.Update(ctx, models.RemoteID(id), patch)
}

func (ws *WaterService) Remove(ctx context.Context, id string) error {
	return ws.repo.Delete(ctx, models.RemoteID(id))
}

// TotalForDate sums a day's intake in milliliters.
func (ws *WaterService) TotalForDate(ctx context.Context, userID, date string) int {
	return totalAmount(ws.ByDate(ctx, userID, date))
}

// RecentDailyAverage averages daily intake over the last n days including
// today. Days without entries count as zero.
func (ws *WaterService) RecentDailyAverage(ctx context.Context, userID string, days int, now time.Time) float64 {
	if days < 1 {
		days = 1
	}
	cutoff := recentCutoff(now, days)
	intakes := ws.repo.Read(ctx, repository.Query[models.WaterIntake]{
		Match: func(w models.WaterIntake) bool { return w.UserID == userID && w.Date >= cutoff },
	})
	return float64(totalAmount(intakes)) / float64(days)
}

// totalAmount is a pure fold over a read result.
func totalAmount(intakes []models.WaterIntake) int {
	total := 0
	for _, w := range intakes {
		total += w.Amount
	}
	return total
}
