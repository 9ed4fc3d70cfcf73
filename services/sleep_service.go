package services

import (
	"context"
	"time"

	"vitalog/models"
	"vitalog/repository"
)

// SleepService handles sleep logging and the duration aggregates shown on
// the dashboard.
type SleepService struct {
	repo SleepRepository
}

func NewSleepService(repo SleepRepository) *SleepService {
	return &SleepService{repo: repo}
}

func (ss *SleepService) Log(ctx context.Context, userID string, req models.CreateSleepEntryRequest) (models.SleepEntry, error) {
	return ss.repo.Create(ctx, models.SleepEntry{
		UserID:   userID,
		Date:     req.Date,
		BedTime:  req.BedTime,
		WakeTime: req.WakeTime,
		Quality:  req.Quality,
	})
}

// ByDate returns the entries for one morning, newest first. Usually one per
// day, but naps are allowed.
func (ss *SleepService) ByDate(ctx context.Context, userID, date string) []models.SleepEntry {
	return ss.repo.Read(ctx, repository.Query[models.SleepEntry]{
		Match: func(s models.SleepEntry) bool { return s.UserID == userID && s.Date == date },
		Less:  func(a, b models.SleepEntry) bool { return a.WakeTime > b.WakeTime },
	})
}

func (ss *SleepService) Update(ctx context.Context, id string, patch models.SleepEntryPatch) error {
	return ss.repo.Update(ctx, models.RemoteID(id), patch)
}

func (ss *SleepService) Remove(ctx context.Context, id string) error {
	return ss.repo.Delete(ctx, models.RemoteID(id))
}

// RecentAverageDuration averages slept seconds over the last n days,
// counting only days that have entries. Returns zero when nothing was
// logged in the window.
func (ss *SleepService) RecentAverageDuration(ctx context.Context, userID string, days int, now time.Time) time.Duration {
	if days < 1 {
		days = 1
	}
	cutoff := recentCutoff(now, days)
	entries := ss.repo.Read(ctx, repository.Query[models.SleepEntry]{
		Match: func(s models.SleepEntry) bool { return s.UserID == userID && s.Date >= cutoff },
	})
	if len(entries) == 0 {
		return 0
	}
	var total int64
	logged := map[string]bool{}
	for _, e := range entries {
		total += e.DurationSeconds()
		logged[e.Date] = true
	}
	return time.Duration(total/int64(len(logged))) * time.Second
}
