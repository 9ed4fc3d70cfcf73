package services

import (
	"context"
	"time"

	"vitalog/models"
	"vitalog/repository"
)

// MacroTotals aggregates the macronutrients of a set of entries.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (m *MacroTotals) add(e models.NutritionEntry) {
	m.Calories += e.Calories
	m.Protein += e.Protein
	m.Carbs += e.Carbs
	m.Fat += e.Fat
}

// NutritionService handles food logging and macro aggregates.
type NutritionService struct {
	repo NutritionRepository
}

func NewNutritionService(repo NutritionRepository) *NutritionService {
	return &NutritionService{repo: repo}
}

// Log records one food item. A missing time defaults to now.
func (ns *NutritionService) Log(ctx context.Context, userID string, req models.CreateNutritionEntryRequest) (models.NutritionEntry, error) {
	at := req.Time
	if at == 0 {
		at = time.Now().Unix()
	}
	return ns.repo.Create(ctx, models.NutritionEntry{
		UserID:   userID,
		Date:     req.Date,
		Time:     at,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
}

// ByDate returns a day's entries ordered by time ascending.
func (ns *NutritionService) ByDate(ctx context.Context, userID, date string) []models.NutritionEntry {
	return ns.repo.Read(ctx, repository.Query[models.NutritionEntry]{
		Match: func(n models.NutritionEntry) bool { return n.UserID == userID && n.Date == date },
		Less:  func(a, b models.NutritionEntry) bool { return a.Time < b.Time },
	})
}

func (ns *NutritionService) Update(ctx context.Context, id string, patch models.NutritionEntryPatch) error {
	return ns.repo.Update(ctx, models.RemoteID(id), patch)
}

func (ns *NutritionService) Remove(ctx context.Context, id string) error {
	return ns.repo.Delete(ctx, models.RemoteID(id))
}

// TotalsForDate sums a day's macros.
func (ns *NutritionService) TotalsForDate(ctx context.Context, userID, date string) MacroTotals {
	var totals MacroTotals
	for _, e := range ns.ByDate(ctx, userID, date) {
		totals.add(e)
	}
	return totals
}

// RecentDailyCalories averages calories over the last n days including
// today. Days without entries count as zero.
func (ns *NutritionService) RecentDailyCalories(ctx context.Context, userID string, days int, now time.Time) float64 {
	if days < 1 {
		days = 1
	}
	cutoff := recentCutoff(now, days)
	entries := ns.repo.Read(ctx, repository.Query[models.NutritionEntry]{
		Match: func(n models.NutritionEntry) bool { return n.UserID == userID && n.Date >= cutoff },
	})
	var total float64
	for _, e := range entries {
		total += e.Calories
	}
	return total / float64(days)
}
