package models

// NutritionEntry is one logged food item or meal.
type NutritionEntry struct {
	ID       ID      `json:"id"`
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	Time     int64   `json:"time"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
}

func (n NutritionEntry) GetID() ID { return n.ID }

func (n NutritionEntry) WithID(id ID) NutritionEntry {
	n.ID = id
	return n
}

func (n NutritionEntry) Owner() string { return n.UserID }

type NutritionEntryPatch struct {
	Date     *string  `json:"date,omitempty"`
	Time     *int64   `json:"time,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
}

func (p NutritionEntryPatch) Apply(n NutritionEntry) NutritionEntry {
	if p.Date != nil {
		n.Date = *p.Date
	}
	if p.Time != nil {
		n.Time = *p.Time
	}
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.Calories != nil {
		n.Calories = *p.Calories
	}
	if p.Protein != nil {
		n.Protein = *p.Protein
	}
	if p.Carbs != nil {
		n.Carbs = *p.Carbs
	}
	if p.Fat != nil {
		n.Fat = *p.Fat
	}
	return n
}
