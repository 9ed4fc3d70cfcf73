package models

// WaterIntake is a single logged drink of water.
type WaterIntake struct {
	ID     ID     `json:"id"`
	UserID string `json:"user_id"`
	Amount int    `json:"amount"` // milliliters
	Date   string `json:"date"`   // YYYY-MM-DD
	Time   int64  `json:"time"`   // unix seconds, orders entries within a date
}

func (w WaterIntake) GetID() ID { return w.ID }

func (w WaterIntake) WithID(id ID) WaterIntake {
	w.ID = id
	return w
}

func (w WaterIntake) Owner() string { return w.UserID }

// WaterIntakePatch carries the fields an update may change. Nil fields are
// left untouched.
type WaterIntakePatch struct {
	Amount *int    `json:"amount,omitempty"`
	Date   *string `json:"date,omitempty"`
	Time   *int64  `json:"time,omitempty"`
}

func (p WaterIntakePatch) Apply(w WaterIntake) WaterIntake {
	if p.Amount != nil {
		w.Amount = *p.Amount
	}
	if p.Date != nil {
		w.Date = *p.Date
	}
	if p.Time != nil {
		w.Time = *p.Time
	}
	return w
}
