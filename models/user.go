package models

// User is the profile of the device's user. UserID doubles as the owner key
// so profile documents query the same way as every other entity.
type User struct {
	ID                 ID      `json:"id"`
	UserID             string  `json:"user_id"`
	Email              string  `json:"email"`
	Name               string  `json:"name"`
	HeightCm           float64 `json:"height_cm,omitempty"`
	WeightKg           float64 `json:"weight_kg,omitempty"`
	DailyWaterTargetMl int     `json:"daily_water_target_ml,omitempty"`
}

func (u User) GetID() ID { return u.ID }

func (u User) WithID(id ID) User {
	u.ID = id
	return u
}

func (u User) Owner() string { return u.UserID }

type UserPatch struct {
	Email              *string  `json:"email,omitempty"`
	Name               *string  `json:"name,omitempty"`
	HeightCm           *float64 `json:"height_cm,omitempty"`
	WeightKg           *float64 `json:"weight_kg,omitempty"`
	DailyWaterTargetMl *int     `json:"daily_water_target_ml,omitempty"`
}

func (p UserPatch) Apply(u User) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.HeightCm != nil {
		u.HeightCm = *p.HeightCm
	}
	if p.WeightKg != nil {
		u.WeightKg = *p.WeightKg
	}
	if p.DailyWaterTargetMl != nil {
		u.DailyWaterTargetMl = *p.DailyWaterTargetMl
	}
	return u
}
