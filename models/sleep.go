package models

// SleepEntry is one night of sleep. BedTime may fall on the evening before
// Date; Date is the morning the user woke up.
type SleepEntry struct {
	ID       ID     `json:"id"`
	UserID   string `json:"user_id"`
	Date     string `json:"date"`
	BedTime  int64  `json:"bed_time"`
	WakeTime int64  `json:"wake_time"`
	Quality  int    `json:"quality"` // 1-5 self-reported
}

func (s SleepEntry) GetID() ID { return s.ID }

func (s SleepEntry) WithID(id ID) SleepEntry {
	s.ID = id
	return s
}

func (s SleepEntry) Owner() string { return s.UserID }

// DurationSeconds returns the slept time, zero when the entry is malformed.
func (s SleepEntry) DurationSeconds() int64 {
	if s.WakeTime <= s.BedTime {
		return 0
	}
	return s.WakeTime - s.BedTime
}

type SleepEntryPatch struct {
	Date     *string `json:"date,omitempty"`
	BedTime  *int64  `json:"bed_time,omitempty"`
	WakeTime *int64  `json:"wake_time,omitempty"`
	Quality  *int    `json:"quality,omitempty"`
}

func (p SleepEntryPatch) Apply(s SleepEntry) SleepEntry {
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.BedTime != nil {
		s.BedTime = *p.BedTime
	}
	if p.WakeTime != nil {
		s.WakeTime = *p.WakeTime
	}
	if p.Quality != nil {
		s.Quality = *p.Quality
	}
	return s
}
