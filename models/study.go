package models

// MedicalStudy is a study the user saved, usually linked to a supplement
// they take.
type MedicalStudy struct {
	ID             ID     `json:"id"`
	UserID         string `json:"user_id"`
	Title          string `json:"title"`
	URL            string `json:"url,omitempty"`
	Journal        string `json:"journal,omitempty"`
	SupplementName string `json:"supplement_name,omitempty"`
	PublishedAt    string `json:"published_at,omitempty"` // YYYY-MM-DD
	Notes          string `json:"notes,omitempty"`
}

func (m MedicalStudy) GetID() ID { return m.ID }

func (m MedicalStudy) WithID(id ID) MedicalStudy {
	m.ID = id
	return m
}

func (m MedicalStudy) Owner() string { return m.UserID }

type MedicalStudyPatch struct {
	Title          *string `json:"title,omitempty"`
	URL            *string `json:"url,omitempty"`
	Journal        *string `json:"journal,omitempty"`
	SupplementName *string `json:"supplement_name,omitempty"`
	PublishedAt    *string `json:"published_at,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

func (p MedicalStudyPatch) Apply(m MedicalStudy) MedicalStudy {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.URL != nil {
		m.URL = *p.URL
	}
	if p.Journal != nil {
		m.Journal = *p.Journal
	}
	if p.SupplementName != nil {
		m.SupplementName = *p.SupplementName
	}
	if p.PublishedAt != nil {
		m.PublishedAt = *p.PublishedAt
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
	return m
}
