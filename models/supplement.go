package models

// Supplement is a supplement the user tracks, e.g. "Vitamin D3 2000 IU".
type Supplement struct {
	ID      ID      `json:"id"`
	UserID  string  `json:"user_id"`
	Name    string  `json:"name"`
	Brand   string  `json:"brand,omitempty"`
	Dosage  float64 `json:"dosage"`
	Unit    string  `json:"unit"` // mg, mcg, IU, ...
	Barcode string  `json:"barcode,omitempty"`
	Active  bool    `json:"active"`
}

func (s Supplement) GetID() ID { return s.ID }

func (s Supplement) WithID(id ID) Supplement {
	s.ID = id
	return s
}

func (s Supplement) Owner() string { return s.UserID }

type SupplementPatch struct {
	Name    *string  `json:"name,omitempty"`
	Brand   *string  `json:"brand,omitempty"`
	Dosage  *float64 `json:"dosage,omitempty"`
	Unit    *string  `json:"unit,omitempty"`
	Barcode *string  `json:"barcode,omitempty"`
	Active  *bool    `json:"active,omitempty"`
}

func (p SupplementPatch) Apply(s Supplement) Supplement {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Brand != nil {
		s.Brand = *p.Brand
	}
	if p.Dosage != nil {
		s.Dosage = *p.Dosage
	}
	if p.Unit != nil {
		s.Unit = *p.Unit
	}
	if p.Barcode != nil {
		s.Barcode = *p.Barcode
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
	return s
}

// SupplementDose is one scheduled or taken dose of a supplement.
type SupplementDose struct {
	ID           ID      `json:"id"`
	UserID       string  `json:"user_id"`
	SupplementID string  `json:"supplement_id"`
	Date         string  `json:"date"`
	Time         int64   `json:"time"`
	Amount       float64 `json:"amount"`
	Taken        bool    `json:"taken"`
}

func (d SupplementDose) GetID() ID { return d.ID }

func (d SupplementDose) WithID(id ID) SupplementDose {
	d.ID = id
	return d
}

func (d SupplementDose) Owner() string { return d.UserID }

type SupplementDosePatch struct {
	Date   *string  `json:"date,omitempty"`
	Time   *int64   `json:"time,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Taken  *bool    `json:"taken,omitempty"`
}

func (p SupplementDosePatch) Apply(d SupplementDose) SupplementDose {
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Time != nil {
		d.Time = *p.Time
	}
	if p.Amount != nil {
		d.Amount = *p.Amount
	}
	if p.Taken != nil {
		d.Taken = *p.Taken
	}
	return d
}

// SupplementBarcode maps a product barcode to supplement details, so a scan
// can prefill the supplement form.
type SupplementBarcode struct {
	ID     ID      `json:"id"`
	UserID string  `json:"user_id"`
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Brand  string  `json:"brand,omitempty"`
	Dosage float64 `json:"dosage,omitempty"`
	Unit   string  `json:"unit,omitempty"`
}

func (b SupplementBarcode) GetID() ID { return b.ID }

func (b SupplementBarcode) WithID(id ID) SupplementBarcode {
	b.ID = id
	return b
}

func (b SupplementBarcode) Owner() string { return b.UserID }

type SupplementBarcodePatch struct {
	Name   *string  `json:"name,omitempty"`
	Brand  *string  `json:"brand,omitempty"`
	Dosage *float64 `json:"dosage,omitempty"`
	Unit   *string  `json:"unit,omitempty"`
}

func (p SupplementBarcodePatch) Apply(b SupplementBarcode) SupplementBarcode {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Brand != nil {
		b.Brand = *p.Brand
	}
	if p.Dosage != nil {
		b.Dosage = *p.Dosage
	}
	if p.Unit != nil {
		b.Unit = *p.Unit
	}
	return b
}
