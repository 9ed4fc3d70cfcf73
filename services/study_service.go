package services

import (
	"context"
	"strings"

	"vitalog/models"
	"vitalog/repository"
)

// StudyService manages the user's library of saved medical studies.
type StudyService struct {
	repo StudyRepository
}

func NewStudyService(repo StudyRepository) *StudyService {
	return &StudyService{repo: repo}
}

func (ss *StudyService) Save(ctx context.Context, userID string, req models.CreateStudyRequest) (models.MedicalStudy, error) {
	return ss.repo.Create(ctx, models.MedicalStudy{
		UserID:         userID,
		Title:          req.Title,
		URL:            req.URL,
		Journal:        req.Journal,
		SupplementName: req.SupplementName,
		PublishedAt:    req.PublishedAt,
		Notes:          req.Notes,
	})
}

// List returns the user's studies, newest publication first. An optional
// supplement name filters case-insensitively.
func (ss *StudyService) List(ctx context.Context, userID, supplementName string) []models.MedicalStudy {
	want := strings.ToLower(supplementName)
	return ss.repo.Read(ctx, repository.Query[models.MedicalStudy]{
		Match: func(m models.MedicalStudy) bool {
			if m.UserID != userID {
				return false
			}
			return want == "" || strings.ToLower(m.SupplementName) == want
		},
		Less: func(a, b models.MedicalStudy) bool { return a.PublishedAt > b.PublishedAt },
	})
}

func (ss *StudyService) Update(ctx context.Context, id string, patch models.MedicalStudyPatch) error {
	return ss.repo.Update(ctx, models.RemoteID(id), patch)
}

func (ss *StudyService) Remove(ctx context.Context, id string) error {
	return ss.repo.Delete(ctx, models.RemoteID(id))
}
