package services

import (
	"context"

	"vitalog/models"
	"vitalog/repository"
)

// DefaultWaterTargetMl is used until the user sets their own goal.
const DefaultWaterTargetMl = 2000

// UserService manages the device user's profile. Profiles are keyed by the
// owner id, so there is at most one per user and saves become upserts.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Profile returns the stored profile, or a default one when the user never
// saved any.
func (us *UserService) Profile(ctx context.Context, userID string) models.User {
	users := us.repo.Read(ctx, repository.Query[models.User]{
		Match: func(u models.User) bool { return u.UserID == userID },
	})
	if len(users) == 0 {
		return models.User{UserID: userID, DailyWaterTargetMl: DefaultWaterTargetMl}
	}
	return users[0]
}

// SaveProfile creates the profile on first save and patches it afterwards.
func (us *UserService) SaveProfile(ctx context.Context, userID string, req models.SaveProfileRequest) (models.User, error) {
	existing := us.repo.Read(ctx, repository.Query[models.User]{
		Match: func(u models.User) bool { return u.UserID == userID },
	})
	if len(existing) == 0 {
		target := req.DailyWaterTargetMl
		if target == 0 {
			target = DefaultWaterTargetMl
		}
		return us.repo.Create(ctx, models.User{
			UserID:             userID,
			Email:              req.Email,
			Name:               req.Name,
			HeightCm:           req.HeightCm,
			WeightKg:           req.WeightKg,
			DailyWaterTargetMl: target,
		})
	}

	current := existing[0]
	patch := models.UserPatch{
		Email:              &req.Email,
		Name:               &req.Name,
		HeightCm:           &req.HeightCm,
		WeightKg:           &req.WeightKg,
		DailyWaterTargetMl: &req.DailyWaterTargetMl,
	}
	if err := us.repo.Update(ctx, current.ID, patch); err != nil {
		return models.User{}, err
	}
	return patch.Apply(current), nil
}
