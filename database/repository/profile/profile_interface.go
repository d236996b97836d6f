package profileRepo

import (
	"context"

	"katwate/models"
)

// ProfileRepository stores staff profiles keyed by identity provider uid.
type ProfileRepository interface {
	GetByUID(ctx context.Context, uid string) (*models.StaffProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.StaffProfile, error)
	// Save creates or replaces the profile of profile.UID.
	Save(ctx context.Context, profile *models.StaffProfile) error
}
