package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
)

// GraduateRepository manages graduate profiles, keyed by username.
type GraduateRepository struct {
	store blobstore.Store
}

// NewGraduateRepository constructs a GraduateRepository.
func NewGraduateRepository(store blobstore.Store) *GraduateRepository {
	return &GraduateRepository{store: store}
}

// Upsert replaces the profile with the same username in place, or appends it.
func (r *GraduateRepository) Upsert(ctx context.Context, profile models.GraduateProfile) (models.GraduateProfile, error) {
	profiles := load[models.GraduateProfile](ctx, r.store, keyGraduateProfiles)
	replaced := false
	for i := range profiles {
		if profiles[i].Username == profile.Username {
			profiles[i] = profile
			replaced = true
			break
		}
	}
	if !replaced {
		profiles = append(profiles, profile)
	}
	if err := save(ctx, r.store, keyGraduateProfiles, profiles); err != nil {
		return models.GraduateProfile{}, err
	}
	return profile, nil
}

// Get returns the profile for username, or ErrNotFound.
func (r *GraduateRepository) Get(ctx context.Context, username string) (*models.GraduateProfile, error) {
	for _, profile := range load[models.GraduateProfile](ctx, r.store, keyGraduateProfiles) {
		if profile.Username == username {
			p := profile
			return &p, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "graduate profile not found")
}

// List returns the graduate directory ordered by surname.
func (r *GraduateRepository) List(ctx context.Context) ([]models.GraduateProfile, error) {
	profiles := load[models.GraduateProfile](ctx, r.store, keyGraduateProfiles)
	sort.SliceStable(profiles, func(i, j int) bool {
		return strings.Compare(profiles[i].Surname(), profiles[j].Surname()) < 0
	})
	return profiles, nil
}
