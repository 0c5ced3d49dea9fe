package repository

import (
	"context"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
)

// CompanyRepository manages company sheets, keyed by username.
type CompanyRepository struct {
	store blobstore.Store
}

// NewCompanyRepository constructs a CompanyRepository.
func NewCompanyRepository(store blobstore.Store) *CompanyRepository {
	return &CompanyRepository{store: store}
}

// Save upserts the company sheet by username.
func (r *CompanyRepository) Save(ctx context.Context, profile models.CompanyProfile) (models.CompanyProfile, error) {
	profiles := load[models.CompanyProfile](ctx, r.store, keyCompanyProfiles)
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
	if err := save(ctx, r.store, keyCompanyProfiles, profiles); err != nil {
		return models.CompanyProfile{}, err
	}
	return profile, nil
}

// Get returns the company sheet for username, or ErrNotFound.
func (r *CompanyRepository) Get(ctx context.Context, username string) (*models.CompanyProfile, error) {
	for _, profile := range load[models.CompanyProfile](ctx, r.store, keyCompanyProfiles) {
		if profile.Username == username {
			p := profile
			return &p, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "company profile not found")
}
