package repository

import (
	"context"
	"sort"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
)

// ApplicationRepository manages job applications. At most one application
// exists per (offer, student) pair; repeated applies return the first record.
type ApplicationRepository struct {
	store blobstore.Store
}

// NewApplicationRepository constructs an ApplicationRepository.
func NewApplicationRepository(store blobstore.Store) *ApplicationRepository {
	return &ApplicationRepository{store: store}
}

// Apply records a student's application to an offer. The create is
// idempotent: a duplicate (offer, student) pair short-circuits and returns
// the existing record unchanged.
func (r *ApplicationRepository) Apply(ctx context.Context, offer models.Offer, studentUsername string) (models.Application, error) {
	apps := load[models.Application](ctx, r.store, keyApplications)
	for _, app := range apps {
		if app.OfferID == offer.ID && app.EstudianteUsername == studentUsername {
			return app, nil
		}
	}

	app := models.Application{
		ID:                 newID("app"),
		OfferID:            offer.ID,
		OfferTitulo:        offer.Titulo,
		EmpresaUsername:    offer.EmpresaUsername,
		EstudianteUsername: studentUsername,
		Estado:             models.ApplicationStatusEnviada,
		CreadaEn:           nowMillis(),
	}
	apps = append(apps, app)
	if err := save(ctx, r.store, keyApplications, apps); err != nil {
		return models.Application{}, err
	}
	return app, nil
}

// Get returns the application with the given id, or ErrNotFound.
func (r *ApplicationRepository) Get(ctx context.Context, id string) (*models.Application, error) {
	for _, app := range load[models.Application](ctx, r.store, keyApplications) {
		if app.ID == id {
			a := app
			return &a, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "application not found")
}

// ListByStudent returns a student's applications, newest first.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, username string) ([]models.Application, error) {
	return r.list(ctx, func(app models.Application) bool {
		return app.EstudianteUsername == username
	}), nil
}

// ListByCompany returns the applications received by a company, newest first.
func (r *ApplicationRepository) ListByCompany(ctx context.Context, username string) ([]models.Application, error) {
	return r.list(ctx, func(app models.Application) bool {
		return app.EmpresaUsername == username
	}), nil
}

// UpdateStatus moves an application through the review pipeline and returns
// the updated record.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (models.Application, error) {
	if !status.Valid() {
		return models.Application{}, appErrors.Clone(appErrors.ErrValidation, "unknown application status")
	}
	apps := load[models.Application](ctx, r.store, keyApplications)
	for i := range apps {
		if apps[i].ID == id {
			apps[i].Estado = status
			if err := save(ctx, r.store, keyApplications, apps); err != nil {
				return models.Application{}, err
			}
			return apps[i], nil
		}
	}
	return models.Application{}, appErrors.Clone(appErrors.ErrNotFound, "application not found")
}

func (r *ApplicationRepository) list(ctx context.Context, match func(models.Application) bool) []models.Application {
	var out []models.Application
	for _, app := range load[models.Application](ctx, r.store, keyApplications) {
		if match(app) {
			out = append(out, app)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreadaEn > out[j].CreadaEn
	})
	return out
}
