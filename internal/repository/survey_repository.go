package repository

import (
	"context"
	"sort"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
)

// SurveyRepository manages surveys and their active flag.
type SurveyRepository struct {
	store blobstore.Store
}

// NewSurveyRepository constructs a SurveyRepository.
func NewSurveyRepository(store blobstore.Store) *SurveyRepository {
	return &SurveyRepository{store: store}
}

// SurveyInput is the caller-supplied part of a new survey.
type SurveyInput struct {
	Titulo    string
	Preguntas []string
	Activa    bool
}

// Create assigns an id and creation timestamp, appends, and persists.
func (r *SurveyRepository) Create(ctx context.Context, input SurveyInput) (models.Survey, error) {
	surveys := load[models.Survey](ctx, r.store, keySurveys)
	survey := models.Survey{
		ID:        newID("survey"),
		Titulo:    input.Titulo,
		Preguntas: input.Preguntas,
		Activa:    input.Activa,
		CreadaEn:  nowMillis(),
	}
	surveys = append(surveys, survey)
	if err := save(ctx, r.store, keySurveys, surveys); err != nil {
		return models.Survey{}, err
	}
	return survey, nil
}

// List returns all surveys, newest first.
func (r *SurveyRepository) List(ctx context.Context) ([]models.Survey, error) {
	surveys := load[models.Survey](ctx, r.store, keySurveys)
	sort.SliceStable(surveys, func(i, j int) bool {
		return surveys[i].CreadaEn > surveys[j].CreadaEn
	})
	return surveys, nil
}

// Get returns the survey with the given id, or ErrNotFound.
func (r *SurveyRepository) Get(ctx context.Context, id string) (*models.Survey, error) {
	for _, survey := range load[models.Survey](ctx, r.store, keySurveys) {
		if survey.ID == id {
			s := survey
			return &s, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "survey not found")
}

// SetActive flips the survey's active flag. Unknown ids are a no-op, as in
// the portal UI.
func (r *SurveyRepository) SetActive(ctx context.Context, id string, active bool) error {
	surveys := load[models.Survey](ctx, r.store, keySurveys)
	for i := range surveys {
		if surveys[i].ID == id {
			surveys[i].Activa = active
			return save(ctx, r.store, keySurveys, surveys)
		}
	}
	return nil
}
