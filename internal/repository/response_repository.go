package repository

import (
	"context"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
)

// ResponseRepository manages survey responses. At most one response exists
// per (survey, username) pair; repeat submissions return the first record.
type ResponseRepository struct {
	store blobstore.Store
}

// NewResponseRepository constructs a ResponseRepository.
func NewResponseRepository(store blobstore.Store) *ResponseRepository {
	return &ResponseRepository{store: store}
}

// Submit records a graduate's answers. A duplicate (survey, user) pair
// short-circuits and returns the prior response unchanged.
func (r *ResponseRepository) Submit(ctx context.Context, username string, survey models.Survey, answers []string) (models.SurveyResponse, error) {
	responses := load[models.SurveyResponse](ctx, r.store, keyResponses)
	for _, response := range responses {
		if response.Username == username && response.SurveyID == survey.ID {
			return response, nil
		}
	}

	response := models.SurveyResponse{
		ID:         newID("resp"),
		SurveyID:   survey.ID,
		Username:   username,
		Respuestas: answers,
		EnviadaEn:  nowMillis(),
	}
	responses = append(responses, response)
	if err := save(ctx, r.store, keyResponses, responses); err != nil {
		return models.SurveyResponse{}, err
	}
	return response, nil
}

// ListByUser returns all of a graduate's responses.
func (r *ResponseRepository) ListByUser(ctx context.Context, username string) ([]models.SurveyResponse, error) {
	var out []models.SurveyResponse
	for _, response := range load[models.SurveyResponse](ctx, r.store, keyResponses) {
		if response.Username == username {
			out = append(out, response)
		}
	}
	return out, nil
}

// ListBySurvey returns all responses for a survey.
func (r *ResponseRepository) ListBySurvey(ctx context.Context, surveyID string) ([]models.SurveyResponse, error) {
	var out []models.SurveyResponse
	for _, response := range load[models.SurveyResponse](ctx, r.store, keyResponses) {
		if response.SurveyID == surveyID {
			out = append(out, response)
		}
	}
	return out, nil
}

// HasResponded reports whether the user already answered the survey.
func (r *ResponseRepository) HasResponded(ctx context.Context, username, surveyID string) (bool, error) {
	responses, err := r.ListByUser(ctx, username)
	if err != nil {
		return false, err
	}
	for _, response := range responses {
		if response.SurveyID == surveyID {
			return true, nil
		}
	}
	return false, nil
}
