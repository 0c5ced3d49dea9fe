package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/untels-dev/portal-core/internal/repository"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
	"github.com/untels-dev/portal-core/pkg/blobstore"
)

func newSurveyService() *SurveyService {
	store := blobstore.NewMemory()
	return NewSurveyService(repository.NewSurveyRepository(store), repository.NewResponseRepository(store), nil, nil)
}

func TestCreateSurveyValidation(t *testing.T) {
	svc := newSurveyService()
	ctx := context.Background()

	_, err := svc.CreateSurvey(ctx, CreateSurveyInput{Titulo: "", Preguntas: []string{"¿Pregunta?"}})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.CreateSurvey(ctx, CreateSurveyInput{Titulo: "Encuesta", Preguntas: nil})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	survey, err := svc.CreateSurvey(ctx, CreateSurveyInput{Titulo: "Encuesta", Preguntas: []string{"¿Pregunta?"}, Activa: true})
	require.NoError(t, err)
	assert.NotEmpty(t, survey.ID)
	assert.True(t, survey.Activa)
}

func TestSubmitResponseRequiresOneAnswerPerQuestion(t *testing.T) {
	svc := newSurveyService()
	ctx := context.Background()

	survey, err := svc.CreateSurvey(ctx, CreateSurveyInput{Titulo: "Encuesta", Preguntas: []string{"A", "B", "C"}, Activa: true})
	require.NoError(t, err)

	_, err = svc.SubmitResponse(ctx, SubmitResponseInput{SurveyID: survey.ID, Username: "egresado1", Respuestas: []string{"1", "2"}})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	response, err := svc.SubmitResponse(ctx, SubmitResponseInput{SurveyID: survey.ID, Username: "egresado1", Respuestas: []string{"1", "2", "3"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, response.Respuestas)
}

func TestSubmitResponseUnknownSurvey(t *testing.T) {
	svc := newSurveyService()

	_, err := svc.SubmitResponse(context.Background(), SubmitResponseInput{SurveyID: "survey_missing", Username: "egresado1"})
	require.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestResultsReturnsSurveyAndResponses(t *testing.T) {
	svc := newSurveyService()
	ctx := context.Background()

	survey, err := svc.CreateSurvey(ctx, CreateSurveyInput{Titulo: "Encuesta", Preguntas: []string{"A"}, Activa: true})
	require.NoError(t, err)

	_, err = svc.SubmitResponse(ctx, SubmitResponseInput{SurveyID: survey.ID, Username: "egresado1", Respuestas: []string{"sí"}})
	require.NoError(t, err)
	_, err = svc.SubmitResponse(ctx, SubmitResponseInput{SurveyID: survey.ID, Username: "egresado2", Respuestas: []string{"no"}})
	require.NoError(t, err)

	got, responses, err := svc.Results(ctx, survey.ID)
	require.NoError(t, err)
	assert.Equal(t, survey.ID, got.ID)
	assert.Len(t, responses, 2)

	responded, err := svc.HasResponded(ctx, "egresado1", survey.ID)
	require.NoError(t, err)
	assert.True(t, responded)
	responded, err = svc.HasResponded(ctx, "egresado3", survey.ID)
	require.NoError(t, err)
	assert.False(t, responded)
}
