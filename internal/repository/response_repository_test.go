package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/untels-dev/portal-core/pkg/blobstore"
)

func TestSubmitResponseIsIdempotent(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()
	survey, err := NewSurveyRepository(store).Create(ctx, SurveyInput{
		Titulo:    "Empleabilidad",
		Preguntas: []string{"¿Trabajas?", "¿Dónde?"},
		Activa:    true,
	})
	require.NoError(t, err)

	repo := NewResponseRepository(store)
	first, err := repo.Submit(ctx, "egresado1", survey, []string{"Sí", "Lima"})
	require.NoError(t, err)
	second, err := repo.Submit(ctx, "egresado1", survey, []string{"No", "—"})
	require.NoError(t, err)

	// The duplicate submission returns the original answers untouched.
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Sí", "Lima"}, second.Respuestas)

	all, err := repo.ListBySurvey(ctx, survey.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestHasResponded(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()
	survey, err := NewSurveyRepository(store).Create(ctx, SurveyInput{
		Titulo:    "Encuesta",
		Preguntas: []string{"P1"},
		Activa:    true,
	})
	require.NoError(t, err)

	repo := NewResponseRepository(store)
	responded, err := repo.HasResponded(ctx, "egresado1", survey.ID)
	require.NoError(t, err)
	assert.False(t, responded)

	_, err = repo.Submit(ctx, "egresado1", survey, []string{"R1"})
	require.NoError(t, err)

	responded, err = repo.HasResponded(ctx, "egresado1", survey.ID)
	require.NoError(t, err)
	assert.True(t, responded)

	responded, err = repo.HasResponded(ctx, "egresado2", survey.ID)
	require.NoError(t, err)
	assert.False(t, responded)
}

func TestSurveysListNewestFirst(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()
	repo := NewSurveyRepository(store)

	first, err := repo.Create(ctx, SurveyInput{Titulo: "Primera", Preguntas: []string{"P"}})
	require.NoError(t, err)
	second, err := repo.Create(ctx, SurveyInput{Titulo: "Segunda", Preguntas: []string{"P"}})
	require.NoError(t, err)

	surveys, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, surveys, 2)
	// Both creates can land on the same millisecond; order is only defined
	// when the timestamps differ.
	if surveys[0].CreadaEn != surveys[1].CreadaEn {
		assert.Equal(t, second.ID, surveys[0].ID)
		assert.Equal(t, first.ID, surveys[1].ID)
	}
}

func TestSetActiveUnknownSurveyIsNoop(t *testing.T) {
	store := blobstore.NewMemory()
	require.NoError(t, NewSurveyRepository(store).SetActive(context.Background(), "survey_missing", true))
}
