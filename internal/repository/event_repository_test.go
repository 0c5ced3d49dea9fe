package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/untels-dev/portal-core/internal/models"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
	"github.com/untels-dev/portal-core/pkg/blobstore"
)

func TestEventsListByDateAscending(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()
	repo := NewEventRepository(store)

	for _, fecha := range []string{"2026-11-20", "2026-09-05", "2026-10-01"} {
		_, err := repo.Create(ctx, EventInput{Titulo: "Evento " + fecha, FechaISO: fecha, Modalidad: models.EventModalityVirtual})
		require.NoError(t, err)
	}

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "2026-09-05", events[0].FechaISO)
	assert.Equal(t, "2026-10-01", events[1].FechaISO)
	assert.Equal(t, "2026-11-20", events[2].FechaISO)
}

func TestEventGet(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()
	repo := NewEventRepository(store)

	lugar := "Auditorio UNTELS"
	created, err := repo.Create(ctx, EventInput{Titulo: "Feria", FechaISO: "2026-09-05", Modalidad: models.EventModalityPresencial, Lugar: &lugar})
	require.NoError(t, err)

	fetched, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, *fetched)

	_, err = repo.Get(ctx, "event_missing")
	require.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestNoticesListNewestFirst(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()
	repo := NewNoticeRepository(store)

	first, err := repo.Create(ctx, "Primero", "cuerpo")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "Segundo", "cuerpo")
	require.NoError(t, err)

	notices, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notices, 2)
	if notices[0].CreadaEn != notices[1].CreadaEn {
		assert.Equal(t, second.ID, notices[0].ID)
		assert.Equal(t, first.ID, notices[1].ID)
	}
}
