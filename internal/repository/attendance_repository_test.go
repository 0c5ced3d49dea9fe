package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
)

func TestRegisterAttendanceUpsertsInPlace(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()
	repo := NewAttendanceRepository(store)

	first, err := repo.Register(ctx, "egresado1", "event_1", models.AttendanceStatusSi, nil)
	require.NoError(t, err)

	comment := "llego tarde"
	second, err := repo.Register(ctx, "egresado1", "event_1", models.AttendanceStatusTalvez, &comment)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.AttendanceStatusTalvez, second.Estado)
	require.NotNil(t, second.Comentario)
	assert.Equal(t, comment, *second.Comentario)

	records, err := repo.ListByEvent(ctx, "event_1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendanceStatusTalvez, records[0].Estado)
}

func TestRegisterAttendanceNormalizesUsername(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()
	repo := NewAttendanceRepository(store)

	_, err := repo.Register(ctx, " Egresado1 ", "event_1", models.AttendanceStatusSi, nil)
	require.NoError(t, err)
	_, err = repo.Register(ctx, "egresado1", "event_1", models.AttendanceStatusNo, nil)
	require.NoError(t, err)

	records, err := repo.ListByEvent(ctx, "event_1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "egresado1", records[0].Username)
	assert.Equal(t, models.AttendanceStatusNo, records[0].Estado)
}

func TestAttendanceIsScopedPerEvent(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()
	repo := NewAttendanceRepository(store)

	_, err := repo.Register(ctx, "egresado1", "event_1", models.AttendanceStatusSi, nil)
	require.NoError(t, err)
	_, err = repo.Register(ctx, "egresado1", "event_2", models.AttendanceStatusNo, nil)
	require.NoError(t, err)

	records, err := repo.ListByEvent(ctx, "event_1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendanceStatusSi, records[0].Estado)
}
