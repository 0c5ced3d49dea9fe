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

func TestPublishNotice(t *testing.T) {
	store := blobstore.NewMemory()
	svc := NewNoticeService(repository.NewNoticeRepository(store), nil, nil)
	ctx := context.Background()

	_, err := svc.PublishNotice(ctx, PublishNoticeInput{Titulo: "", Cuerpo: "c"})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.PublishNotice(ctx, PublishNoticeInput{Titulo: "t", Cuerpo: ""})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	notice, err := svc.PublishNotice(ctx, PublishNoticeInput{Titulo: "Aviso", Cuerpo: "Contenido"})
	require.NoError(t, err)
	assert.NotEmpty(t, notice.ID)

	notices, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, "Aviso", notices[0].Titulo)
}
