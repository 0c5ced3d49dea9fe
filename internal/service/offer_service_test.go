package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/internal/repository"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
	"github.com/untels-dev/portal-core/pkg/blobstore"
)

func newOfferService() *OfferService {
	store := blobstore.NewMemory()
	return NewOfferService(repository.NewOfferRepository(store), repository.NewApplicationRepository(store), nil, nil)
}

func TestPublishOfferValidation(t *testing.T) {
	svc := newOfferService()
	ctx := context.Background()

	_, err := svc.PublishOffer(ctx, PublishOfferInput{Titulo: "", Descripcion: "d", Modalidad: models.JobModalityJunior, EmpresaUsername: "emp-admin"})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.PublishOffer(ctx, PublishOfferInput{Titulo: "Dev", Descripcion: "d", Modalidad: "freelance", EmpresaUsername: "emp-admin"})
	require.ErrorIs(t, err, appErrors.ErrValidation)

	offer, err := svc.PublishOffer(ctx, PublishOfferInput{Titulo: "Dev", Descripcion: "d", Modalidad: models.JobModalityJunior, EmpresaUsername: "emp-admin"})
	require.NoError(t, err)
	assert.Equal(t, "emp-admin", offer.EmpresaUsername)
}

func TestApplyDenormalizesOfferFields(t *testing.T) {
	svc := newOfferService()
	ctx := context.Background()

	offer, err := svc.PublishOffer(ctx, PublishOfferInput{Titulo: "Dev Junior", Descripcion: "d", Modalidad: models.JobModalityJunior, EmpresaUsername: "emp-admin"})
	require.NoError(t, err)

	application, err := svc.Apply(ctx, offer.ID, "a20230001")
	require.NoError(t, err)
	assert.Equal(t, "Dev Junior", application.OfferTitulo)
	assert.Equal(t, "emp-admin", application.EmpresaUsername)
	assert.Equal(t, models.ApplicationStatusEnviada, application.Estado)

	again, err := svc.Apply(ctx, offer.ID, "a20230001")
	require.NoError(t, err)
	assert.Equal(t, application.ID, again.ID)
}

func TestApplyUnknownOffer(t *testing.T) {
	svc := newOfferService()

	_, err := svc.Apply(context.Background(), "offer_missing", "a20230001")
	require.ErrorIs(t, err, appErrors.ErrNotFound)

	_, err = svc.Apply(context.Background(), "", "a20230001")
	require.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestUpdateApplicationStatusPipeline(t *testing.T) {
	svc := newOfferService()
	ctx := context.Background()

	offer, err := svc.PublishOffer(ctx, PublishOfferInput{Titulo: "Dev", Descripcion: "d", Modalidad: models.JobModalityFullTime, EmpresaUsername: "emp-admin"})
	require.NoError(t, err)
	application, err := svc.Apply(ctx, offer.ID, "a20230001")
	require.NoError(t, err)

	updated, err := svc.UpdateApplicationStatus(ctx, application.ID, models.ApplicationStatusEntrevista)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusEntrevista, updated.Estado)

	_, err = svc.UpdateApplicationStatus(ctx, application.ID, "pendiente")
	require.ErrorIs(t, err, appErrors.ErrValidation)
}
