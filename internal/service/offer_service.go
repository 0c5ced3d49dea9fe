package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/internal/repository"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
)

type offerRepository interface {
	Create(ctx context.Context, input repository.OfferInput) (models.Offer, error)
	Get(ctx context.Context, id string) (*models.Offer, error)
}

type applicationRepository interface {
	Apply(ctx context.Context, offer models.Offer, studentUsername string) (models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (models.Application, error)
}

// OfferService provides the company and student job-fair use cases.
type OfferService struct {
	offers       offerRepository
	applications applicationRepository
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewOfferService constructs an OfferService instance.
func NewOfferService(offers offerRepository, applications applicationRepository, validate *validator.Validate, logger *zap.Logger) *OfferService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &OfferService{offers: offers, applications: applications, validator: validate, logger: logger}
}

// PublishOfferInput carries a new posting.
type PublishOfferInput struct {
	Titulo          string `validate:"required"`
	Descripcion     string `validate:"required"`
	Modalidad       models.JobModality
	EmpresaUsername string `validate:"required"`
}

// PublishOffer creates a posting owned by the company account.
func (s *OfferService) PublishOffer(ctx context.Context, input PublishOfferInput) (models.Offer, error) {
	if err := s.validator.Struct(input); err != nil {
		return models.Offer{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "offer needs a title, a description, and an owner")
	}
	if !input.Modalidad.Valid() {
		return models.Offer{}, appErrors.Clone(appErrors.ErrValidation, "unknown offer modality")
	}
	offer, err := s.offers.Create(ctx, repository.OfferInput{
		Titulo:          input.Titulo,
		Descripcion:     input.Descripcion,
		Modalidad:       input.Modalidad,
		EmpresaUsername: input.EmpresaUsername,
	})
	if err != nil {
		return models.Offer{}, err
	}
	s.logger.Info("offer published", zap.String("offer_id", offer.ID), zap.String("empresa", offer.EmpresaUsername))
	return offer, nil
}

// Apply records a student's application to an offer. Applying twice to the
// same offer returns the original application.
func (s *OfferService) Apply(ctx context.Context, offerID, studentUsername string) (models.Application, error) {
	if offerID == "" || studentUsername == "" {
		return models.Application{}, appErrors.Clone(appErrors.ErrValidation, "offer id and student username are required")
	}
	offer, err := s.offers.Get(ctx, offerID)
	if err != nil {
		return models.Application{}, err
	}
	return s.applications.Apply(ctx, *offer, studentUsername)
}

// UpdateApplicationStatus moves an application through the review pipeline.
func (s *OfferService) UpdateApplicationStatus(ctx context.Context, applicationID string, status models.ApplicationStatus) (models.Application, error) {
	return s.applications.UpdateStatus(ctx, applicationID, status)
}
