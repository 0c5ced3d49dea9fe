package repository

import (
	"context"
	"sort"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
)

// OfferRepository manages the append-only job-fair postings.
type OfferRepository struct {
	store blobstore.Store
}

// NewOfferRepository constructs an OfferRepository.
func NewOfferRepository(store blobstore.Store) *OfferRepository {
	return &OfferRepository{store: store}
}

// OfferInput is the caller-supplied part of a new posting.
type OfferInput struct {
	Titulo          string
	Descripcion     string
	Modalidad       models.JobModality
	EmpresaUsername string
}

// Create assigns an id and creation timestamp, appends, and persists.
func (r *OfferRepository) Create(ctx context.Context, input OfferInput) (models.Offer, error) {
	offers := load[models.Offer](ctx, r.store, keyOffers)
	offer := models.Offer{
		ID:              newID("offer"),
		Titulo:          input.Titulo,
		Descripcion:     input.Descripcion,
		Modalidad:       input.Modalidad,
		EmpresaUsername: input.EmpresaUsername,
		CreadaEn:        nowMillis(),
	}
	offers = append(offers, offer)
	if err := save(ctx, r.store, keyOffers, offers); err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

// List returns all postings, newest first.
func (r *OfferRepository) List(ctx context.Context) ([]models.Offer, error) {
	offers := load[models.Offer](ctx, r.store, keyOffers)
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].CreadaEn > offers[j].CreadaEn
	})
	return offers, nil
}

// Get returns the posting with the given id, or ErrNotFound.
func (r *OfferRepository) Get(ctx context.Context, id string) (*models.Offer, error) {
	for _, offer := range load[models.Offer](ctx, r.store, keyOffers) {
		if offer.ID == id {
			o := offer
			return &o, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "offer not found")
}
