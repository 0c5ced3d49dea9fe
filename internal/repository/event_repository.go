package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
	appErrors "github.com/untels-dev/portal-core/pkg/errors"
)

// EventRepository manages the append-only event calendar.
type EventRepository struct {
	store blobstore.Store
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(store blobstore.Store) *EventRepository {
	return &EventRepository{store: store}
}

// EventInput is the caller-supplied part of a new event.
type EventInput struct {
	Titulo      string
	FechaISO    string
	Modalidad   models.EventModality
	Link        *string
	Lugar       *string
	Descripcion *string
}

// Create assigns an id and creation timestamp, appends, and persists.
func (r *EventRepository) Create(ctx context.Context, input EventInput) (models.Event, error) {
	events := load[models.Event](ctx, r.store, keyEvents)
	event := models.Event{
		ID:          newID("event"),
		Titulo:      input.Titulo,
		FechaISO:    input.FechaISO,
		Modalidad:   input.Modalidad,
		Link:        input.Link,
		Lugar:       input.Lugar,
		Descripcion: input.Descripcion,
		CreadaEn:    nowMillis(),
	}
	events = append(events, event)
	if err := save(ctx, r.store, keyEvents, events); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// List returns the calendar ordered by event date ascending. The ISO date
// format makes lexicographic order chronological.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	events := load[models.Event](ctx, r.store, keyEvents)
	sort.SliceStable(events, func(i, j int) bool {
		return strings.Compare(events[i].FechaISO, events[j].FechaISO) < 0
	})
	return events, nil
}

// Get returns the event with the given id, or ErrNotFound.
func (r *EventRepository) Get(ctx context.Context, id string) (*models.Event, error) {
	for _, event := range load[models.Event](ctx, r.store, keyEvents) {
		if event.ID == id {
			e := event
			return &e, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
}
