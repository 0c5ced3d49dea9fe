package repository

import (
	"context"
	"sort"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
)

// EventMessageRepository manages the open chat attached to each event. All
// events share one collection, filtered on read.
type EventMessageRepository struct {
	store blobstore.Store
}

// NewEventMessageRepository constructs an EventMessageRepository.
func NewEventMessageRepository(store blobstore.Store) *EventMessageRepository {
	return &EventMessageRepository{store: store}
}

// EventMessageInput is the caller-supplied part of a new chat entry.
type EventMessageInput struct {
	EventID      string
	FromUsername string
	FromRole     models.Role
	Cuerpo       string
}

// Append adds a message to the event's thread.
func (r *EventMessageRepository) Append(ctx context.Context, input EventMessageInput) (models.EventMessage, error) {
	messages := load[models.EventMessage](ctx, r.store, keyEventMessages)
	message := models.EventMessage{
		ID:           newID("msg"),
		EventID:      input.EventID,
		FromUsername: input.FromUsername,
		FromRole:     input.FromRole,
		Cuerpo:       input.Cuerpo,
		EnviadaEn:    nowMillis(),
	}
	messages = append(messages, message)
	if err := save(ctx, r.store, keyEventMessages, messages); err != nil {
		return models.EventMessage{}, err
	}
	return message, nil
}

// ListByEvent returns the event's thread, oldest first.
func (r *EventMessageRepository) ListByEvent(ctx context.Context, eventID string) ([]models.EventMessage, error) {
	var out []models.EventMessage
	for _, message := range load[models.EventMessage](ctx, r.store, keyEventMessages) {
		if message.EventID == eventID {
			out = append(out, message)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EnviadaEn < out[j].EnviadaEn
	})
	return out, nil
}
