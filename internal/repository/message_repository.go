package repository

import (
	"context"
	"sort"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
)

// MessageRepository manages per-application chat threads. Each thread is its
// own blob keyed by the application id, so threads load independently.
type MessageRepository struct {
	store blobstore.Store
}

// NewMessageRepository constructs a MessageRepository.
func NewMessageRepository(store blobstore.Store) *MessageRepository {
	return &MessageRepository{store: store}
}

// Append adds a message to the application's thread.
func (r *MessageRepository) Append(ctx context.Context, applicationID string, fromUsername string, fromRole models.Role, body string) (models.Message, error) {
	key := messageKeyPrefix + applicationID
	messages := load[models.Message](ctx, r.store, key)
	message := models.Message{
		ID:           newID("msg"),
		FromUsername: fromUsername,
		FromRole:     fromRole,
		Cuerpo:       body,
		EnviadaEn:    nowMillis(),
	}
	messages = append(messages, message)
	if err := save(ctx, r.store, key, messages); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

// List returns the application's thread, oldest first.
func (r *MessageRepository) List(ctx context.Context, applicationID string) ([]models.Message, error) {
	messages := load[models.Message](ctx, r.store, messageKeyPrefix+applicationID)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].EnviadaEn < messages[j].EnviadaEn
	})
	return messages, nil
}
