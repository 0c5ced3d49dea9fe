package repository

import (
	"context"
	"sort"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
)

// NoticeRepository manages the append-only global announcements.
type NoticeRepository struct {
	store blobstore.Store
}

// NewNoticeRepository constructs a NoticeRepository.
func NewNoticeRepository(store blobstore.Store) *NoticeRepository {
	return &NoticeRepository{store: store}
}

// Create assigns an id and creation timestamp, appends, and persists.
func (r *NoticeRepository) Create(ctx context.Context, title, body string) (models.Notice, error) {
	notices := load[models.Notice](ctx, r.store, keyNotices)
	notice := models.Notice{
		ID:       newID("notice"),
		Titulo:   title,
		Cuerpo:   body,
		CreadaEn: nowMillis(),
	}
	notices = append(notices, notice)
	if err := save(ctx, r.store, keyNotices, notices); err != nil {
		return models.Notice{}, err
	}
	return notice, nil
}

// List returns all announcements, newest first.
func (r *NoticeRepository) List(ctx context.Context) ([]models.Notice, error) {
	notices := load[models.Notice](ctx, r.store, keyNotices)
	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].CreadaEn > notices[j].CreadaEn
	})
	return notices, nil
}
