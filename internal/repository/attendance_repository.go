package repository

import (
	"context"
	"sort"

	"github.com/untels-dev/portal-core/internal/models"
	"github.com/untels-dev/portal-core/pkg/blobstore"
)

// AttendanceRepository manages event RSVPs. At most one record exists per
// (event, user) pair; repeat registrations update the record in place.
type AttendanceRepository struct {
	store blobstore.Store
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(store blobstore.Store) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

// Register upserts the user's RSVP for the event. The username is trimmed
// and lowercased so the same person always lands on the same record.
func (r *AttendanceRepository) Register(ctx context.Context, username, eventID string, status models.AttendanceStatus, comment *string) (models.EventAttendance, error) {
	records := load[models.EventAttendance](ctx, r.store, keyAttendance)
	normalized := normalizeUsername(username)
	now := nowMillis()

	for i := range records {
		if records[i].EventID == eventID && records[i].Username == normalized {
			records[i].Estado = status
			records[i].Comentario = comment
			records[i].RegistradoEn = now
			if err := save(ctx, r.store, keyAttendance, records); err != nil {
				return models.EventAttendance{}, err
			}
			return records[i], nil
		}
	}

	record := models.EventAttendance{
		ID:           newID("att"),
		EventID:      eventID,
		Username:     normalized,
		Estado:       status,
		Comentario:   comment,
		RegistradoEn: now,
	}
	records = append(records, record)
	if err := save(ctx, r.store, keyAttendance, records); err != nil {
		return models.EventAttendance{}, err
	}
	return record, nil
}

// ListByEvent returns the event's RSVPs in registration order.
func (r *AttendanceRepository) ListByEvent(ctx context.Context, eventID string) ([]models.EventAttendance, error) {
	var out []models.EventAttendance
	for _, record := range load[models.EventAttendance](ctx, r.store, keyAttendance) {
		if record.EventID == eventID {
			out = append(out, record)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RegistradoEn < out[j].RegistradoEn
	})
	return out, nil
}
