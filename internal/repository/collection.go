// Package repository layers table-like collections on top of the blob store.
// Each collection is one independently-addressed JSON array; every mutation
// is a synchronous read-modify-write of the whole array. Nothing is ever
// deleted from a collection.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/untels-dev/portal-core/pkg/blobstore"
)

// Blob keys, one per collection.
const (
	keyGraduateProfiles = "db_graduate_profiles"
	keyCompanyProfiles  = "db_company_profiles"
	keyOffers           = "db_offers"
	keyApplications     = "db_applications"
	keySurveys          = "db_surveys"
	keyResponses        = "db_survey_responses"
	keyEvents           = "db_events"
	keyNotices          = "db_notices"
	keyAttendance       = "db_event_attendance"
	keyEventMessages    = "db_event_messages"

	// Application chat threads live in one blob per application.
	messageKeyPrefix = "db_msgs_"
)

// load decodes the collection stored under key. An absent or corrupt blob
// degrades to an empty collection, never an error.
func load[T any](ctx context.Context, store blobstore.Store, key string) []T {
	raw, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// save encodes and persists the whole collection under key.
func save[T any](ctx context.Context, store blobstore.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("persist collection %s: %w", key, err)
	}
	return nil
}

// newID builds a collision-resistant record id: prefix, millisecond
// timestamp in base 36, short random suffix. Adequate for a single device,
// not globally unique.
func newID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s_%s_%s", prefix, strconv.FormatInt(time.Now().UnixMilli(), 36), suffix)
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func normalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
