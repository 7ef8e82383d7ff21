// Package itinerary converts finished drafts into stored records and owns
// their persistence.
package itinerary

import (
	"errors"
	"fmt"
	"time"

	"tripnest/models"
	"tripnest/planner"
	"tripnest/utils"

	"github.com/google/uuid"
)

// ErrIncompleteDraft rejects saving a draft missing required fields or with
// under-filled days.
var ErrIncompleteDraft = errors.New("itinerary draft is incomplete")

// NewID returns a collision-resistant identifier, falling back to a
// timestamp+random form if UUID generation ever fails.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return utils.FallbackID()
	}
	return id.String()
}

// ValidateDraft checks the save gate and the allocator invariants. The
// range and per-bucket rules are re-checked here so a draft assembled
// outside a Plan (e.g. posted wholesale over HTTP) cannot bypass them.
func ValidateDraft(draft models.ItineraryDraft) error {
	if utils.IsBlank(draft.Name) {
		return fmt.Errorf("%w: name is required", ErrIncompleteDraft)
	}
	if draft.StartDate.IsZero() || draft.EndDate.IsZero() {
		return fmt.Errorf("%w: both dates are required", ErrIncompleteDraft)
	}
	expected, err := planner.ComputeDayBuckets(draft.StartDate, draft.EndDate)
	if err != nil {
		return err
	}
	if len(draft.DayBuckets) == 0 {
		return fmt.Errorf("%w: no days planned", ErrIncompleteDraft)
	}

	// The bucket list must cover the range exactly: one bucket per calendar
	// day, ascending, no omissions or duplicate dates.
	if len(draft.DayBuckets) != len(expected) {
		return fmt.Errorf("%w: day buckets must cover every day of the range", ErrIncompleteDraft)
	}
	for i := range expected {
		if !planner.NormalizeUTC(draft.DayBuckets[i].Date).Equal(expected[i].Date) {
			return fmt.Errorf("%w: day buckets must cover every day of the range", ErrIncompleteDraft)
		}
	}

	for i := range draft.DayBuckets {
		b := &draft.DayBuckets[i]
		if len(b.SelectedEntryIDs) > planner.MaxEntriesPerDay {
			return planner.ErrCapacityExceeded
		}
		seen := make(map[string]struct{}, len(b.SelectedEntryIDs))
		for _, id := range b.SelectedEntryIDs {
			if _, dup := seen[id]; dup {
				return planner.ErrDuplicateEntry
			}
			seen[id] = struct{}{}
		}
	}

	if !planner.EveryBucketHasAtLeastOneEntry(draft.DayBuckets) {
		return fmt.Errorf("%w: every day needs at least one entry", ErrIncompleteDraft)
	}
	return nil
}

// ToStored normalizes a valid draft into its persisted record: fresh id,
// RFC3339 UTC dates, bucket order preserved, day count recomputed from the
// range regardless of how many buckets hold entries.
func ToStored(draft models.ItineraryDraft) (models.StoredItinerary, error) {
	if err := ValidateDraft(draft); err != nil {
		return models.StoredItinerary{}, err
	}

	dayCount, err := planner.SpanDays(draft.StartDate, draft.EndDate)
	if err != nil {
		return models.StoredItinerary{}, err
	}

	daily := make([]models.StoredDailyEntry, len(draft.DayBuckets))
	for i, b := range draft.DayBuckets {
		daily[i] = models.StoredDailyEntry{
			DateISO:          utils.ToISO(planner.NormalizeUTC(b.Date)),
			SelectedEntryIDs: append([]string{}, b.SelectedEntryIDs...),
		}
	}

	return models.StoredItinerary{
		ID:               NewID(),
		Name:             draft.Name,
		StartDateISO:     utils.ToISO(planner.NormalizeUTC(draft.StartDate)),
		EndDateISO:       utils.ToISO(planner.NormalizeUTC(draft.EndDate)),
		DayCount:         dayCount,
		ThumbnailDataURL: draft.ThumbnailDataURL,
		DailyEntries:     daily,
		CreatedAtISO:     utils.ToISO(time.Now()),
	}, nil
}

// BucketsFromStored reconstructs day buckets from a persisted record,
// preserving date order and id membership. Stale ids are kept; resolution
// to placeholders happens at render time.
func BucketsFromStored(stored models.StoredItinerary) ([]models.DayBucket, error) {
	buckets := make([]models.DayBucket, len(stored.DailyEntries))
	for i, d := range stored.DailyEntries {
		date, err := time.Parse(time.RFC3339, d.DateISO)
		if err != nil {
			return nil, fmt.Errorf("parse stored day date %q: %w", d.DateISO, err)
		}
		buckets[i] = models.DayBucket{
			Date:             planner.NormalizeUTC(date),
			SelectedEntryIDs: append([]string{}, d.SelectedEntryIDs...),
		}
	}
	return buckets, nil
}
