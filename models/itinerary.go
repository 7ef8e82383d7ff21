package models

import "time"

// DayBucket is one calendar day within a trip and the entries chosen for it.
// SelectedEntryIDs preserves insertion order and never holds duplicates.
type DayBucket struct {
	Date             time.Time `json:"date"`
	SelectedEntryIDs []string  `json:"selectedEntryIds"`
}

// Contains reports whether the bucket already holds the given entry id.
func (b *DayBucket) Contains(entryID string) bool {
	for _, id := range b.SelectedEntryIDs {
		if id == entryID {
			return true
		}
	}
	return false
}

// ItineraryDraft is an in-progress itinerary under construction. It only
// exists in memory; saving converts it to a StoredItinerary.
type ItineraryDraft struct {
	Name             string      `json:"name"`
	StartDate        time.Time   `json:"startDate"`
	EndDate          time.Time   `json:"endDate"`
	DayBuckets       []DayBucket `json:"dayBuckets"`
	ThumbnailDataURL string      `json:"thumbnailDataUrl,omitempty"`
}

// StoredDailyEntry mirrors one day bucket in the persisted shape.
type StoredDailyEntry struct {
	DateISO          string   `json:"dateISO"`
	SelectedEntryIDs []string `json:"selectedEntryIds"`
}

// StoredItinerary is the finalized, persisted form of a draft. Records are
// immutable after save; entries are referenced by id only, never embedded,
// so catalog changes never require itinerary migration.
type StoredItinerary struct {
	ID               string             `json:"id"`
	Name             string             `json:"itineraryName"`
	StartDateISO     string             `json:"startDateISO"`
	EndDateISO       string             `json:"endDateISO"`
	DayCount         int                `json:"days"`
	ThumbnailDataURL string             `json:"thumbnailDataUrl,omitempty"`
	DailyEntries     []StoredDailyEntry `json:"dailyEntries"`
	CreatedAtISO     string             `json:"createdAtISO"`
}
