// Package planner computes day buckets for a trip date range and allocates
// entries into them under per-day capacity rules.
package planner

import (
	"errors"
	"time"

	"tripnest/models"
)

const (
	// MaxTripDays is the inclusive maximum span of a trip.
	MaxTripDays = 7
	// MaxEntriesPerDay bounds selections within a single day bucket.
	MaxEntriesPerDay = 5
)

var (
	ErrInvalidRange     = errors.New("invalid date range")
	ErrCapacityExceeded = errors.New("day is at capacity")
	ErrDuplicateEntry   = errors.New("entry already selected for this day")
	ErrUnknownEntry     = errors.New("entry is not in the catalog")
)

// NormalizeUTC truncates t to UTC midnight. All day arithmetic runs on
// normalized timestamps so local timezones and DST never shift day counts.
func NormalizeUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SpanDays returns the inclusive day count of [start, end] after UTC
// normalization. ErrInvalidRange when end precedes start or the span
// exceeds MaxTripDays.
func SpanDays(start, end time.Time) (int, error) {
	s := NormalizeUTC(start)
	e := NormalizeUTC(end)
	if s.After(e) {
		return 0, ErrInvalidRange
	}
	span := int(e.Sub(s).Hours()/24) + 1
	if span > MaxTripDays {
		return 0, ErrInvalidRange
	}
	return span, nil
}

// ComputeDayBuckets generates one empty bucket per calendar day of the
// range, ascending.
func ComputeDayBuckets(start, end time.Time) ([]models.DayBucket, error) {
	span, err := SpanDays(start, end)
	if err != nil {
		return nil, err
	}

	buckets := make([]models.DayBucket, span)
	day := NormalizeUTC(start)
	for i := range buckets {
		buckets[i] = models.DayBucket{Date: day, SelectedEntryIDs: []string{}}
		day = day.AddDate(0, 0, 1)
	}
	return buckets, nil
}

// ClampEnd corrects end after start moved: when end falls outside
// [start, start+MaxTripDays-1] it snaps to the nearest valid boundary.
// This is an auto-correction, not an error.
func ClampEnd(start, end time.Time) time.Time {
	s := NormalizeUTC(start)
	e := NormalizeUTC(end)
	if e.Before(s) {
		return s
	}
	max := s.AddDate(0, 0, MaxTripDays-1)
	if e.After(max) {
		return max
	}
	return e
}

// Regenerate rebuilds buckets for a new range, keeping selections on dates
// that survive and discarding only the days that fell out of range.
func Regenerate(old []models.DayBucket, start, end time.Time) ([]models.DayBucket, error) {
	buckets, err := ComputeDayBuckets(start, end)
	if err != nil {
		return nil, err
	}

	kept := make(map[int64][]string, len(old))
	for _, b := range old {
		kept[NormalizeUTC(b.Date).Unix()] = b.SelectedEntryIDs
	}
	for i := range buckets {
		if ids, ok := kept[buckets[i].Date.Unix()]; ok && len(ids) > 0 {
			buckets[i].SelectedEntryIDs = append([]string{}, ids...)
		}
	}
	return buckets, nil
}
