package planner

import (
	"errors"
	"time"

	"tripnest/models"
)

// ErrNoSuchDay is returned when an operation targets a date outside the
// plan's current range.
var ErrNoSuchDay = errors.New("date is not part of the plan")

// Plan is the mutable state of one draft under construction: the date range,
// its day buckets and the collected metadata. All derived state (buckets,
// completeness) recomputes deterministically from explicit commands.
type Plan struct {
	Name             string
	Start            time.Time
	End              time.Time
	Buckets          []models.DayBucket
	ThumbnailDataURL string
}

func NewPlan(name string, start, end time.Time) (*Plan, error) {
	buckets, err := ComputeDayBuckets(start, end)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Name:    name,
		Start:   NormalizeUTC(start),
		End:     NormalizeUTC(end),
		Buckets: buckets,
	}, nil
}

// SetDates moves the range. The end date is clamped into
// [start, start+MaxTripDays-1] rather than rejected, and selections on
// surviving dates are preserved. Returns the applied range.
func (p *Plan) SetDates(start, end time.Time) (time.Time, time.Time, error) {
	s := NormalizeUTC(start)
	e := ClampEnd(s, end)

	buckets, err := Regenerate(p.Buckets, s, e)
	if err != nil {
		return p.Start, p.End, err
	}
	p.Start, p.End, p.Buckets = s, e, buckets
	return s, e, nil
}

func (p *Plan) bucketFor(date time.Time) *models.DayBucket {
	day := NormalizeUTC(date)
	for i := range p.Buckets {
		if p.Buckets[i].Date.Equal(day) {
			return &p.Buckets[i]
		}
	}
	return nil
}

// AddEntry selects entryID for the given day.
func (p *Plan) AddEntry(date time.Time, entryID string) error {
	b := p.bucketFor(date)
	if b == nil {
		return ErrNoSuchDay
	}
	return AddEntry(b, entryID)
}

// RemoveEntry drops entryID from the given day; absent ids are a no-op.
func (p *Plan) RemoveEntry(date time.Time, entryID string) error {
	b := p.bucketFor(date)
	if b == nil {
		return ErrNoSuchDay
	}
	RemoveEntry(b, entryID)
	return nil
}

// Complete reports whether the plan passes the save gate.
func (p *Plan) Complete() bool {
	return EveryBucketHasAtLeastOneEntry(p.Buckets)
}

// ToDraft snapshots the plan as an itinerary draft ready for serialization.
func (p *Plan) ToDraft() models.ItineraryDraft {
	buckets := make([]models.DayBucket, len(p.Buckets))
	for i, b := range p.Buckets {
		buckets[i] = models.DayBucket{
			Date:             b.Date,
			SelectedEntryIDs: append([]string{}, b.SelectedEntryIDs...),
		}
	}
	return models.ItineraryDraft{
		Name:             p.Name,
		StartDate:        p.Start,
		EndDate:          p.End,
		DayBuckets:       buckets,
		ThumbnailDataURL: p.ThumbnailDataURL,
	}
}
