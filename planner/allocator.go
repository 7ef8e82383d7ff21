package planner

import "tripnest/models"

// AddEntry appends entryID to the bucket's selection. Rejections leave the
// bucket untouched: ErrCapacityExceeded at MaxEntriesPerDay,
// ErrDuplicateEntry when already present.
func AddEntry(b *models.DayBucket, entryID string) error {
	if len(b.SelectedEntryIDs) >= MaxEntriesPerDay {
		return ErrCapacityExceeded
	}
	if b.Contains(entryID) {
		return ErrDuplicateEntry
	}
	b.SelectedEntryIDs = append(b.SelectedEntryIDs, entryID)
	return nil
}

// RemoveEntry deletes entryID from the bucket, preserving the order of the
// rest. Absent ids are a no-op.
func RemoveEntry(b *models.DayBucket, entryID string) {
	for i, id := range b.SelectedEntryIDs {
		if id == entryID {
			b.SelectedEntryIDs = append(b.SelectedEntryIDs[:i], b.SelectedEntryIDs[i+1:]...)
			return
		}
	}
}

// RemainingCapacity reports free slots in the bucket, never negative.
func RemainingCapacity(b *models.DayBucket) int {
	remaining := MaxEntriesPerDay - len(b.SelectedEntryIDs)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanAddToAnyBucket reports whether at least one bucket has room for
// entryID and does not already contain it.
func CanAddToAnyBucket(entryID string, buckets []models.DayBucket) bool {
	for i := range buckets {
		if RemainingCapacity(&buckets[i]) > 0 && !buckets[i].Contains(entryID) {
			return true
		}
	}
	return false
}

// EveryBucketHasAtLeastOneEntry is the save gate: a draft is complete only
// when every planned day has a selection.
func EveryBucketHasAtLeastOneEntry(buckets []models.DayBucket) bool {
	if len(buckets) == 0 {
		return false
	}
	for i := range buckets {
		if len(buckets[i].SelectedEntryIDs) == 0 {
			return false
		}
	}
	return true
}
