package planner

import (
	"fmt"
	"testing"

	"tripnest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEntry(t *testing.T) {
	t.Run("fills to capacity then rejects", func(t *testing.T) {
		b := models.DayBucket{Date: date(2024, 6, 1), SelectedEntryIDs: []string{}}

		for _, id := range []string{"a1", "a2", "a3", "a4", "a5"} {
			require.NoError(t, AddEntry(&b, id))
		}
		assert.Equal(t, 0, RemainingCapacity(&b))

		err := AddEntry(&b, "a6")
		assert.ErrorIs(t, err, ErrCapacityExceeded)
		assert.Equal(t, []string{"a1", "a2", "a3", "a4", "a5"}, b.SelectedEntryIDs)
	})

	t.Run("duplicate rejected without mutation", func(t *testing.T) {
		b := models.DayBucket{SelectedEntryIDs: []string{"a1", "a2"}}

		err := AddEntry(&b, "a1")
		assert.ErrorIs(t, err, ErrDuplicateEntry)
		assert.Equal(t, []string{"a1", "a2"}, b.SelectedEntryIDs)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		b := models.DayBucket{}
		require.NoError(t, AddEntry(&b, "r1"))
		require.NoError(t, AddEntry(&b, "a1"))
		require.NoError(t, AddEntry(&b, "h1"))
		assert.Equal(t, []string{"r1", "a1", "h1"}, b.SelectedEntryIDs)
	})
}

func TestRemoveEntry(t *testing.T) {
	b := models.DayBucket{SelectedEntryIDs: []string{"a1", "a2", "a3"}}

	RemoveEntry(&b, "a2")
	assert.Equal(t, []string{"a1", "a3"}, b.SelectedEntryIDs)

	// absent id is a no-op
	RemoveEntry(&b, "zzz")
	assert.Equal(t, []string{"a1", "a3"}, b.SelectedEntryIDs)
}

func TestRemainingCapacity(t *testing.T) {
	b := models.DayBucket{}
	assert.Equal(t, MaxEntriesPerDay, RemainingCapacity(&b))

	b.SelectedEntryIDs = []string{"a1", "a2", "a3"}
	assert.Equal(t, 2, RemainingCapacity(&b))

	// never negative, even for an over-filled bucket decoded from storage
	b.SelectedEntryIDs = []string{"a1", "a2", "a3", "a4", "a5", "a6"}
	assert.Equal(t, 0, RemainingCapacity(&b))
}

func TestCanAddToAnyBucket(t *testing.T) {
	full := make([]string, MaxEntriesPerDay)
	for i := range full {
		full[i] = fmt.Sprintf("x%d", i)
	}

	t.Run("open bucket available", func(t *testing.T) {
		buckets := []models.DayBucket{
			{SelectedEntryIDs: full},
			{SelectedEntryIDs: []string{"a1"}},
		}
		assert.True(t, CanAddToAnyBucket("a9", buckets))
	})

	t.Run("all buckets full", func(t *testing.T) {
		buckets := []models.DayBucket{{SelectedEntryIDs: full}}
		assert.False(t, CanAddToAnyBucket("a9", buckets))
	})

	t.Run("only bucket with room already holds the entry", func(t *testing.T) {
		buckets := []models.DayBucket{
			{SelectedEntryIDs: full},
			{SelectedEntryIDs: []string{"a1"}},
		}
		assert.False(t, CanAddToAnyBucket("a1", buckets))
	})
}

func TestEveryBucketHasAtLeastOneEntry(t *testing.T) {
	assert.False(t, EveryBucketHasAtLeastOneEntry(nil))

	buckets := []models.DayBucket{
		{SelectedEntryIDs: []string{"a1"}},
		{SelectedEntryIDs: []string{}},
	}
	assert.False(t, EveryBucketHasAtLeastOneEntry(buckets))

	buckets[1].SelectedEntryIDs = []string{"h1"}
	assert.True(t, EveryBucketHasAtLeastOneEntry(buckets))
}
