package search

import (
	"context"
	"testing"

	"tripnest/models"

	"github.com/stretchr/testify/assert"
)

func sampleEntries() []models.Entry {
	return []models.Entry{
		{ID: "a1", Type: models.EntryTypeActivity, Title: "Louvre Museum Tour", Description: "Skip the line at the Louvre", Location: models.LocationParis},
		{ID: "h1", Type: models.EntryTypeHotel, Title: "Seine View Hotel", Description: "Rooms overlooking the Seine in Paris", Location: models.LocationParis},
		{ID: "r1", Type: models.EntryTypeRestaurant, Title: "Sushi Counter", Description: "Omakase near the fish market", Location: models.LocationTokyo},
	}
}

func TestRankTitleBeatsDescription(t *testing.T) {
	r := NewKeywordRanker()

	// "louvre" is in a1's title (3) and a1's description; h1 has no match
	ids := r.Rank(context.Background(), "louvre", sampleEntries())
	assert.Equal(t, []string{"a1"}, ids)
}

func TestRankLocationMatches(t *testing.T) {
	r := NewKeywordRanker()

	// h1 matches "paris" in location and description but only the first
	// band counts per token, so both score 2 and catalog order breaks the tie
	ids := r.Rank(context.Background(), "paris", sampleEntries())
	assert.Equal(t, []string{"a1", "h1"}, ids)
}

func TestRankMultiTokenAccumulates(t *testing.T) {
	r := NewKeywordRanker()

	// h1: "hotel" in title (3) + "paris" in location (2); a1: "paris" only (2)
	ids := r.Rank(context.Background(), "paris hotel", sampleEntries())
	assert.Equal(t, []string{"h1", "a1"}, ids)
}

func TestRankIgnoresShortTokensAndBlankQuery(t *testing.T) {
	r := NewKeywordRanker()

	assert.Empty(t, r.Rank(context.Background(), "", sampleEntries()))
	assert.Empty(t, r.Rank(context.Background(), "a b", sampleEntries()))
}

func TestRankNoMatches(t *testing.T) {
	r := NewKeywordRanker()
	assert.Empty(t, r.Rank(context.Background(), "zanzibar", sampleEntries()))
}
