package globals

import "context"

var Ctx = context.Background()

// Storage keys. The unprefixed array shapes under these keys predate the
// versioned envelope, so both read paths stay supported.
const (
	FavoritesKey    = "tnt_favorites"
	ItinerariesKey  = "tnt_itineraries"
	EntriesCacheKey = "tnt_entries_cache"
)
