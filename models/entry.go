package models

// EntryType discriminates the three catalog categories.
type EntryType string

const (
	EntryTypeActivity   EntryType = "activity"
	EntryTypeHotel      EntryType = "hotel"
	EntryTypeRestaurant EntryType = "restaurant"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeActivity, EntryTypeHotel, EntryTypeRestaurant:
		return true
	}
	return false
}

// Location is the fixed set of destinations entries belong to.
type Location string

const (
	LocationParis     Location = "Paris"
	LocationTokyo     Location = "Tokyo"
	LocationNewYork   Location = "New York"
	LocationRome      Location = "Rome"
	LocationBali      Location = "Bali"
	LocationBarcelona Location = "Barcelona"
)

var Locations = []Location{
	LocationParis,
	LocationTokyo,
	LocationNewYork,
	LocationRome,
	LocationBali,
	LocationBarcelona,
}

func ParseLocation(raw string) (Location, bool) {
	for _, loc := range Locations {
		if string(loc) == raw {
			return loc, true
		}
	}
	return "", false
}

// Entry is a single bookable/viewable item. Identity is ID.
// IsFavorite is derived state: the favorites set is authoritative and the
// flag is recomputed from it on every read, never mutated independently.
type Entry struct {
	ID          string    `json:"id" bson:"id"`
	Type        EntryType `json:"type" bson:"type"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Location    Location  `json:"location" bson:"location"`
	Rating      float64   `json:"rating" bson:"rating"`
	PriceUSD    float64   `json:"priceUsd" bson:"price_usd"`
	ImageURL    string    `json:"imageUrl" bson:"image_url"`
	IsFavorite  bool      `json:"isFavorite" bson:"-"`
}
