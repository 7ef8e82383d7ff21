package catalog

import "tripnest/models"

// seedEntries is the embedded catalog used when no MongoDB source is
// configured. Order here is the canonical catalog order.
var seedEntries = []models.Entry{
	{ID: "a1", Type: models.EntryTypeActivity, Title: "Louvre Museum Tour", Description: "Skip-the-line guided tour of the world's largest art museum.", Location: models.LocationParis, Rating: 4.8, PriceUSD: 65, ImageURL: "https://images.tripnest.dev/a1.jpg"},
	{ID: "a2", Type: models.EntryTypeActivity, Title: "Seine River Cruise", Description: "One-hour sightseeing cruise past Notre-Dame and the Eiffel Tower.", Location: models.LocationParis, Rating: 4.5, PriceUSD: 22, ImageURL: "https://images.tripnest.dev/a2.jpg"},
	{ID: "a3", Type: models.EntryTypeActivity, Title: "Shibuya Food Walk", Description: "Evening street-food crawl through Shibuya's back alleys.", Location: models.LocationTokyo, Rating: 4.9, PriceUSD: 85, ImageURL: "https://images.tripnest.dev/a3.jpg"},
	{ID: "a4", Type: models.EntryTypeActivity, Title: "TeamLab Planets", Description: "Immersive digital art museum in Toyosu.", Location: models.LocationTokyo, Rating: 4.7, PriceUSD: 30, ImageURL: "https://images.tripnest.dev/a4.jpg"},
	{ID: "a5", Type: models.EntryTypeActivity, Title: "Central Park Bike Rental", Description: "Full-day bike rental with a self-guided route map.", Location: models.LocationNewYork, Rating: 4.4, PriceUSD: 45, ImageURL: "https://images.tripnest.dev/a5.jpg"},
	{ID: "a6", Type: models.EntryTypeActivity, Title: "Broadway Show Night", Description: "Orchestra seats for a top-rated Broadway musical.", Location: models.LocationNewYork, Rating: 4.9, PriceUSD: 150, ImageURL: "https://images.tripnest.dev/a6.jpg"},
	{ID: "a7", Type: models.EntryTypeActivity, Title: "Colosseum Underground", Description: "Access the arena floor and underground chambers with an archaeologist.", Location: models.LocationRome, Rating: 4.8, PriceUSD: 79, ImageURL: "https://images.tripnest.dev/a7.jpg"},
	{ID: "a8", Type: models.EntryTypeActivity, Title: "Ubud Rice Terrace Trek", Description: "Sunrise trek through the Tegalalang terraces with breakfast.", Location: models.LocationBali, Rating: 4.6, PriceUSD: 38, ImageURL: "https://images.tripnest.dev/a8.jpg"},
	{ID: "a9", Type: models.EntryTypeActivity, Title: "Sagrada Familia Tour", Description: "Guided visit including tower access.", Location: models.LocationBarcelona, Rating: 4.7, PriceUSD: 56, ImageURL: "https://images.tripnest.dev/a9.jpg"},
	{ID: "h1", Type: models.EntryTypeHotel, Title: "Hotel Le Marais", Description: "Boutique hotel in a 17th-century townhouse.", Location: models.LocationParis, Rating: 4.6, PriceUSD: 240, ImageURL: "https://images.tripnest.dev/h1.jpg"},
	{ID: "h2", Type: models.EntryTypeHotel, Title: "Shinjuku Granbell", Description: "Modern rooms above the Shinjuku nightlife district.", Location: models.LocationTokyo, Rating: 4.3, PriceUSD: 180, ImageURL: "https://images.tripnest.dev/h2.jpg"},
	{ID: "h3", Type: models.EntryTypeHotel, Title: "The Manhattan Grand", Description: "Midtown tower hotel two blocks from Times Square.", Location: models.LocationNewYork, Rating: 4.2, PriceUSD: 310, ImageURL: "https://images.tripnest.dev/h3.jpg"},
	{ID: "h4", Type: models.EntryTypeHotel, Title: "Trastevere Suites", Description: "Quiet rooftop suites across the Tiber.", Location: models.LocationRome, Rating: 4.5, PriceUSD: 195, ImageURL: "https://images.tripnest.dev/h4.jpg"},
	{ID: "h5", Type: models.EntryTypeHotel, Title: "Uluwatu Cliff Villas", Description: "Private pool villas overlooking the Indian Ocean.", Location: models.LocationBali, Rating: 4.9, PriceUSD: 420, ImageURL: "https://images.tripnest.dev/h5.jpg"},
	{ID: "h6", Type: models.EntryTypeHotel, Title: "Casa Gothic Quarter", Description: "Restored modernist building steps from La Rambla.", Location: models.LocationBarcelona, Rating: 4.4, PriceUSD: 210, ImageURL: "https://images.tripnest.dev/h6.jpg"},
	{ID: "r1", Type: models.EntryTypeRestaurant, Title: "Le Petit Bistro", Description: "Classic French bistro fare, seasonal menu.", Location: models.LocationParis, Rating: 4.7, PriceUSD: 60, ImageURL: "https://images.tripnest.dev/r1.jpg"},
	{ID: "r2", Type: models.EntryTypeRestaurant, Title: "Sushi Yasuda", Description: "Omakase counter with fish from Toyosu market.", Location: models.LocationTokyo, Rating: 4.9, PriceUSD: 120, ImageURL: "https://images.tripnest.dev/r2.jpg"},
	{ID: "r3", Type: models.EntryTypeRestaurant, Title: "Brooklyn Smokehouse", Description: "Texas-style barbecue under the Williamsburg Bridge.", Location: models.LocationNewYork, Rating: 4.5, PriceUSD: 40, ImageURL: "https://images.tripnest.dev/r3.jpg"},
	{ID: "r4", Type: models.EntryTypeRestaurant, Title: "Osteria della Piazza", Description: "Roman trattoria known for cacio e pepe.", Location: models.LocationRome, Rating: 4.6, PriceUSD: 35, ImageURL: "https://images.tripnest.dev/r4.jpg"},
	{ID: "r5", Type: models.EntryTypeRestaurant, Title: "Warung Sunset", Description: "Beachfront Balinese grill with nightly seafood barbecue.", Location: models.LocationBali, Rating: 4.4, PriceUSD: 25, ImageURL: "https://images.tripnest.dev/r5.jpg"},
	{ID: "r6", Type: models.EntryTypeRestaurant, Title: "Tapas del Born", Description: "Standing-room tapas bar in El Born.", Location: models.LocationBarcelona, Rating: 4.8, PriceUSD: 30, ImageURL: "https://images.tripnest.dev/r6.jpg"},
}
