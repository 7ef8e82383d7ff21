package routes

import (
	"tripnest/catalog"
	"tripnest/favorites"
	"tripnest/itinerary"
	"tripnest/ratelim"
	"tripnest/search"

	"github.com/julienschmidt/httprouter"
)

func AddCatalogRoutes(router *httprouter.Router, h *catalog.Handler) {
	router.GET("/api/status", h.GetStatus)
	router.GET("/api/activities", h.GetActivities)
	router.GET("/api/hotels", h.GetHotels)
	router.GET("/api/restaurants", h.GetRestaurants)
	router.GET("/api/entries/:id", h.GetEntry)
	router.GET("/api/locations/:location", h.GetByLocation)
}

func AddFavoritesRoutes(router *httprouter.Router, h *favorites.Handler) {
	router.GET("/api/entries", h.GetEntries)
	router.GET("/api/favorites", h.GetFavorites)
	router.POST("/api/favorites/:id/toggle", h.ToggleFavorite)
	router.PUT("/api/favorites/:id", h.SetFavorite)
}

func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handler) {
	router.GET("/api/itineraries", h.GetItineraries)
	router.POST("/api/itineraries", h.SaveItinerary)
	router.GET("/api/itineraries/:id", h.GetItinerary)
	router.GET("/api/itineraries/:id/pdf", h.PrintItinerary)

	router.POST("/api/drafts", h.CreateDraft)
	router.GET("/api/drafts/:id", h.GetDraft)
	router.PUT("/api/drafts/:id/dates", h.SetDraftDates)
	router.PUT("/api/drafts/:id/thumbnail", h.SetDraftThumbnail)
	router.POST("/api/drafts/:id/entries", h.AddDraftEntry)
	router.DELETE("/api/drafts/:id/days/:date/entries/:entryid", h.RemoveDraftEntry)
	router.POST("/api/drafts/:id/save", h.SaveDraft)
}

func AddSearchRoutes(router *httprouter.Router, h *search.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/search", rateLimiter.Limit(h.Search))
}
