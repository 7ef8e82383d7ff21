package itinerary

import (
	"encoding/json"
	"log"
	"sync"

	"tripnest/globals"
	"tripnest/models"
	"tripnest/storage"
)

// Store owns the persisted itinerary collection. Records are append-only
// and immutable once saved; the collection is rewritten wholesale on every
// save, last-writer-wins.
type Store struct {
	mu   sync.Mutex
	blob storage.Blob
}

// persistedList is the optional versioned envelope accepted on read; the
// bare record array stays the write shape for legacy readers.
type persistedList struct {
	Schema      int                      `json:"schema"`
	Itineraries []models.StoredItinerary `json:"itineraries"`
}

func NewStore(blob storage.Blob) *Store {
	return &Store{blob: blob}
}

func (s *Store) decode(raw []byte) []models.StoredItinerary {
	if len(raw) == 0 {
		return []models.StoredItinerary{}
	}

	var records []models.StoredItinerary
	if err := json.Unmarshal(raw, &records); err == nil {
		if records == nil {
			records = []models.StoredItinerary{}
		}
		return records
	}
	var env persistedList
	if err := json.Unmarshal(raw, &env); err == nil && env.Itineraries != nil {
		return env.Itineraries
	}
	log.Printf("Discarding malformed itineraries blob")
	return []models.StoredItinerary{}
}

// List returns all persisted itineraries in storage order. Any read or
// parse failure yields an empty list, never an error.
func (s *Store) List() []models.StoredItinerary {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.blob.Get(globals.ItinerariesKey)
	if err != nil {
		log.Printf("Reading itineraries failed: %v", err)
		return []models.StoredItinerary{}
	}
	return s.decode(raw)
}

// Get finds one stored itinerary by id.
func (s *Store) Get(id string) (models.StoredItinerary, bool) {
	for _, it := range s.List() {
		if it.ID == id {
			return it, true
		}
	}
	return models.StoredItinerary{}, false
}

// Save serializes the draft, appends it to the collection and writes the
// collection back. A storage failure is logged and swallowed; the saved
// record is still returned so the session keeps working in memory.
func (s *Store) Save(draft models.ItineraryDraft) (models.StoredItinerary, error) {
	draft.ThumbnailDataURL = NormalizeThumbnail(draft.ThumbnailDataURL)

	stored, err := ToStored(draft)
	if err != nil {
		return models.StoredItinerary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, readErr := s.blob.Get(globals.ItinerariesKey)
	if readErr != nil {
		log.Printf("Reading itineraries before save failed: %v", readErr)
	}
	records := s.decode(raw)
	records = append(records, stored)

	data, err := json.Marshal(records)
	if err != nil {
		log.Printf("Encoding itineraries failed: %v", err)
		return stored, nil
	}
	if err := s.blob.Set(globals.ItinerariesKey, data); err != nil {
		log.Printf("Persisting itineraries failed: %v", err)
	}
	return stored, nil
}
