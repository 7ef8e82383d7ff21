// Package favorites tracks which entry ids are favorited. Membership in the
// set is the sole source of truth; every Entry.IsFavorite flag is recomputed
// from it on read.
package favorites

import (
	"encoding/json"
	"log"
	"sync"

	"tripnest/catalog"
	"tripnest/globals"
	"tripnest/models"
	"tripnest/storage"
)

type Store struct {
	mu      sync.Mutex
	ids     map[string]struct{}
	catalog *catalog.Catalog
	blob    storage.Blob
	subs    []func()
}

// persistedSet is the optional versioned envelope; the bare id array remains
// the write shape so older readers keep working.
type persistedSet struct {
	Schema int      `json:"schema"`
	IDs    []string `json:"ids"`
}

// NewStore loads the persisted favorite set. Malformed or unreadable data is
// discarded and the set starts empty; no error is surfaced.
func NewStore(c *catalog.Catalog, blob storage.Blob) *Store {
	s := &Store{
		ids:     make(map[string]struct{}),
		catalog: c,
		blob:    blob,
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := s.blob.Get(globals.FavoritesKey)
	if err != nil {
		log.Printf("Loading favorites failed, starting empty: %v", err)
		return
	}
	if len(raw) == 0 {
		return
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		var env persistedSet
		if err := json.Unmarshal(raw, &env); err != nil {
			log.Printf("Discarding malformed favorites blob: %v", err)
			return
		}
		ids = env.IDs
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// persist writes the id array wholesale. Failures are logged and swallowed;
// favoriting keeps working in memory for the session.
func (s *Store) persist() {
	ids := make([]string, 0, len(s.ids))
	for _, e := range s.catalog.Entries() {
		if _, ok := s.ids[e.ID]; ok {
			ids = append(ids, e.ID)
		}
	}
	// ids not present in the catalog snapshot are stale but kept.
	for id := range s.ids {
		if !s.catalog.Has(id) {
			ids = append(ids, id)
		}
	}

	data, err := json.Marshal(ids)
	if err != nil {
		log.Printf("Encoding favorites failed: %v", err)
		return
	}
	if err := s.blob.Set(globals.FavoritesKey, data); err != nil {
		log.Printf("Persisting favorites failed: %v", err)
	}
}

func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// applyLocked mutates the set and persists it. Caller holds mu; the returned
// subscriber snapshot is invoked after the lock is released.
func (s *Store) applyLocked(id string, value bool) []func() {
	if value {
		s.ids[id] = struct{}{}
	} else {
		delete(s.ids, id)
	}
	s.persist()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	return subs
}

// SetFavorite adds or removes id idempotently, persists the set and wakes
// subscribers.
func (s *Store) SetFavorite(id string, value bool) {
	s.mu.Lock()
	subs := s.applyLocked(id, value)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// ToggleFavorite flips the state for id and returns the resulting value. The
// read and the flip share one critical section so concurrent toggles of the
// same id always alternate.
func (s *Store) ToggleFavorite(id string) bool {
	s.mu.Lock()
	_, ok := s.ids[id]
	next := !ok
	subs := s.applyLocked(id, next)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return next
}

// Entries returns the full catalog in catalog order with IsFavorite
// recomputed from the current set. Never re-sorted by favorite status.
func (s *Store) Entries() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.catalog.Entries()
	for i := range entries {
		_, fav := s.ids[entries[i].ID]
		entries[i].IsFavorite = fav
	}
	return entries
}

// Count is the number of favorited entries.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns the favorite set as a slice, catalog order first.
func (s *Store) IDs() []string {
	out := []string{}
	for _, e := range s.Entries() {
		if e.IsFavorite {
			out = append(out, e.ID)
		}
	}
	return out
}

// Subscribe registers fn to run synchronously after every mutation. Derived
// views (caches, counters) recompute through this hook.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
