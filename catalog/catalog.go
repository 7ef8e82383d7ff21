// Package catalog holds the immutable entry snapshot every other feature
// reads from. Entries are never mutated in place; favorite state is overlaid
// by the favorites store on read.
package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"tripnest/db"
	"tripnest/models"
	"tripnest/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// State is the explicit load lifecycle, driven by the Load command rather
// than any UI mount hook.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}

type Catalog struct {
	mu      sync.Mutex
	entries []models.Entry
	state   State
}

func New() *Catalog {
	return &Catalog{state: StateIdle}
}

// Load populates the snapshot, preferring the MongoDB entries collection
// when one is connected and falling back to the embedded seed. The snapshot
// is loaded once per process; a failed load leaves the catalog usable with
// seed data but reports StateError.
func (c *Catalog) Load(ctx context.Context) {
	c.mu.Lock()
	c.state = StateLoading
	c.mu.Unlock()

	entries := seedEntries
	state := StateReady

	if db.EntriesCollection != nil {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		fetched, err := utils.FindAndDecode[models.Entry](ctx, db.EntriesCollection, bson.M{})
		if err != nil || len(fetched) == 0 {
			log.Printf("Catalog load from MongoDB failed, using embedded seed: %v", err)
			state = StateError
		} else {
			entries = fetched
		}
	}

	c.mu.Lock()
	c.entries = entries
	c.state = state
	c.mu.Unlock()
}

func (c *Catalog) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Entries returns the snapshot in catalog order. The returned slice is a
// copy; callers may decorate it freely.
func (c *Catalog) Entries() []models.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Get(id string) (models.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.Entry{}, false
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// FilterByType keeps entries of the given type, preserving catalog order.
func FilterByType(entries []models.Entry, t models.EntryType) []models.Entry {
	out := []models.Entry{}
	for _, e := range entries {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// FilterByLocation keeps entries at the given location, preserving order.
func FilterByLocation(entries []models.Entry, loc models.Location) []models.Entry {
	out := []models.Entry{}
	for _, e := range entries {
		if e.Location == loc {
			out = append(out, e)
		}
	}
	return out
}

// FilterBySearch keeps entries whose title or description matches q,
// case-insensitive. A blank q keeps everything.
func FilterBySearch(entries []models.Entry, q string) []models.Entry {
	if utils.IsBlank(q) {
		return entries
	}
	out := []models.Entry{}
	for _, e := range entries {
		if utils.ContainsIgnoreCase(e.Title, q) || utils.ContainsIgnoreCase(e.Description, q) {
			out = append(out, e)
		}
	}
	return out
}

// Paginate slices one page out of entries. Pages are 1-based; out-of-range
// pages clamp to the nearest valid page, and the clamped page is returned so
// responses never report a page they did not serve. totalPages is never
// below 1.
func Paginate(entries []models.Entry, page, limit int) (pageEntries []models.Entry, currentPage, totalPages int) {
	if limit < 1 {
		limit = utils.DefaultPageSize
	}
	totalPages = (len(entries) + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(entries) {
		start = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end], page, totalPages
}

// PageWindow builds the pagination strip: always page 1 and the last page,
// up to two pages either side of current, with -1/-2 marking the leading
// and trailing gaps.
func PageWindow(current, total int) []int {
	pages := []int{1}

	start := current - 2
	if start < 2 {
		start = 2
	}
	end := current + 2
	if end > total-1 {
		end = total - 1
	}

	if start > 2 {
		pages = append(pages, -1)
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	if end < total-1 {
		pages = append(pages, -2)
	}
	if total > 1 {
		pages = append(pages, total)
	}
	return pages
}
