package catalog

import (
	"net/http"

	"tripnest/models"
	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
)

// EntrySource supplies the favorite-decorated entry list. The favorites
// store implements it; list views never read the raw snapshot directly.
type EntrySource interface {
	Entries() []models.Entry
}

type Handler struct {
	catalog *Catalog
	src     EntrySource
}

func NewHandler(c *Catalog, src EntrySource) *Handler {
	return &Handler{catalog: c, src: src}
}

func (h *Handler) listByType(w http.ResponseWriter, r *http.Request, t models.EntryType) {
	opts := utils.ParseQueryOptions(r)

	entries := FilterByType(h.src.Entries(), t)
	if opts.Location != "" {
		loc, ok := models.ParseLocation(opts.Location)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "Unknown location")
			return
		}
		entries = FilterByLocation(entries, loc)
	}
	entries = FilterBySearch(entries, opts.Search)

	total := len(entries)
	pageEntries, page, totalPages := Paginate(entries, opts.Page, opts.Limit)
	utils.JSON(w, http.StatusOK, utils.M{
		"entries":      pageEntries,
		"page":         page,
		"totalPages":   totalPages,
		"totalEntries": total,
		"pages":        PageWindow(page, totalPages),
	})
}

func (h *Handler) GetActivities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.listByType(w, r, models.EntryTypeActivity)
}

func (h *Handler) GetHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.listByType(w, r, models.EntryTypeHotel)
}

func (h *Handler) GetRestaurants(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.listByType(w, r, models.EntryTypeRestaurant)
}

// GetEntry serves the detail view for any entry type.
func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	for _, e := range h.src.Entries() {
		if e.ID == id {
			utils.JSON(w, http.StatusOK, e)
			return
		}
	}
	utils.Error(w, http.StatusNotFound, "Entry not found")
}

// GetByLocation is the location-search view: every type at one destination.
func (h *Handler) GetByLocation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	loc, ok := models.ParseLocation(ps.ByName("location"))
	if !ok {
		utils.Error(w, http.StatusNotFound, "Unknown location")
		return
	}

	opts := utils.ParseQueryOptions(r)
	entries := FilterBySearch(FilterByLocation(h.src.Entries(), loc), opts.Search)
	total := len(entries)
	pageEntries, page, totalPages := Paginate(entries, opts.Page, opts.Limit)
	utils.JSON(w, http.StatusOK, utils.M{
		"location":     loc,
		"entries":      pageEntries,
		"page":         page,
		"totalPages":   totalPages,
		"totalEntries": total,
		"pages":        PageWindow(page, totalPages),
	})
}

// GetStatus reports the catalog load state machine.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.JSON(w, http.StatusOK, utils.M{
		"state":   h.catalog.State().String(),
		"entries": len(h.catalog.Entries()),
	})
}
