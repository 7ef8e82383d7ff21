package itinerary

import (
	"encoding/json"
	"net/http"
	"sync"

	"tripnest/models"
	"tripnest/planner"
	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
)

// DraftSessions holds in-progress plans keyed by draft id. Sessions live in
// memory only; a saved or abandoned draft simply disappears with them.
type DraftSessions struct {
	mu sync.Mutex
	m  map[string]*planner.Plan
}

func NewDraftSessions() *DraftSessions {
	return &DraftSessions{m: make(map[string]*planner.Plan)}
}

func (d *DraftSessions) get(id string) (*planner.Plan, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.m[id]
	return p, ok
}

func (d *DraftSessions) put(id string, p *planner.Plan) {
	d.mu.Lock()
	d.m[id] = p
	d.mu.Unlock()
}

func (d *DraftSessions) delete(id string) {
	d.mu.Lock()
	delete(d.m, id)
	d.mu.Unlock()
}

type planView struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	StartDateISO     string             `json:"startDateISO"`
	EndDateISO       string             `json:"endDateISO"`
	DayBuckets       []models.DayBucket `json:"dayBuckets"`
	Complete         bool               `json:"complete"`
	ThumbnailDataURL string             `json:"thumbnailDataUrl,omitempty"`
}

func viewOf(id string, p *planner.Plan) planView {
	return planView{
		ID:               id,
		Name:             p.Name,
		StartDateISO:     utils.ToISO(p.Start),
		EndDateISO:       utils.ToISO(p.End),
		DayBuckets:       p.Buckets,
		Complete:         p.Complete(),
		ThumbnailDataURL: p.ThumbnailDataURL,
	}
}

// POST /api/drafts starts a builder session from a name and date range.
func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Name         string `json:"name"`
		StartDateISO string `json:"startDateISO"`
		EndDateISO   string `json:"endDateISO"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	start, err := parseISODate(body.StartDateISO)
	if err != nil {
		respondRejection(w, err)
		return
	}
	end, err := parseISODate(body.EndDateISO)
	if err != nil {
		respondRejection(w, err)
		return
	}

	plan, err := planner.NewPlan(body.Name, start, end)
	if err != nil {
		respondRejection(w, err)
		return
	}

	id := NewID()
	h.drafts.put(id, plan)
	utils.JSON(w, http.StatusCreated, viewOf(id, plan))
}

// GET /api/drafts/:id
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	plan, ok := h.drafts.get(id)
	if !ok {
		utils.Error(w, http.StatusNotFound, "Draft not found")
		return
	}
	utils.JSON(w, http.StatusOK, viewOf(id, plan))
}

// PUT /api/drafts/:id/dates moves the range. End dates outside the valid
// window are clamped, and selections on surviving days are preserved.
func (h *Handler) SetDraftDates(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	plan, ok := h.drafts.get(id)
	if !ok {
		utils.Error(w, http.StatusNotFound, "Draft not found")
		return
	}

	var body struct {
		StartDateISO string `json:"startDateISO"`
		EndDateISO   string `json:"endDateISO"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	start, err := parseISODate(body.StartDateISO)
	if err != nil {
		respondRejection(w, err)
		return
	}
	end, err := parseISODate(body.EndDateISO)
	if err != nil {
		respondRejection(w, err)
		return
	}

	if _, _, err := plan.SetDates(start, end); err != nil {
		respondRejection(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, viewOf(id, plan))
}

// POST /api/drafts/:id/entries adds one entry to one day. Ids no longer in
// the catalog are not addable.
func (h *Handler) AddDraftEntry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	plan, ok := h.drafts.get(id)
	if !ok {
		utils.Error(w, http.StatusNotFound, "Draft not found")
		return
	}

	var body struct {
		DateISO string `json:"dateISO"`
		EntryID string `json:"entryId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !h.catalog.Has(body.EntryID) {
		respondRejection(w, planner.ErrUnknownEntry)
		return
	}

	date, err := parseISODate(body.DateISO)
	if err != nil {
		respondRejection(w, err)
		return
	}
	if err := plan.AddEntry(date, body.EntryID); err != nil {
		respondRejection(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, viewOf(id, plan))
}

// DELETE /api/drafts/:id/days/:date/entries/:entryid
func (h *Handler) RemoveDraftEntry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	plan, ok := h.drafts.get(id)
	if !ok {
		utils.Error(w, http.StatusNotFound, "Draft not found")
		return
	}

	date, err := parseISODate(ps.ByName("date"))
	if err != nil {
		respondRejection(w, err)
		return
	}
	if err := plan.RemoveEntry(date, ps.ByName("entryid")); err != nil {
		respondRejection(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, viewOf(id, plan))
}

// PUT /api/drafts/:id/thumbnail
func (h *Handler) SetDraftThumbnail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	plan, ok := h.drafts.get(id)
	if !ok {
		utils.Error(w, http.StatusNotFound, "Draft not found")
		return
	}

	var body struct {
		ThumbnailDataURL string `json:"thumbnailDataUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	plan.ThumbnailDataURL = body.ThumbnailDataURL
	utils.JSON(w, http.StatusOK, viewOf(id, plan))
}

// POST /api/drafts/:id/save finalizes the session into the stored
// collection and drops the session on success.
func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	plan, ok := h.drafts.get(id)
	if !ok {
		utils.Error(w, http.StatusNotFound, "Draft not found")
		return
	}

	stored, err := h.store.Save(plan.ToDraft())
	if err != nil {
		respondRejection(w, err)
		return
	}
	h.drafts.delete(id)
	utils.JSON(w, http.StatusCreated, stored)
}
