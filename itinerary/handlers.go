package itinerary

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tripnest/catalog"
	"tripnest/models"
	"tripnest/planner"
	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	store   *Store
	catalog *catalog.Catalog
	drafts  *DraftSessions
}

func NewHandler(store *Store, c *catalog.Catalog) *Handler {
	return &Handler{store: store, catalog: c, drafts: NewDraftSessions()}
}

// draftPayload is the wire shape of a wholesale draft, mirroring the stored
// record minus generated fields.
type draftPayload struct {
	Name             string `json:"itineraryName"`
	StartDateISO     string `json:"startDateISO"`
	EndDateISO       string `json:"endDateISO"`
	ThumbnailDataURL string `json:"thumbnailDataUrl"`
	DailyEntries     []struct {
		DateISO          string   `json:"dateISO"`
		SelectedEntryIDs []string `json:"selectedEntryIds"`
	} `json:"dailyEntries"`
}

func respondRejection(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, planner.ErrInvalidRange):
		utils.JSON(w, http.StatusBadRequest, utils.M{"error": "invalid_range", "message": err.Error()})
	case errors.Is(err, planner.ErrCapacityExceeded):
		utils.JSON(w, http.StatusConflict, utils.M{"error": "capacity_exceeded", "message": err.Error()})
	case errors.Is(err, planner.ErrDuplicateEntry):
		utils.JSON(w, http.StatusConflict, utils.M{"error": "duplicate_entry", "message": err.Error()})
	case errors.Is(err, ErrIncompleteDraft):
		utils.JSON(w, http.StatusUnprocessableEntity, utils.M{"error": "incomplete_draft", "message": err.Error()})
	case errors.Is(err, planner.ErrNoSuchDay):
		utils.JSON(w, http.StatusBadRequest, utils.M{"error": "no_such_day", "message": err.Error()})
	case errors.Is(err, planner.ErrUnknownEntry):
		utils.JSON(w, http.StatusBadRequest, utils.M{"error": "unknown_entry", "message": err.Error()})
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}

// GET /api/itineraries
func (h *Handler) GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.JSON(w, http.StatusOK, h.store.List())
}

// GET /api/itineraries/:id
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	stored, ok := h.store.Get(ps.ByName("id"))
	if !ok {
		utils.Error(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	utils.JSON(w, http.StatusOK, stored)
}

// POST /api/itineraries accepts a wholesale draft and persists it. The save
// is all-or-nothing: any rejection leaves the stored collection unchanged.
func (h *Handler) SaveItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload draftPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	draft, err := h.draftFromPayload(payload)
	if err != nil {
		respondRejection(w, err)
		return
	}

	stored, err := h.store.Save(draft)
	if err != nil {
		respondRejection(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, stored)
}

func (h *Handler) draftFromPayload(payload draftPayload) (models.ItineraryDraft, error) {
	var draft models.ItineraryDraft
	draft.Name = payload.Name
	draft.ThumbnailDataURL = payload.ThumbnailDataURL

	var err error
	if draft.StartDate, err = parseISODate(payload.StartDateISO); err != nil {
		return draft, err
	}
	if draft.EndDate, err = parseISODate(payload.EndDateISO); err != nil {
		return draft, err
	}

	for _, d := range payload.DailyEntries {
		date, err := parseISODate(d.DateISO)
		if err != nil {
			return draft, err
		}
		for _, id := range d.SelectedEntryIDs {
			if !h.catalog.Has(id) {
				return draft, planner.ErrUnknownEntry
			}
		}
		draft.DayBuckets = append(draft.DayBuckets, models.DayBucket{
			Date:             planner.NormalizeUTC(date),
			SelectedEntryIDs: append([]string{}, d.SelectedEntryIDs...),
		})
	}
	return draft, nil
}

func parseISODate(iso string) (time.Time, error) {
	if iso == "" {
		return time.Time{}, planner.ErrInvalidRange
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		// Bare calendar dates arrive from date inputs.
		t, err = time.Parse("2006-01-02", iso)
	}
	if err != nil {
		return time.Time{}, planner.ErrInvalidRange
	}
	return t, nil
}
