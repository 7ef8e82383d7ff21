package search

import (
	"net/http"

	"tripnest/catalog"
	"tripnest/models"
	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	ranker Ranker
	src    catalog.EntrySource
}

func NewHandler(ranker Ranker, src catalog.EntrySource) *Handler {
	return &Handler{ranker: ranker, src: src}
}

// GET /api/search?q= resolves ranked ids back against the decorated
// catalog; ids the ranker returns for entries we no longer carry are
// dropped.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("q")
	if utils.IsBlank(query) {
		utils.Error(w, http.StatusBadRequest, "Query is required")
		return
	}

	entries := h.src.Entries()
	byID := make(map[string]models.Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	results := []models.Entry{}
	for _, id := range h.ranker.Rank(r.Context(), query, entries) {
		if e, ok := byID[id]; ok {
			results = append(results, e)
		}
	}

	utils.JSON(w, http.StatusOK, utils.M{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}
