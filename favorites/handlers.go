package favorites

import (
	"encoding/json"
	"net/http"

	"tripnest/globals"
	"tripnest/rdx"
	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// GetEntries serves the full decorated catalog, cached in redis when
// available. The cache key is invalidated by the store's subscriber hook on
// every favorite mutation.
func (h *Handler) GetEntries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if rdx.Available() {
		if cached, _ := rdx.RdxGet(globals.EntriesCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	data := utils.ToJSON(h.store.Entries())
	if rdx.Available() {
		rdx.RdxSet(globals.EntriesCacheKey, string(data))
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetFavorites lists only the favorited entries, catalog order.
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	favs := []any{}
	for _, e := range h.store.Entries() {
		if e.IsFavorite {
			favs = append(favs, e)
		}
	}
	utils.JSON(w, http.StatusOK, utils.M{
		"entries": favs,
		"count":   h.store.Count(),
	})
}

// ToggleFavorite flips an entry's favorite state.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	value := h.store.ToggleFavorite(id)
	utils.JSON(w, http.StatusOK, utils.M{"id": id, "isFavorite": value})
}

// SetFavorite sets an entry's favorite state explicitly.
func (h *Handler) SetFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var body struct {
		Value bool `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	h.store.SetFavorite(id, body.Value)
	utils.JSON(w, http.StatusOK, utils.M{"id": id, "isFavorite": body.Value})
}
