package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripnest/catalog"
	"tripnest/storage"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *Store) {
	t.Helper()

	cat := catalog.New()
	cat.Load(context.Background())

	blob, err := storage.NewFileBlob(t.TempDir())
	require.NoError(t, err)
	store := NewStore(blob)
	h := NewHandler(store, cat)

	router := httprouter.New()
	router.GET("/api/itineraries", h.GetItineraries)
	router.GET("/api/itineraries/:id", h.GetItinerary)
	router.POST("/api/itineraries", h.SaveItinerary)
	router.POST("/api/drafts", h.CreateDraft)
	router.GET("/api/drafts/:id", h.GetDraft)
	router.PUT("/api/drafts/:id/dates", h.SetDraftDates)
	router.POST("/api/drafts/:id/entries", h.AddDraftEntry)
	router.DELETE("/api/drafts/:id/days/:date/entries/:entryid", h.RemoveDraftEntry)
	router.POST("/api/drafts/:id/save", h.SaveDraft)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, store
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestDraftBuilderFlow(t *testing.T) {
	srv, store := newTestServer(t)

	// start a two day draft
	resp, body := do(t, "POST", srv.URL+"/api/drafts",
		`{"name":"June Break","startDateISO":"2024-06-01","endDateISO":"2024-06-02"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	draftID, _ := body["id"].(string)
	require.NotEmpty(t, draftID)
	assert.Equal(t, false, body["complete"])

	draftURL := srv.URL + "/api/drafts/" + draftID

	// fill day one to capacity
	for _, id := range []string{"a1", "a2", "a3", "a4", "a5"} {
		resp, _ = do(t, "POST", draftURL+"/entries",
			fmt.Sprintf(`{"dateISO":"2024-06-01","entryId":%q}`, id))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// a sixth entry on the same day is rejected
	resp, body = do(t, "POST", draftURL+"/entries", `{"dateISO":"2024-06-01","entryId":"h1"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "capacity_exceeded", body["error"])

	// so is a duplicate on any day with room
	resp, body = do(t, "POST", draftURL+"/entries", `{"dateISO":"2024-06-02","entryId":"h1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = do(t, "POST", draftURL+"/entries", `{"dateISO":"2024-06-02","entryId":"h1"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "duplicate_entry", body["error"])

	// and an id the catalog has never seen
	resp, body = do(t, "POST", draftURL+"/entries", `{"dateISO":"2024-06-02","entryId":"ghost"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unknown_entry", body["error"])

	// removing the only entry on day two makes the draft incomplete again
	resp, _ = do(t, "DELETE", draftURL+"/days/2024-06-02/entries/h1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, "POST", draftURL+"/save", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "incomplete_draft", body["error"])
	assert.Empty(t, store.List())

	// refill and save
	resp, _ = do(t, "POST", draftURL+"/entries", `{"dateISO":"2024-06-02","entryId":"r1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, "POST", draftURL+"/save", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	savedID, _ := body["id"].(string)
	assert.NotEmpty(t, savedID)
	assert.Equal(t, "June Break", body["itineraryName"])
	assert.Equal(t, float64(2), body["days"])

	// session is gone, record is stored
	resp, _ = do(t, "GET", draftURL, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = do(t, "GET", srv.URL+"/api/itineraries/"+savedID, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "June Break", body["itineraryName"])
}

func TestSetDraftDatesClampsAndPreserves(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, "POST", srv.URL+"/api/drafts",
		`{"name":"Long Haul","startDateISO":"2024-06-01","endDateISO":"2024-06-03"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	draftID := body["id"].(string)
	draftURL := srv.URL + "/api/drafts/" + draftID

	resp, _ = do(t, "POST", draftURL+"/entries", `{"dateISO":"2024-06-01","entryId":"a1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// an end past the seven day window snaps back to start+6
	resp, body = do(t, "PUT", draftURL+"/dates",
		`{"startDateISO":"2024-06-01","endDateISO":"2024-06-30"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2024-06-07T00:00:00Z", body["endDateISO"])

	buckets, ok := body["dayBuckets"].([]interface{})
	require.True(t, ok)
	require.Len(t, buckets, 7)
	first := buckets[0].(map[string]interface{})
	selected, _ := first["selectedEntryIds"].([]interface{})
	assert.Equal(t, []interface{}{"a1"}, selected)
}

func TestCreateDraftRejectsBadRanges(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := do(t, "POST", srv.URL+"/api/drafts",
		`{"name":"Backwards","startDateISO":"2024-06-05","endDateISO":"2024-06-03"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_range", body["error"])

	resp, body = do(t, "POST", srv.URL+"/api/drafts",
		`{"name":"Garbage","startDateISO":"2024-06-05","endDateISO":"not-a-date"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_range", body["error"])

	// missing dates are rejected, not defaulted
	resp, body = do(t, "POST", srv.URL+"/api/drafts",
		`{"name":"Dateless","startDateISO":"2024-06-05"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_range", body["error"])
}

func TestSaveItineraryWholesale(t *testing.T) {
	srv, store := newTestServer(t)

	resp, body := do(t, "POST", srv.URL+"/api/itineraries", `{
		"itineraryName": "Weekend",
		"startDateISO": "2024-06-01",
		"endDateISO": "2024-06-02",
		"dailyEntries": [
			{"dateISO": "2024-06-01", "selectedEntryIds": ["a1"]},
			{"dateISO": "2024-06-02", "selectedEntryIds": ["h1", "r1"]}
		]
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Weekend", body["itineraryName"])
	assert.Len(t, store.List(), 1)

	// unknown ids reject the whole payload
	resp, body = do(t, "POST", srv.URL+"/api/itineraries", `{
		"itineraryName": "Bad",
		"startDateISO": "2024-06-01",
		"endDateISO": "2024-06-01",
		"dailyEntries": [{"dateISO": "2024-06-01", "selectedEntryIds": ["ghost"]}]
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unknown_entry", body["error"])
	assert.Len(t, store.List(), 1)
}

func TestSaveItineraryRequiresFullDayCoverage(t *testing.T) {
	srv, store := newTestServer(t)

	// omitting the middle day is the same gap as an empty bucket for it
	resp, body := do(t, "POST", srv.URL+"/api/itineraries", `{
		"itineraryName": "Gappy",
		"startDateISO": "2024-06-01",
		"endDateISO": "2024-06-03",
		"dailyEntries": [
			{"dateISO": "2024-06-01", "selectedEntryIds": ["a1"]},
			{"dateISO": "2024-06-03", "selectedEntryIds": ["r1"]}
		]
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "incomplete_draft", body["error"])
	assert.Empty(t, store.List())

	// two buckets for the same date never cover a two day range
	resp, body = do(t, "POST", srv.URL+"/api/itineraries", `{
		"itineraryName": "Doubled",
		"startDateISO": "2024-06-01",
		"endDateISO": "2024-06-02",
		"dailyEntries": [
			{"dateISO": "2024-06-01", "selectedEntryIds": ["a1"]},
			{"dateISO": "2024-06-01", "selectedEntryIds": ["a2"]}
		]
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "incomplete_draft", body["error"])
	assert.Empty(t, store.List())

	// a bucket dated outside the range is rejected even at the right length
	resp, body = do(t, "POST", srv.URL+"/api/itineraries", `{
		"itineraryName": "Shifted",
		"startDateISO": "2024-06-01",
		"endDateISO": "2024-06-02",
		"dailyEntries": [
			{"dateISO": "2024-06-01", "selectedEntryIds": ["a1"]},
			{"dateISO": "2024-06-05", "selectedEntryIds": ["a2"]}
		]
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "incomplete_draft", body["error"])
	assert.Empty(t, store.List())
}
