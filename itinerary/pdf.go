package itinerary

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GET /api/itineraries/:id/pdf renders a saved itinerary as a printable
// day-by-day PDF with a QR code of the itinerary id.
func (h *Handler) PrintItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	stored, ok := h.store.Get(ps.ByName("id"))
	if !ok {
		utils.Error(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	qrPNG, err := qrcode.Encode("tripnest:itinerary:"+stored.ID, qrcode.Medium, 256)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, stored.Name)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("%s to %s (%d days)", displayDate(stored.StartDateISO), displayDate(stored.EndDateISO), stored.DayCount))
	pdf.Ln(12)

	for i, day := range stored.DailyEntries {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s", i+1, displayDate(day.DateISO)))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		for _, entryID := range day.SelectedEntryIDs {
			title := "Unknown entry"
			if e, ok := h.catalog.Get(entryID); ok {
				title = fmt.Sprintf("%s (%s, %s)", e.Title, e.Type, e.Location)
			}
			pdf.Cell(0, 7, "  - "+title)
			pdf.Ln(7)
		}
		pdf.Ln(3)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 155, 15, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+stored.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func displayDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}
