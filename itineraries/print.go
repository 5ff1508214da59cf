package itineraries

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func frontendURL() string {
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:5173"
}

// GET /api/itineraries/:id/print
//
// Renders the populated itinerary as a PDF with a QR code linking back to
// the itinerary page.
func PrintItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var itinerary models.Itinerary
	if err := db.ItineraryCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&itinerary); err != nil {
		if utils.IsNoDocuments(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		log.Printf("Failed to fetch itinerary %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	detail, err := PopulateItinerary(ctx, itinerary)
	if err != nil {
		log.Printf("Failed to populate itinerary %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	shareURL := fmt.Sprintf("%s/itineraries/%s", frontendURL(), id.Hex())
	qrPNG, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, detail.Title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Destination: %s", detail.Destination))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("%d nights / %d days", detail.NumberOfNights, detail.TotalDays))
	pdf.Ln(6)
	if detail.BestTimeToVisit != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Best time to visit: %s", detail.BestTimeToVisit))
		pdf.Ln(6)
	}
	if detail.Budget != nil && detail.Budget.Max > 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Budget: %.0f - %.0f %s", detail.Budget.Min, detail.Budget.Max, detail.Budget.Currency))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for _, day := range detail.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s", day.DayNumber, day.Hotel.Name))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Hotel: %s, %s", day.Hotel.Name, day.Hotel.Location))
		pdf.Ln(5)
		for _, act := range day.Activities {
			pdf.Cell(0, 6, fmt.Sprintf("  %s - %s (%s)", act.Time, act.Name, act.Duration))
			pdf.Ln(5)
		}
		pdf.Ln(3)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 10, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+id.Hex()+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
