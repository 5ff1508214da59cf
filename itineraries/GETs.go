package itineraries

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildListFilter translates the list query params into a Mongo filter.
// A nights value that does not parse is ignored rather than matching nothing.
func buildListFilter(destination, nights, tags string) bson.M {
	filter := bson.M{}

	if destination != "" {
		filter["destination"] = utils.Regex(destination)
	}
	if nights != "" {
		if n, err := strconv.Atoi(nights); err == nil {
			filter["numberOfNights"] = n
		}
	}
	if parts := utils.SplitTags(tags); len(parts) > 0 {
		filter["tags"] = bson.M{"$in": parts}
	}

	return filter
}

// GET /api/itineraries
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	query := r.URL.Query()
	filter := buildListFilter(query.Get("destination"), query.Get("nights"), query.Get("tags"))
	page, limit := utils.ParsePagination(r, 10)
	skip := (page - 1) * limit

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	its, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, filter, opts)
	if err != nil {
		log.Printf("Failed to fetch itineraries: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	total, err := db.ItineraryCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Printf("Failed to count itineraries: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	details, err := PopulateItineraries(ctx, its)
	if err != nil {
		log.Printf("Failed to populate itineraries: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(details),
		"total":   total,
		"pagination": utils.M{
			"page":  page,
			"limit": limit,
			"pages": utils.TotalPages(total, limit),
		},
		"data": details,
	})
}

// GET /api/itineraries/:id
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": detail})
}
