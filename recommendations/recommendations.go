package recommendations

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"voyago/db"
	"voyago/itineraries"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildRecommendationFilter maps the optional criteria onto recommended
// itineraries. Nights matches within ±1 of the request; a missing budget.max
// satisfies any ceiling.
func buildRecommendationFilter(nights, destination, tags, budget string) bson.M {
	filter := bson.M{"isRecommended": true}

	if nights != "" {
		if n, err := strconv.Atoi(nights); err == nil {
			filter["numberOfNights"] = bson.M{"$gte": n - 1, "$lte": n + 1}
		}
	}
	if destination != "" {
		filter["destination"] = utils.Regex(destination)
	}
	if parts := utils.SplitTags(tags); len(parts) > 0 {
		filter["tags"] = bson.M{"$in": parts}
	}
	if budget != "" {
		if b, err := strconv.Atoi(budget); err == nil {
			filter["$or"] = []bson.M{
				{"budget.max": bson.M{"$lte": b}},
				{"budget.max": bson.M{"$exists": false}},
			}
		}
	}

	return filter
}

// buildSimilarFilter matches on any of three signals: same destination,
// nights within ±1, or at least one shared tag. The source itself is
// excluded; the tag signal is dropped when the source has no tags, since
// $in rejects a non-array.
func buildSimilarFilter(it models.Itinerary) bson.M {
	or := []bson.M{
		{"destination": it.Destination},
		{"numberOfNights": bson.M{"$gte": it.NumberOfNights - 1, "$lte": it.NumberOfNights + 1}},
	}
	if len(it.Tags) > 0 {
		or = append(or, bson.M{"tags": bson.M{"$in": it.Tags}})
	}

	return bson.M{
		"_id": bson.M{"$ne": it.ID},
		"$or": or,
	}
}

// GET /api/recommendations
func GetRecommendations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	query := r.URL.Query()
	filter := buildRecommendationFilter(query.Get("nights"), query.Get("destination"), query.Get("tags"), query.Get("budget"))

	opts := options.Find().
		SetSort(bson.D{{Key: "numberOfNights", Value: 1}, {Key: "createdAt", Value: -1}}).
		SetLimit(10)

	matches, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, filter, opts)
	if err != nil {
		log.Printf("Failed to fetch recommendations: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	// No exact matches: fall back to the most recent recommended trips so
	// the caller always has something to show.
	if len(matches) == 0 {
		fallbackOpts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(5)

		fallback, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, bson.M{"isRecommended": true}, fallbackOpts)
		if err != nil {
			log.Printf("Failed to fetch fallback recommendations: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
			return
		}

		details, err := itineraries.PopulateItineraries(ctx, fallback)
		if err != nil {
			log.Printf("Failed to populate fallback recommendations: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success": true,
			"count":   len(details),
			"message": "No exact matches found. Here are popular destinations:",
			"data":    details,
		})
		return
	}

	details, err := itineraries.PopulateItineraries(ctx, matches)
	if err != nil {
		log.Printf("Failed to populate recommendations: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(details),
		"data":    details,
	})
}

type destinationGroup struct {
	Destination string     `bson:"_id"`
	Count       int        `bson:"count"`
	MinNights   int        `bson:"minNights"`
	MaxNights   int        `bson:"maxNights"`
	Tags        [][]string `bson:"tags"`
	Highlights  [][]string `bson:"highlights"`
}

type nightRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DestinationSummary aggregates all recommended itineraries that share a
// destination.
type DestinationSummary struct {
	Destination    string     `json:"destination"`
	ItineraryCount int        `json:"itineraryCount"`
	NightRange     nightRange `json:"nightRange"`
	Tags           []string   `json:"tags"`
	Highlights     []string   `json:"highlights"`
}

// flattenUnique merges grouped string lists, dropping duplicates while
// keeping first-seen order.
func flattenUnique(groups [][]string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, group := range groups {
		for _, s := range group {
			if !seen[s] {
				out = append(out, s)
				seen[s] = true
			}
		}
	}
	return out
}

// GET /api/recommendations/destinations
func GetDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"isRecommended": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":        "$destination",
			"count":      bson.M{"$sum": 1},
			"minNights":  bson.M{"$min": "$numberOfNights"},
			"maxNights":  bson.M{"$max": "$numberOfNights"},
			"tags":       bson.M{"$addToSet": "$tags"},
			"highlights": bson.M{"$addToSet": "$highlights"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := db.ItineraryCollection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("Failed to aggregate destinations: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	defer cursor.Close(ctx)

	var groups []destinationGroup
	if err := cursor.All(ctx, &groups); err != nil {
		log.Printf("Failed to decode destination groups: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	summaries := make([]DestinationSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, DestinationSummary{
			Destination:    g.Destination,
			ItineraryCount: g.Count,
			NightRange:     nightRange{Min: g.MinNights, Max: g.MaxNights},
			Tags:           flattenUnique(g.Tags),
			Highlights:     flattenUnique(g.Highlights),
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(summaries),
		"data":    summaries,
	})
}

// GET /api/recommendations/similar/:id
func GetSimilarItineraries(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	opts := options.Find().SetLimit(6)
	similar, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, buildSimilarFilter(itinerary), opts)
	if err != nil {
		log.Printf("Failed to fetch similar itineraries: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	details, err := itineraries.PopulateItineraries(ctx, similar)
	if err != nil {
		log.Printf("Failed to populate similar itineraries: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(details),
		"data":    details,
	})
}
