package itineraries

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"voyago/db"
	"voyago/globals"
	"voyago/models"
	"voyago/mq"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// POST /api/itineraries
//
// Bottom-up cascade create: activities first, then each day referencing
// them, then the itinerary referencing the days. Order is preserved
// throughout. There is no transaction: a failure partway leaves the already
// inserted documents behind.
func CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := validateCreate(req); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
			"success": false,
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	now := time.Now()
	dayIDs := make([]primitive.ObjectID, 0, len(req.Days))

	for _, dayIn := range req.Days {
		activityIDs := make([]primitive.ObjectID, 0, len(dayIn.Activities))

		for _, actIn := range dayIn.Activities {
			activity := models.Activity{
				Name:        actIn.Name,
				Description: actIn.Description,
				Time:        actIn.Time,
				Location:    actIn.Location,
				Category:    actIn.Category,
				Duration:    actIn.Duration,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if activity.Category == "" {
				activity.Category = models.DefaultActivityCategory
			}
			if activity.Duration == "" {
				activity.Duration = models.DefaultActivityDuration
			}

			res, err := db.ActivityCollection.InsertOne(ctx, activity)
			if err != nil {
				log.Printf("Failed to insert activity: %v", err)
				utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create itinerary")
				return
			}
			activityIDs = append(activityIDs, res.InsertedID.(primitive.ObjectID))
		}

		day := models.Day{
			DayNumber:  dayIn.DayNumber,
			Hotel:      dayIn.Hotel,
			Transfers:  dayIn.Transfers,
			Activities: activityIDs,
			Meals:      dayIn.Meals,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if day.Hotel.Rating == 0 {
			day.Hotel.Rating = models.DefaultHotelRating
		}
		for i := range day.Transfers {
			if day.Transfers[i].Mode == "" {
				day.Transfers[i].Mode = models.DefaultTransferMode
			}
		}
		if day.Transfers == nil {
			day.Transfers = []models.Transfer{}
		}
		if day.Meals == nil {
			day.Meals = []models.Meal{}
		}

		res, err := db.DayCollection.InsertOne(ctx, day)
		if err != nil {
			log.Printf("Failed to insert day: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create itinerary")
			return
		}
		dayIDs = append(dayIDs, res.InsertedID.(primitive.ObjectID))
	}

	createdBy := "System"
	if userID, ok := r.Context().Value(globals.UserIDKey).(string); ok && userID != "" {
		createdBy = userID
	}

	itinerary := models.Itinerary{
		Title:           req.Title,
		Destination:     req.Destination,
		NumberOfNights:  req.NumberOfNights,
		TotalDays:       models.TotalDaysFor(req.NumberOfNights),
		Description:     req.Description,
		Days:            dayIDs,
		Budget:          req.Budget,
		BestTimeToVisit: req.BestTimeToVisit,
		Highlights:      req.Highlights,
		Tags:            req.Tags,
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if itinerary.Budget != nil && itinerary.Budget.Currency == "" {
		itinerary.Budget.Currency = models.DefaultCurrency
	}
	if itinerary.Highlights == nil {
		itinerary.Highlights = []string{}
	}
	if itinerary.Tags == nil {
		itinerary.Tags = []string{}
	}

	res, err := db.ItineraryCollection.InsertOne(ctx, itinerary)
	if err != nil {
		log.Printf("Failed to insert itinerary: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create itinerary")
		return
	}
	itinerary.ID = res.InsertedID.(primitive.ObjectID)

	detail, err := PopulateItinerary(ctx, itinerary)
	if err != nil {
		log.Printf("Failed to populate itinerary %s: %v", itinerary.ID.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	go mq.Emit(globals.Ctx, "itinerary-created", mq.Event{EntityType: "itinerary", EntityID: itinerary.ID.Hex(), Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "data": detail})
}

// PUT /api/itineraries/:id
//
// Partial field replacement. totalDays is recomputed from the resulting
// numberOfNights on every update, whether or not the field was touched. Day
// references are replaced as given; they are not checked for existence.
func UpdateItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var existing models.Itinerary
	if err := db.ItineraryCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&existing); err != nil {
		if utils.IsNoDocuments(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		log.Printf("Failed to fetch itinerary %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	var req updateItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := validateUpdate(req); len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
			"success": false,
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	nights := existing.NumberOfNights

	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Destination != nil {
		set["destination"] = *req.Destination
	}
	if req.NumberOfNights != nil {
		nights = *req.NumberOfNights
		set["numberOfNights"] = nights
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Days != nil {
		dayIDs := make([]primitive.ObjectID, 0, len(*req.Days))
		for _, hex := range *req.Days {
			dayID, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, "Invalid day reference")
				return
			}
			dayIDs = append(dayIDs, dayID)
		}
		set["days"] = dayIDs
	}
	if req.Budget != nil {
		if req.Budget.Currency == "" {
			req.Budget.Currency = models.DefaultCurrency
		}
		set["budget"] = req.Budget
	}
	if req.BestTimeToVisit != nil {
		set["bestTimeToVisit"] = *req.BestTimeToVisit
	}
	if req.Highlights != nil {
		set["highlights"] = *req.Highlights
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
	}
	if req.IsRecommended != nil {
		set["isRecommended"] = *req.IsRecommended
	}
	if req.CreatedBy != nil {
		set["createdBy"] = *req.CreatedBy
	}

	// Derived field, recomputed unconditionally on every save.
	set["totalDays"] = models.TotalDaysFor(nights)

	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
		log.Printf("Failed to update itinerary %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	var updated models.Itinerary
	if err := db.ItineraryCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	detail, err := PopulateItinerary(ctx, updated)
	if err != nil {
		log.Printf("Failed to populate itinerary %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	go mq.Emit(globals.Ctx, "itinerary-updated", mq.Event{EntityType: "itinerary", EntityID: id.Hex(), Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": detail})
}

// DELETE /api/itineraries/:id
//
// Top-down discovery, bottom-up teardown: each referenced day is looked up,
// its activities deleted, the day deleted, then the itinerary itself. A day
// reference that no longer resolves is skipped silently. No transaction
// wraps the steps.
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	for _, dayID := range itinerary.Days {
		var day models.Day
		if err := db.DayCollection.FindOne(ctx, bson.M{"_id": dayID}).Decode(&day); err != nil {
			continue // day already gone
		}

		if len(day.Activities) > 0 {
			if _, err := db.ActivityCollection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": day.Activities}}); err != nil {
				log.Printf("Failed to delete activities of day %s: %v", dayID.Hex(), err)
				utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
				return
			}
		}

		if _, err := db.DayCollection.DeleteOne(ctx, bson.M{"_id": dayID}); err != nil {
			log.Printf("Failed to delete day %s: %v", dayID.Hex(), err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
			return
		}
	}

	if _, err := db.ItineraryCollection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		log.Printf("Failed to delete itinerary %s: %v", id.Hex(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	go mq.Emit(globals.Ctx, "itinerary-deleted", mq.Event{EntityType: "itinerary", EntityID: id.Hex(), Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": utils.M{}})
}
