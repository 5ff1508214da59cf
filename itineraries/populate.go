package itineraries

import (
	"context"

	"voyago/db"
	"voyago/models"
	"voyago/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// assembleDetail stitches pre-fetched days and activities back onto the
// itinerary. Reference order wins over fetch order; references that did not
// resolve are omitted without error.
func assembleDetail(it models.Itinerary, days []models.Day, activities []models.Activity) ItineraryDetail {
	dayByID := make(map[primitive.ObjectID]models.Day, len(days))
	for _, day := range days {
		dayByID[day.ID] = day
	}
	activityByID := make(map[primitive.ObjectID]models.Activity, len(activities))
	for _, act := range activities {
		activityByID[act.ID] = act
	}

	detail := ItineraryDetail{Itinerary: it, Days: []DayDetail{}}
	for _, dayID := range it.Days {
		day, ok := dayByID[dayID]
		if !ok {
			continue // dangling day reference
		}
		dd := DayDetail{Day: day, Activities: []models.Activity{}}
		for _, actID := range day.Activities {
			if act, ok := activityByID[actID]; ok {
				dd.Activities = append(dd.Activities, act)
			}
		}
		detail.Days = append(detail.Days, dd)
	}
	return detail
}

// PopulateItinerary expands day references and, within each day, activity
// references into full documents, two levels deep.
func PopulateItinerary(ctx context.Context, it models.Itinerary) (ItineraryDetail, error) {
	if len(it.Days) == 0 {
		return ItineraryDetail{Itinerary: it, Days: []DayDetail{}}, nil
	}

	days, err := utils.FindAndDecode[models.Day](ctx, db.DayCollection, bson.M{"_id": bson.M{"$in": it.Days}})
	if err != nil {
		return ItineraryDetail{Itinerary: it, Days: []DayDetail{}}, err
	}

	var activityIDs []primitive.ObjectID
	for _, day := range days {
		activityIDs = append(activityIDs, day.Activities...)
	}

	var activities []models.Activity
	if len(activityIDs) > 0 {
		activities, err = utils.FindAndDecode[models.Activity](ctx, db.ActivityCollection, bson.M{"_id": bson.M{"$in": activityIDs}})
		if err != nil {
			return ItineraryDetail{Itinerary: it, Days: []DayDetail{}}, err
		}
	}

	return assembleDetail(it, days, activities), nil
}

func PopulateItineraries(ctx context.Context, its []models.Itinerary) ([]ItineraryDetail, error) {
	details := make([]ItineraryDetail, 0, len(its))
	for _, it := range its {
		detail, err := PopulateItinerary(ctx, it)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}
