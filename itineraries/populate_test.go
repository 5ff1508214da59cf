package itineraries

import (
	"testing"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssembleDetailPreservesReferenceOrder(t *testing.T) {
	actA := models.Activity{ID: primitive.NewObjectID(), Name: "Beach Walk"}
	actB := models.Activity{ID: primitive.NewObjectID(), Name: "Temple Visit"}
	day1 := models.Day{ID: primitive.NewObjectID(), DayNumber: 1, Activities: []primitive.ObjectID{actB.ID, actA.ID}}
	day2 := models.Day{ID: primitive.NewObjectID(), DayNumber: 2}

	it := models.Itinerary{Days: []primitive.ObjectID{day1.ID, day2.ID}}

	// fetch order deliberately differs from reference order
	detail := assembleDetail(it, []models.Day{day2, day1}, []models.Activity{actA, actB})

	if len(detail.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(detail.Days))
	}
	if detail.Days[0].DayNumber != 1 || detail.Days[1].DayNumber != 2 {
		t.Fatalf("days out of order: %+v", detail.Days)
	}

	acts := detail.Days[0].Activities
	if len(acts) != 2 || acts[0].Name != "Temple Visit" || acts[1].Name != "Beach Walk" {
		t.Fatalf("activities out of order: %+v", acts)
	}
}

func TestAssembleDetailOmitsDanglingReferences(t *testing.T) {
	act := models.Activity{ID: primitive.NewObjectID(), Name: "Beach Walk"}
	day := models.Day{
		ID:         primitive.NewObjectID(),
		DayNumber:  1,
		Activities: []primitive.ObjectID{act.ID, primitive.NewObjectID()},
	}
	it := models.Itinerary{Days: []primitive.ObjectID{primitive.NewObjectID(), day.ID}}

	detail := assembleDetail(it, []models.Day{day}, []models.Activity{act})

	if len(detail.Days) != 1 || detail.Days[0].DayNumber != 1 {
		t.Fatalf("expected only the resolving day, got %+v", detail.Days)
	}
	acts := detail.Days[0].Activities
	if len(acts) != 1 || acts[0].Name != "Beach Walk" {
		t.Fatalf("expected only the resolving activity, got %+v", acts)
	}
}

func TestAssembleDetailEmptyItinerary(t *testing.T) {
	detail := assembleDetail(models.Itinerary{}, nil, nil)
	if detail.Days == nil || len(detail.Days) != 0 {
		t.Fatalf("expected empty non-nil days slice, got %#v", detail.Days)
	}
}
