package recommendations

import (
	"reflect"
	"testing"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildRecommendationFilterDefaults(t *testing.T) {
	filter := buildRecommendationFilter("", "", "", "")
	want := bson.M{"isRecommended": true}
	if !reflect.DeepEqual(filter, want) {
		t.Fatalf("expected %v, got %v", want, filter)
	}
}

func TestBuildRecommendationFilterNightsWindow(t *testing.T) {
	filter := buildRecommendationFilter("5", "", "", "")

	nights, ok := filter["numberOfNights"].(bson.M)
	if !ok {
		t.Fatalf("expected nights range, got %v", filter)
	}
	if nights["$gte"] != 4 || nights["$lte"] != 6 {
		t.Fatalf("expected 4..6 window, got %v", nights)
	}
}

func TestBuildRecommendationFilterIgnoresBadNumbers(t *testing.T) {
	filter := buildRecommendationFilter("five", "", "", "cheap")
	if _, ok := filter["numberOfNights"]; ok {
		t.Errorf("expected unparseable nights to be ignored, got %v", filter)
	}
	if _, ok := filter["$or"]; ok {
		t.Errorf("expected unparseable budget to be ignored, got %v", filter)
	}
}

func TestBuildRecommendationFilterBudgetCeiling(t *testing.T) {
	filter := buildRecommendationFilter("", "", "", "1500")

	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("expected two-branch budget clause, got %v", filter)
	}

	ceiling := or[0]["budget.max"].(bson.M)
	if ceiling["$lte"] != 1500 {
		t.Errorf("expected ceiling 1500, got %v", ceiling)
	}

	// Itineraries without a stated maximum satisfy any ceiling.
	missing := or[1]["budget.max"].(bson.M)
	if missing["$exists"] != false {
		t.Errorf("expected missing-budget branch, got %v", missing)
	}
}

func TestBuildRecommendationFilterDestinationAndTags(t *testing.T) {
	filter := buildRecommendationFilter("", "phuket", "beach,luxury", "")

	dest := filter["destination"].(bson.M)
	if dest["$regex"] != "phuket" || dest["$options"] != "i" {
		t.Errorf("unexpected destination matcher %v", dest)
	}

	tags := filter["tags"].(bson.M)
	if !reflect.DeepEqual(tags["$in"], []string{"beach", "luxury"}) {
		t.Errorf("unexpected tag list %v", tags["$in"])
	}
}

func TestBuildSimilarFilter(t *testing.T) {
	it := models.Itinerary{
		ID:             primitive.NewObjectID(),
		Destination:    "Phuket, Thailand",
		NumberOfNights: 5,
		Tags:           []string{"beach", "luxury"},
	}

	filter := buildSimilarFilter(it)

	exclude := filter["_id"].(bson.M)
	if exclude["$ne"] != it.ID {
		t.Errorf("expected source itinerary excluded, got %v", exclude)
	}

	or := filter["$or"].([]bson.M)
	if len(or) != 3 {
		t.Fatalf("expected three similarity signals, got %v", or)
	}
	if or[0]["destination"] != it.Destination {
		t.Errorf("unexpected destination signal %v", or[0])
	}
	nights := or[1]["numberOfNights"].(bson.M)
	if nights["$gte"] != 4 || nights["$lte"] != 6 {
		t.Errorf("unexpected nights window %v", nights)
	}
	tags := or[2]["tags"].(bson.M)
	if !reflect.DeepEqual(tags["$in"], it.Tags) {
		t.Errorf("unexpected tags signal %v", or[2])
	}
}

func TestBuildSimilarFilterWithoutTags(t *testing.T) {
	it := models.Itinerary{
		ID:             primitive.NewObjectID(),
		Destination:    "Goa, India",
		NumberOfNights: 3,
	}

	filter := buildSimilarFilter(it)

	or := filter["$or"].([]bson.M)
	if len(or) != 2 {
		t.Fatalf("expected the tag signal to be dropped, got %v", or)
	}
	for _, clause := range or {
		if _, ok := clause["tags"]; ok {
			t.Fatalf("unexpected tags clause %v", clause)
		}
	}
}

func TestBuildRecommendationFilterIgnoresBlankTags(t *testing.T) {
	filter := buildRecommendationFilter("", "", " , ,", "")
	if _, ok := filter["tags"]; ok {
		t.Fatalf("expected blank tags to be ignored, got %v", filter)
	}
}

func TestFlattenUnique(t *testing.T) {
	got := flattenUnique([][]string{
		{"beach", "luxury"},
		{"beach", "romantic"},
		nil,
		{"luxury"},
	})
	want := []string{"beach", "luxury", "romantic"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFlattenUniqueEmpty(t *testing.T) {
	if got := flattenUnique(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
