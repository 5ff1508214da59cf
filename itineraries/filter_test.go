package itineraries

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildListFilterEmpty(t *testing.T) {
	filter := buildListFilter("", "", "")
	if len(filter) != 0 {
		t.Fatalf("expected empty filter, got %v", filter)
	}
}

func TestBuildListFilterDestinationIsCaseInsensitiveSubstring(t *testing.T) {
	filter := buildListFilter("phuket", "", "")

	dest, ok := filter["destination"].(bson.M)
	if !ok {
		t.Fatalf("expected destination matcher, got %v", filter)
	}
	if dest["$regex"] != "phuket" || dest["$options"] != "i" {
		t.Fatalf("unexpected destination matcher %v", dest)
	}
}

func TestBuildListFilterNights(t *testing.T) {
	filter := buildListFilter("", "4", "")
	if filter["numberOfNights"] != 4 {
		t.Fatalf("expected exact nights match, got %v", filter)
	}
}

func TestBuildListFilterIgnoresUnparseableNights(t *testing.T) {
	filter := buildListFilter("", "four", "")
	if _, ok := filter["numberOfNights"]; ok {
		t.Fatalf("expected nights to be ignored, got %v", filter)
	}
}

func TestBuildListFilterIgnoresBlankTags(t *testing.T) {
	filter := buildListFilter("", "", " , ,")
	if _, ok := filter["tags"]; ok {
		t.Fatalf("expected blank tags to be ignored, got %v", filter)
	}
}

func TestBuildListFilterTags(t *testing.T) {
	filter := buildListFilter("", "", "Beach, luxury, beach")

	tags, ok := filter["tags"].(bson.M)
	if !ok {
		t.Fatalf("expected tags matcher, got %v", filter)
	}
	if !reflect.DeepEqual(tags["$in"], []string{"beach", "luxury"}) {
		t.Fatalf("unexpected tag list %v", tags["$in"])
	}
}
