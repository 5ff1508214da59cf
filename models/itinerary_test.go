package models

import "testing"

func TestTotalDaysFor(t *testing.T) {
	cases := []struct {
		nights int
		want   int
	}{
		{1, 2},
		{3, 4},
		{30, 31},
	}

	for _, tc := range cases {
		if got := TotalDaysFor(tc.nights); got != tc.want {
			t.Errorf("TotalDaysFor(%d) = %d, want %d", tc.nights, got, tc.want)
		}
	}
}

func TestValidItineraryTag(t *testing.T) {
	for _, tag := range ItineraryTags {
		if !ValidItineraryTag(tag) {
			t.Errorf("expected %q to be valid", tag)
		}
	}
	for _, tag := range []string{"", "Beach", "spelunking"} {
		if ValidItineraryTag(tag) {
			t.Errorf("expected %q to be rejected", tag)
		}
	}
}

func TestValidDayEnums(t *testing.T) {
	if !ValidTransferType("airport") || ValidTransferType("teleport") {
		t.Error("transfer type set is wrong")
	}
	if !ValidTransferMode(DefaultTransferMode) || ValidTransferMode("rocket") {
		t.Error("transfer mode set is wrong")
	}
	if !ValidMealType("dinner") || ValidMealType("brunch") {
		t.Error("meal type set is wrong")
	}
	if !ValidActivityCategory(DefaultActivityCategory) || ValidActivityCategory("snorkeling") {
		t.Error("activity category set is wrong")
	}
}
