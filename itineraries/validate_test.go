package itineraries

import (
	"testing"

	"voyago/models"
)

func validRequest() createItineraryRequest {
	return createItineraryRequest{
		Title:          "Test Trip",
		Destination:    "Goa, India",
		NumberOfNights: 3,
		Tags:           []string{"beach", "budget"},
		Days: []dayInput{
			{
				DayNumber: 1,
				Hotel:     models.Hotel{Name: "Beach Resort", Location: "Calangute, Goa"},
				Activities: []activityInput{
					{Name: "Beach Walk", Description: "Morning walk on the beach", Time: "7:00 AM", Location: "Calangute Beach"},
				},
			},
		},
	}
}

func fieldErrors(t *testing.T, errs []FieldError) map[string]string {
	t.Helper()
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateCreateAcceptsCompleteRequest(t *testing.T) {
	if errs := validateCreate(validRequest()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateCreateRequiredFields(t *testing.T) {
	req := createItineraryRequest{}
	errs := fieldErrors(t, validateCreate(req))

	for _, field := range []string{"title", "destination", "numberOfNights", "days"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestValidateCreateNightsRange(t *testing.T) {
	cases := []struct {
		nights int
		ok     bool
	}{
		{0, false},
		{1, true},
		{30, true},
		{31, false},
		{-3, false},
	}

	for _, tc := range cases {
		req := validRequest()
		req.NumberOfNights = tc.nights
		errs := fieldErrors(t, validateCreate(req))
		_, bad := errs["numberOfNights"]
		if bad == tc.ok {
			t.Errorf("nights=%d: expected ok=%v, errors %v", tc.nights, tc.ok, errs)
		}
	}
}

func TestValidateCreateRejectsUnknownTag(t *testing.T) {
	req := validRequest()
	req.Tags = []string{"beach", "spelunking"}

	errs := fieldErrors(t, validateCreate(req))
	if _, ok := errs["tags[1]"]; !ok {
		t.Fatalf("expected error for tags[1], got %v", errs)
	}
}

func TestValidateDayHotelAndActivityFields(t *testing.T) {
	req := validRequest()
	req.Days[0].Hotel = models.Hotel{Rating: 6}
	req.Days[0].Activities[0] = activityInput{Category: "snorkeling"}

	errs := fieldErrors(t, validateCreate(req))
	for _, field := range []string{
		"days[0].hotel.name",
		"days[0].hotel.location",
		"days[0].hotel.rating",
		"days[0].activities[0].name",
		"days[0].activities[0].description",
		"days[0].activities[0].time",
		"days[0].activities[0].location",
		"days[0].activities[0].category",
	} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestValidateDayTransfersAndMeals(t *testing.T) {
	req := validRequest()
	req.Days[0].Transfers = []models.Transfer{
		{Type: "teleport", Mode: "rocket"},
	}
	req.Days[0].Meals = []models.Meal{{Type: "brunch"}}

	errs := fieldErrors(t, validateCreate(req))
	for _, field := range []string{
		"days[0].transfers[0].type",
		"days[0].transfers[0].mode",
		"days[0].transfers[0].from",
		"days[0].transfers[0].to",
		"days[0].meals[0].type",
	} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestValidateDayAllowsOptionalDefaults(t *testing.T) {
	// Rating, transfer mode, and activity category are defaulted when
	// omitted, so their zero values must pass validation.
	req := validRequest()
	req.Days[0].Transfers = []models.Transfer{
		{Type: "airport", From: "Airport", To: "Hotel"},
	}

	if errs := validateCreate(req); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateUpdateSkipsAbsentFields(t *testing.T) {
	if errs := validateUpdate(updateItineraryRequest{}); len(errs) != 0 {
		t.Fatalf("expected empty update to pass, got %v", errs)
	}
}

func TestValidateUpdateChecksPresentFields(t *testing.T) {
	empty := ""
	nights := 0
	tags := []string{"nope"}

	req := updateItineraryRequest{
		Title:          &empty,
		Destination:    &empty,
		NumberOfNights: &nights,
		Tags:           &tags,
	}

	errs := fieldErrors(t, validateUpdate(req))
	for _, field := range []string{"title", "destination", "numberOfNights", "tags[0]"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}
