package itineraries

import (
	"fmt"
	"strings"

	"voyago/models"
)

// validateCreate checks the whole payload before anything is persisted; a
// non-empty result short-circuits the cascade create.
func validateCreate(req createItineraryRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	}
	if strings.TrimSpace(req.Destination) == "" {
		errs = append(errs, FieldError{Field: "destination", Message: "Destination is required"})
	}
	if req.NumberOfNights < 1 || req.NumberOfNights > 30 {
		errs = append(errs, FieldError{Field: "numberOfNights", Message: "Number of nights must be between 1 and 30"})
	}
	if len(req.Days) == 0 {
		errs = append(errs, FieldError{Field: "days", Message: "At least one day is required"})
	}

	for i, tag := range req.Tags {
		if !models.ValidItineraryTag(tag) {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("tags[%d]", i),
				Message: fmt.Sprintf("Unknown tag %q", tag),
			})
		}
	}

	for i, day := range req.Days {
		errs = append(errs, validateDay(i, day)...)
	}

	return errs
}

func validateDay(i int, day dayInput) []FieldError {
	var errs []FieldError
	prefix := fmt.Sprintf("days[%d]", i)

	if day.DayNumber < 1 {
		errs = append(errs, FieldError{Field: prefix + ".dayNumber", Message: "Day number must be a positive integer"})
	}
	if strings.TrimSpace(day.Hotel.Name) == "" {
		errs = append(errs, FieldError{Field: prefix + ".hotel.name", Message: "Hotel name is required"})
	}
	if strings.TrimSpace(day.Hotel.Location) == "" {
		errs = append(errs, FieldError{Field: prefix + ".hotel.location", Message: "Hotel location is required"})
	}
	if day.Hotel.Rating != 0 && (day.Hotel.Rating < 1 || day.Hotel.Rating > 5) {
		errs = append(errs, FieldError{Field: prefix + ".hotel.rating", Message: "Hotel rating must be between 1 and 5"})
	}

	for j, tr := range day.Transfers {
		field := fmt.Sprintf("%s.transfers[%d]", prefix, j)
		if !models.ValidTransferType(tr.Type) {
			errs = append(errs, FieldError{Field: field + ".type", Message: fmt.Sprintf("Unknown transfer type %q", tr.Type)})
		}
		if tr.Mode != "" && !models.ValidTransferMode(tr.Mode) {
			errs = append(errs, FieldError{Field: field + ".mode", Message: fmt.Sprintf("Unknown transfer mode %q", tr.Mode)})
		}
		if strings.TrimSpace(tr.From) == "" {
			errs = append(errs, FieldError{Field: field + ".from", Message: "Transfer origin is required"})
		}
		if strings.TrimSpace(tr.To) == "" {
			errs = append(errs, FieldError{Field: field + ".to", Message: "Transfer destination is required"})
		}
	}

	for j, meal := range day.Meals {
		if !models.ValidMealType(meal.Type) {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("%s.meals[%d].type", prefix, j),
				Message: fmt.Sprintf("Unknown meal type %q", meal.Type),
			})
		}
	}

	for j, act := range day.Activities {
		field := fmt.Sprintf("%s.activities[%d]", prefix, j)
		if strings.TrimSpace(act.Name) == "" {
			errs = append(errs, FieldError{Field: field + ".name", Message: "Activity name is required"})
		}
		if strings.TrimSpace(act.Description) == "" {
			errs = append(errs, FieldError{Field: field + ".description", Message: "Activity description is required"})
		}
		if strings.TrimSpace(act.Time) == "" {
			errs = append(errs, FieldError{Field: field + ".time", Message: "Activity time is required"})
		}
		if strings.TrimSpace(act.Location) == "" {
			errs = append(errs, FieldError{Field: field + ".location", Message: "Activity location is required"})
		}
		if act.Category != "" && !models.ValidActivityCategory(act.Category) {
			errs = append(errs, FieldError{Field: field + ".category", Message: fmt.Sprintf("Unknown category %q", act.Category)})
		}
	}

	return errs
}

// validateUpdate covers only the fields present in a partial update.
func validateUpdate(req updateItineraryRequest) []FieldError {
	var errs []FieldError

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	}
	if req.Destination != nil && strings.TrimSpace(*req.Destination) == "" {
		errs = append(errs, FieldError{Field: "destination", Message: "Destination is required"})
	}
	if req.NumberOfNights != nil && (*req.NumberOfNights < 1 || *req.NumberOfNights > 30) {
		errs = append(errs, FieldError{Field: "numberOfNights", Message: "Number of nights must be between 1 and 30"})
	}
	if req.Tags != nil {
		for i, tag := range *req.Tags {
			if !models.ValidItineraryTag(tag) {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("tags[%d]", i),
					Message: fmt.Sprintf("Unknown tag %q", tag),
				})
			}
		}
	}

	return errs
}
