package itineraries

import (
	"voyago/models"
)

// Incoming payload for POST /api/itineraries. Days and activities arrive as
// full nested objects and are persisted bottom-up into their own collections.
type activityInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
}

type dayInput struct {
	DayNumber  int               `json:"dayNumber"`
	Hotel      models.Hotel      `json:"hotel"`
	Transfers  []models.Transfer `json:"transfers"`
	Activities []activityInput   `json:"activities"`
	Meals      []models.Meal     `json:"meals"`
}

type createItineraryRequest struct {
	Title           string         `json:"title"`
	Destination     string         `json:"destination"`
	NumberOfNights  int            `json:"numberOfNights"`
	Description     string         `json:"description"`
	Days            []dayInput     `json:"days"`
	Budget          *models.Budget `json:"budget"`
	BestTimeToVisit string         `json:"bestTimeToVisit"`
	Highlights      []string       `json:"highlights"`
	Tags            []string       `json:"tags"`
}

// Partial update for PUT /api/itineraries/:id. Nil means "leave unchanged".
// Day references are replaced verbatim; whether they resolve is not checked.
type updateItineraryRequest struct {
	Title           *string        `json:"title"`
	Destination     *string        `json:"destination"`
	NumberOfNights  *int           `json:"numberOfNights"`
	Description     *string        `json:"description"`
	Days            *[]string      `json:"days"`
	Budget          *models.Budget `json:"budget"`
	BestTimeToVisit *string        `json:"bestTimeToVisit"`
	Highlights      *[]string      `json:"highlights"`
	Tags            *[]string      `json:"tags"`
	IsRecommended   *bool          `json:"isRecommended"`
	CreatedBy       *string        `json:"createdBy"`
}

// FieldError is one entry of the validation failure details array.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DayDetail is a day with its activity references expanded.
type DayDetail struct {
	models.Day
	Activities []models.Activity `json:"activities"`
}

// ItineraryDetail is an itinerary with days and activities expanded two
// levels deep, mirroring what a document-store populate would return.
type ItineraryDetail struct {
	models.Itinerary
	Days []DayDetail `json:"days"`
}
