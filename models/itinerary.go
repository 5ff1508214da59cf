package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ItineraryTags = []string{"beach", "adventure", "cultural", "luxury", "budget", "family", "romantic", "solo"}

const DefaultCurrency = "USD"

type Budget struct {
	Min      float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max      float64 `json:"max,omitempty" bson:"max,omitempty"`
	Currency string  `json:"currency" bson:"currency"`
}

// Itinerary is the trip aggregate root. Days holds references into the days
// collection; cascade behaviour is orchestrated in application code, the
// database enforces nothing across collections.
type Itinerary struct {
	ID              primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Title           string               `json:"title" bson:"title"`
	Destination     string               `json:"destination" bson:"destination"`
	NumberOfNights  int                  `json:"numberOfNights" bson:"numberOfNights"`
	TotalDays       int                  `json:"totalDays" bson:"totalDays"`
	Description     string               `json:"description,omitempty" bson:"description,omitempty"`
	Days            []primitive.ObjectID `json:"days" bson:"days"`
	Budget          *Budget              `json:"budget,omitempty" bson:"budget,omitempty"`
	BestTimeToVisit string               `json:"bestTimeToVisit,omitempty" bson:"bestTimeToVisit,omitempty"`
	Highlights      []string             `json:"highlights" bson:"highlights"`
	Tags            []string             `json:"tags" bson:"tags"`
	IsRecommended   bool                 `json:"isRecommended" bson:"isRecommended"`
	CreatedBy       string               `json:"createdBy" bson:"createdBy"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// TotalDaysFor is the derived-field rule: a trip of N nights spans N+1 days.
// It is applied on every persist, not only when numberOfNights changes.
func TotalDaysFor(numberOfNights int) int {
	return numberOfNights + 1
}

func ValidItineraryTag(t string) bool { return containsString(ItineraryTags, t) }
