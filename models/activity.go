package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity categories form a closed set; anything else is rejected at the
// validation boundary.
const DefaultActivityCategory = "sightseeing"

var ActivityCategories = []string{"sightseeing", "adventure", "cultural", "relaxation", "dining", "shopping"}

const DefaultActivityDuration = "2-3 hours"

// Activity is a single bookable event within a day.
type Activity struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Time        string             `json:"time" bson:"time"`
	Location    string             `json:"location" bson:"location"`
	Category    string             `json:"category" bson:"category"`
	Duration    string             `json:"duration" bson:"duration"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func ValidActivityCategory(c string) bool {
	for _, v := range ActivityCategories {
		if v == c {
			return true
		}
	}
	return false
}
