package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	TransferTypes = []string{"airport", "hotel", "activity", "restaurant"}
	TransferModes = []string{"car", "bus", "boat", "flight", "walking"}
	MealTypes     = []string{"breakfast", "lunch", "dinner", "snack"}
)

const (
	DefaultTransferMode = "car"
	DefaultHotelRating  = 4
)

type Hotel struct {
	Name     string `json:"name" bson:"name"`
	Location string `json:"location" bson:"location"`
	Rating   int    `json:"rating" bson:"rating"`
	CheckIn  string `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty" bson:"checkOut,omitempty"`
}

type Transfer struct {
	Type string `json:"type" bson:"type"`
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
	Time string `json:"time,omitempty" bson:"time,omitempty"`
	Mode string `json:"mode" bson:"mode"`
}

type Meal struct {
	Type       string `json:"type" bson:"type"`
	Restaurant string `json:"restaurant,omitempty" bson:"restaurant,omitempty"`
	Location   string `json:"location,omitempty" bson:"location,omitempty"`
	Time       string `json:"time,omitempty" bson:"time,omitempty"`
}

// Day is one calendar day of a trip. Activities holds references only; the
// referenced documents live in their own collection.
type Day struct {
	ID         primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	DayNumber  int                  `json:"dayNumber" bson:"dayNumber"`
	Hotel      Hotel                `json:"hotel" bson:"hotel"`
	Transfers  []Transfer           `json:"transfers" bson:"transfers"`
	Activities []primitive.ObjectID `json:"activities" bson:"activities"`
	Meals      []Meal               `json:"meals" bson:"meals"`
	CreatedAt  time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt" bson:"updatedAt"`
}

func ValidTransferType(t string) bool { return containsString(TransferTypes, t) }
func ValidTransferMode(m string) bool { return containsString(TransferModes, m) }
func ValidMealType(t string) bool     { return containsString(MealTypes, t) }

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
