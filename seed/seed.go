package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"voyago/db"
	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type seedActivity struct {
	Name        string
	Description string
	Time        string
	Location    string
	Category    string
	Duration    string
}

type seedDay struct {
	DayNumber int
	Hotel     models.Hotel
	Acts      []seedActivity
}

type seedItinerary struct {
	Title           string
	Destination     string
	NumberOfNights  int
	Description     string
	Budget          *models.Budget
	BestTimeToVisit string
	Highlights      []string
	Tags            []string
	Days            []seedDay
}

// Run wipes the trip collections and recreates the starter set of
// recommended itineraries, inserting bottom-up the same way the create
// endpoint does.
func Run(ctx context.Context) error {
	if _, err := db.ActivityCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clearing activities: %w", err)
	}
	if _, err := db.DayCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clearing days: %w", err)
	}
	if _, err := db.ItineraryCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clearing itineraries: %w", err)
	}

	for _, it := range starterItineraries() {
		log.Printf("Creating itinerary: %s", it.Title)
		if err := insertItinerary(ctx, it); err != nil {
			return fmt.Errorf("creating %q: %w", it.Title, err)
		}
	}

	return nil
}

func insertItinerary(ctx context.Context, it seedItinerary) error {
	now := time.Now()
	dayIDs := make([]primitive.ObjectID, 0, len(it.Days))

	for _, d := range it.Days {
		activityIDs := make([]primitive.ObjectID, 0, len(d.Acts))
		for _, a := range d.Acts {
			res, err := db.ActivityCollection.InsertOne(ctx, models.Activity{
				Name:        a.Name,
				Description: a.Description,
				Time:        a.Time,
				Location:    a.Location,
				Category:    a.Category,
				Duration:    a.Duration,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return err
			}
			activityIDs = append(activityIDs, res.InsertedID.(primitive.ObjectID))
		}

		res, err := db.DayCollection.InsertOne(ctx, models.Day{
			DayNumber:  d.DayNumber,
			Hotel:      d.Hotel,
			Transfers:  []models.Transfer{},
			Activities: activityIDs,
			Meals:      []models.Meal{},
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return err
		}
		dayIDs = append(dayIDs, res.InsertedID.(primitive.ObjectID))
	}

	_, err := db.ItineraryCollection.InsertOne(ctx, models.Itinerary{
		Title:           it.Title,
		Destination:     it.Destination,
		NumberOfNights:  it.NumberOfNights,
		TotalDays:       models.TotalDaysFor(it.NumberOfNights),
		Description:     it.Description,
		Days:            dayIDs,
		Budget:          it.Budget,
		BestTimeToVisit: it.BestTimeToVisit,
		Highlights:      it.Highlights,
		Tags:            it.Tags,
		IsRecommended:   true,
		CreatedBy:       "System",
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	return err
}

func starterItineraries() []seedItinerary {
	return []seedItinerary{
		{
			Title:           "Phuket Beach Paradise - 3 Days",
			Destination:     "Phuket, Thailand",
			NumberOfNights:  3,
			Description:     "Perfect introduction to Phuket's stunning beaches, vibrant nightlife, and delicious Thai cuisine. Ideal for first-time visitors looking for a mix of relaxation and adventure.",
			Budget:          &models.Budget{Min: 800, Max: 1200, Currency: "USD"},
			BestTimeToVisit: "November - March",
			Highlights: []string{
				"Sunset at Promthep Cape",
				"Island hopping to Phi Phi Islands",
				"Traditional Thai massage at the beach",
				"Fresh seafood at Patong Beach",
				"Cultural visit to Big Buddha",
			},
			Tags: []string{"beach", "cultural", "family", "budget"},
			Days: []seedDay{
				{
					DayNumber: 1,
					Hotel:     models.Hotel{Name: "Patong Beach Resort", Location: "Patong Beach, Phuket", Rating: 4, CheckIn: "3:00 PM", CheckOut: "12:00 PM"},
					Acts: []seedActivity{
						{"Airport Transfer & Hotel Check-in", "Comfortable transfer from Phuket International Airport to your beachfront resort. Get settled and enjoy welcome drinks.", "2:00 PM", "Patong Beach Resort", "relaxation", "2 hours"},
						{"Patong Beach Exploration", "Take your first steps on the famous Patong Beach. Enjoy swimming, sunbathing, and beachside refreshments.", "4:00 PM", "Patong Beach", "relaxation", "3 hours"},
						{"Bangla Road Night Market", "Experience Phuket's vibrant nightlife and street food scene. Try local delicacies and shop for souvenirs.", "7:00 PM", "Bangla Road, Patong", "cultural", "3 hours"},
					},
				},
				{
					DayNumber: 2,
					Hotel:     models.Hotel{Name: "Patong Beach Resort", Location: "Patong Beach, Phuket", Rating: 4},
					Acts: []seedActivity{
						{"Phi Phi Islands Day Trip", "Full-day speedboat tour to the famous Phi Phi Islands. Visit Maya Bay, snorkel in crystal-clear waters, and enjoy a beachside lunch.", "8:00 AM", "Phi Phi Islands", "adventure", "8 hours"},
						{"Traditional Thai Dinner", "Authentic Thai cuisine at a local restaurant with cultural performances and traditional music.", "7:00 PM", "Old Phuket Town", "dining", "2 hours"},
					},
				},
				{
					DayNumber: 3,
					Hotel:     models.Hotel{Name: "Patong Beach Resort", Location: "Patong Beach, Phuket", Rating: 4},
					Acts: []seedActivity{
						{"Big Buddha Temple Visit", "Visit the iconic 45-meter tall Big Buddha statue and enjoy panoramic views of Phuket. Learn about Buddhist culture and traditions.", "9:00 AM", "Big Buddha Temple, Chalong", "cultural", "2 hours"},
						{"Promthep Cape Sunset", "Watch the spectacular sunset from Phuket's most famous viewpoint. Perfect photo opportunities and romantic atmosphere.", "5:30 PM", "Promthep Cape", "sightseeing", "2 hours"},
						{"Farewell Beach Dinner", "Final dinner on the beach with fresh seafood and tropical cocktails as you reflect on your Phuket adventure.", "7:30 PM", "Kata Beach", "dining", "2 hours"},
					},
				},
				{
					DayNumber: 4,
					Hotel:     models.Hotel{Name: "Patong Beach Resort", Location: "Patong Beach, Phuket", Rating: 4},
					Acts: []seedActivity{
						{"Departure Transfer", "Check out and transfer to Phuket International Airport for your departure flight.", "10:00 AM", "Phuket International Airport", "relaxation", "2 hours"},
					},
				},
			},
		},
		{
			Title:           "Luxury Phuket Escape - 5 Days",
			Destination:     "Phuket, Thailand",
			NumberOfNights:  5,
			Description:     "Indulge in the ultimate luxury experience with premium resorts, private tours, spa treatments, and exclusive dining. Perfect for couples and luxury travelers.",
			Budget:          &models.Budget{Min: 2500, Max: 4000, Currency: "USD"},
			BestTimeToVisit: "November - April",
			Highlights: []string{
				"Private yacht charter to secluded islands",
				"Michelin-starred dining experiences",
				"Luxury spa treatments with ocean views",
				"Private beach access and butler service",
				"Helicopter tour over Phang Nga Bay",
			},
			Tags: []string{"luxury", "romantic", "beach", "adventure"},
			Days: []seedDay{
				{
					DayNumber: 1,
					Hotel:     models.Hotel{Name: "The Nai Harn Phuket", Location: "Nai Harn Beach, Phuket", Rating: 5, CheckIn: "3:00 PM", CheckOut: "12:00 PM"},
					Acts: []seedActivity{
						{"VIP Airport Transfer", "Luxury limousine transfer with champagne service from airport to your 5-star resort overlooking Nai Harn Beach.", "2:00 PM", "The Nai Harn Phuket", "relaxation", "1.5 hours"},
						{"Sunset Cocktails at Rock Bar", "Exclusive cocktails at the resort's cliff-top bar with panoramic ocean views and gourmet canapés.", "6:00 PM", "The Nai Harn Resort", "dining", "2 hours"},
					},
				},
				{
					DayNumber: 2,
					Hotel:     models.Hotel{Name: "The Nai Harn Phuket", Location: "Nai Harn Beach, Phuket", Rating: 5},
					Acts: []seedActivity{
						{"Private Yacht Charter", "Full-day private yacht charter to Phi Phi Islands with personal chef, snorkeling equipment, and premium beverages.", "9:00 AM", "Phi Phi Islands", "adventure", "8 hours"},
						{"Beachside Fine Dining", "Private dinner on the beach with personal chef preparing fresh seafood and Thai delicacies under the stars.", "7:30 PM", "Nai Harn Beach", "dining", "2.5 hours"},
					},
				},
				{
					DayNumber: 3,
					Hotel:     models.Hotel{Name: "The Nai Harn Phuket", Location: "Nai Harn Beach, Phuket", Rating: 5},
					Acts: []seedActivity{
						{"Luxury Spa Experience", "Full-day spa package including traditional Thai massage, aromatherapy, and wellness treatments in oceanview pavilions.", "10:00 AM", "The Nai Harn Spa", "relaxation", "6 hours"},
						{"Michelin Star Dining", "Exclusive dinner at PRU restaurant, featuring innovative Thai cuisine with locally sourced ingredients.", "7:00 PM", "PRU Restaurant, Trisara", "dining", "3 hours"},
					},
				},
				{
					DayNumber: 4,
					Hotel:     models.Hotel{Name: "The Nai Harn Phuket", Location: "Nai Harn Beach, Phuket", Rating: 5},
					Acts: []seedActivity{
						{"Helicopter Tour", "Private helicopter tour over Phang Nga Bay, James Bond Island, and Phuket's coastline with champagne service.", "10:00 AM", "Phang Nga Bay", "adventure", "3 hours"},
						{"Private Cooking Class", "Learn to prepare authentic Thai dishes with a renowned chef in a private kitchen setting with market tour.", "3:00 PM", "The Nai Harn Resort", "cultural", "4 hours"},
					},
				},
				{
					DayNumber: 5,
					Hotel:     models.Hotel{Name: "The Nai Harn Phuket", Location: "Nai Harn Beach, Phuket", Rating: 5},
					Acts: []seedActivity{
						{"Private Island Picnic", "Exclusive day trip to a private island with gourmet picnic, water sports, and personal butler service.", "9:00 AM", "Private Island near Phuket", "adventure", "7 hours"},
						{"Farewell Sunset Cruise", "Romantic sunset cruise on a luxury catamaran with premium wines and gourmet dinner as your final Phuket experience.", "5:00 PM", "Andaman Sea", "relaxation", "4 hours"},
					},
				},
				{
					DayNumber: 6,
					Hotel:     models.Hotel{Name: "The Nai Harn Phuket", Location: "Nai Harn Beach, Phuket", Rating: 5},
					Acts: []seedActivity{
						{"VIP Departure", "Luxury transfer to airport with express check-in service and lounge access.", "11:00 AM", "Phuket International Airport", "relaxation", "2 hours"},
					},
				},
			},
		},
		{
			Title:           "Krabi Island Hopping - 4 Days",
			Destination:     "Krabi, Thailand",
			NumberOfNights:  4,
			Description:     "Discover the stunning limestone karsts and pristine beaches of Krabi through island hopping adventures, snorkeling, and beach relaxation.",
			Budget:          &models.Budget{Min: 900, Max: 1400, Currency: "USD"},
			BestTimeToVisit: "November - March",
			Highlights: []string{
				"Four Islands Tour by longtail boat",
				"Emerald Pool and Hot Springs visit",
				"Railay Beach rock climbing",
				"Sunset at Ao Nang Beach",
				"Traditional longtail boat experience",
			},
			Tags: []string{"beach", "adventure", "family", "budget"},
			Days: []seedDay{
				{
					DayNumber: 1,
					Hotel:     models.Hotel{Name: "Ao Nang Beach Resort", Location: "Ao Nang, Krabi", Rating: 4, CheckIn: "3:00 PM", CheckOut: "12:00 PM"},
					Acts: []seedActivity{
						{"Airport Transfer & Check-in", "Transfer from Krabi Airport to your beachfront resort in Ao Nang. Welcome drinks and resort orientation.", "2:00 PM", "Ao Nang Beach Resort", "relaxation", "2 hours"},
						{"Ao Nang Beach Walk", "Explore the main beach of Ao Nang, enjoy swimming and get familiar with the local area and restaurants.", "4:30 PM", "Ao Nang Beach", "relaxation", "2 hours"},
						{"Sunset Dinner", "Beachfront dinner watching the spectacular Krabi sunset with fresh seafood and Thai specialties.", "6:30 PM", "Ao Nang Beachfront", "dining", "2 hours"},
					},
				},
				{
					DayNumber: 2,
					Hotel:     models.Hotel{Name: "Ao Nang Beach Resort", Location: "Ao Nang, Krabi", Rating: 4},
					Acts: []seedActivity{
						{"Four Islands Tour", "Full-day longtail boat tour visiting Phra Nang Cave Beach, Chicken Island, Tup Island, and Poda Island with snorkeling and lunch.", "8:30 AM", "Four Islands, Krabi", "adventure", "8 hours"},
						{"Night Market Exploration", "Visit Ao Nang night market for local street food, souvenirs, and cultural experiences.", "7:00 PM", "Ao Nang Night Market", "cultural", "2 hours"},
					},
				},
				{
					DayNumber: 3,
					Hotel:     models.Hotel{Name: "Ao Nang Beach Resort", Location: "Ao Nang, Krabi", Rating: 4},
					Acts: []seedActivity{
						{"Emerald Pool & Hot Springs", "Visit the famous Emerald Pool for swimming in crystal-clear natural pools, followed by relaxing hot springs.", "9:00 AM", "Thung Teao Forest Natural Park", "relaxation", "4 hours"},
						{"Tiger Cave Temple", "Climb 1,237 steps to reach the summit of Tiger Cave Temple for panoramic views of Krabi province.", "2:00 PM", "Tiger Cave Temple", "cultural", "3 hours"},
						{"Traditional Thai Massage", "Unwind with a traditional Thai massage after your temple climb and nature exploration.", "6:00 PM", "Ao Nang Spa", "relaxation", "1.5 hours"},
					},
				},
				{
					DayNumber: 4,
					Hotel:     models.Hotel{Name: "Ao Nang Beach Resort", Location: "Ao Nang, Krabi", Rating: 4},
					Acts: []seedActivity{
						{"Railay Beach Adventure", "Take a longtail boat to Railay Beach for rock climbing, cave exploration, and beach relaxation at one of Thailand's most beautiful beaches.", "9:00 AM", "Railay Beach", "adventure", "6 hours"},
						{"Farewell Seafood Dinner", "Final dinner featuring the best of Krabi's seafood with ocean views and traditional Thai entertainment.", "6:30 PM", "Ao Nang Beachfront Restaurant", "dining", "2.5 hours"},
					},
				},
				{
					DayNumber: 5,
					Hotel:     models.Hotel{Name: "Ao Nang Beach Resort", Location: "Ao Nang, Krabi", Rating: 4},
					Acts: []seedActivity{
						{"Departure Transfer", "Check out and transfer to Krabi Airport for your departure flight.", "10:00 AM", "Krabi Airport", "relaxation", "1.5 hours"},
					},
				},
			},
		},
		{
			Title:           "Romantic Krabi Honeymoon - 6 Days",
			Destination:     "Krabi, Thailand",
			NumberOfNights:  6,
			Description:     "Perfect romantic getaway with private beach dinners, couples spa treatments, sunset cruises, and intimate experiences in Krabi's most beautiful locations.",
			Budget:          &models.Budget{Min: 2000, Max: 3200, Currency: "USD"},
			BestTimeToVisit: "November - April",
			Highlights: []string{
				"Private beach dinner under the stars",
				"Couples spa treatments with ocean views",
				"Sunset cruise to Hong Islands",
				"Private longtail boat tours",
				"Romantic cave dining experience",
			},
			Tags: []string{"romantic", "luxury", "beach", "cultural"},
			Days: []seedDay{
				{
					DayNumber: 1,
					Hotel:     models.Hotel{Name: "Rayavadee Resort", Location: "Railay Beach, Krabi", Rating: 5, CheckIn: "3:00 PM", CheckOut: "12:00 PM"},
					Acts: []seedActivity{
						{"VIP Transfer & Welcome", "Private transfer from Krabi Airport to exclusive Rayavadee Resort with champagne welcome and flower petals.", "2:00 PM", "Rayavadee Resort, Railay", "relaxation", "2 hours"},
						{"Couples Sunset Cocktails", "Private cocktails on your villa terrace overlooking the limestone cliffs and Andaman Sea.", "6:00 PM", "Private Villa Terrace", "relaxation", "2 hours"},
					},
				},
				{
					DayNumber: 2,
					Hotel:     models.Hotel{Name: "Rayavadee Resort", Location: "Railay Beach, Krabi", Rating: 5},
					Acts: []seedActivity{
						{"Private Island Picnic", "Exclusive day trip to a secluded island with private chef, gourmet picnic, and water activities just for two.", "9:00 AM", "Private Island near Krabi", "relaxation", "7 hours"},
						{"Beachside Candlelit Dinner", "Romantic dinner on the beach with personal chef, candlelit table, and traditional Thai music.", "7:30 PM", "Railay Beach", "dining", "3 hours"},
					},
				},
				{
					DayNumber: 3,
					Hotel:     models.Hotel{Name: "Rayavadee Resort", Location: "Railay Beach, Krabi", Rating: 5},
					Acts: []seedActivity{
						{"Couples Spa Day", "Full-day spa experience with couples massage, aromatherapy, and wellness treatments in a private pavilion.", "10:00 AM", "Rayavadee Spa", "relaxation", "5 hours"},
						{"Sunset Cruise to Hong Islands", "Private longtail boat cruise to Hong Islands with champagne, canapés, and spectacular sunset views.", "4:00 PM", "Hong Islands", "sightseeing", "4 hours"},
					},
				},
				{
					DayNumber: 4,
					Hotel:     models.Hotel{Name: "Rayavadee Resort", Location: "Railay Beach, Krabi", Rating: 5},
					Acts: []seedActivity{
						{"Private Cooking Class", "Learn to prepare Thai cuisine together with a private chef in a romantic outdoor kitchen setting.", "10:00 AM", "Rayavadee Resort", "cultural", "3 hours"},
						{"Cave Dining Experience", "Unique dinner experience in a limestone cave with gourmet cuisine and ambient lighting.", "6:00 PM", "Phra Nang Cave", "dining", "3 hours"},
					},
				},
				{
					DayNumber: 5,
					Hotel:     models.Hotel{Name: "Rayavadee Resort", Location: "Railay Beach, Krabi", Rating: 5},
					Acts: []seedActivity{
						{"Private Beach Day", "Exclusive access to a private section of beach with personal butler service, water sports, and gourmet lunch.", "9:00 AM", "Private Beach, Railay", "relaxation", "6 hours"},
						{"Stargazing Experience", "Romantic evening of stargazing with telescope, astronomy guide, and midnight champagne service.", "8:00 PM", "Resort Observatory Deck", "sightseeing", "3 hours"},
					},
				},
				{
					DayNumber: 6,
					Hotel:     models.Hotel{Name: "Rayavadee Resort", Location: "Railay Beach, Krabi", Rating: 5},
					Acts: []seedActivity{
						{"Sunrise Yoga for Couples", "Private yoga session on the beach at sunrise, followed by healthy breakfast and fresh fruit juices.", "6:00 AM", "Railay Beach", "relaxation", "2.5 hours"},
						{"Farewell Dinner Cruise", "Final romantic dinner aboard a luxury yacht with live music and panoramic views of Krabi's coastline.", "5:00 PM", "Luxury Yacht, Andaman Sea", "dining", "4 hours"},
					},
				},
				{
					DayNumber: 7,
					Hotel:     models.Hotel{Name: "Rayavadee Resort", Location: "Railay Beach, Krabi", Rating: 5},
					Acts: []seedActivity{
						{"VIP Departure", "Private transfer to Krabi Airport with express check-in and lounge access for your departure.", "11:00 AM", "Krabi Airport", "relaxation", "2 hours"},
					},
				},
			},
		},
	}
}
