package routes

import (
	"voyago/auth"
	"voyago/itineraries"
	"voyago/middleware"
	"voyago/ratelim"
	"voyago/recommendations"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/signup", rl.Limit(auth.Signup))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/forgot-password", rl.Limit(auth.ForgotPassword))
	router.POST("/api/auth/reset-password/:resetToken", rl.Limit(auth.ResetPassword))
	router.GET("/api/auth/me", middleware.Authenticate(auth.Me))
}

func AddItineraryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/itineraries", itineraries.GetItineraries)
	router.GET("/api/itineraries/:id", itineraries.GetItinerary)
	router.GET("/api/itineraries/:id/print", itineraries.PrintItinerary)
	router.POST("/api/itineraries", rl.Limit(middleware.OptionalAuth(itineraries.CreateItinerary)))
	router.PUT("/api/itineraries/:id", rl.Limit(middleware.OptionalAuth(itineraries.UpdateItinerary)))
	router.DELETE("/api/itineraries/:id", rl.Limit(middleware.OptionalAuth(itineraries.DeleteItinerary)))
}

func AddRecommendationRoutes(router *httprouter.Router) {
	router.GET("/api/recommendations", recommendations.GetRecommendations)
	router.GET("/api/recommendations/destinations", recommendations.GetDestinations)
	router.GET("/api/recommendations/similar/:id", recommendations.GetSimilarItineraries)
}
