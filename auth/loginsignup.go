package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"voyago/db"
	"voyago/globals"
	"voyago/mailer"
	"voyago/middleware"
	"voyago/models"
	"voyago/rdx"
	"voyago/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// sessions is the Redis hash caching the active token per user.
const sessionHash = "sessions"

func generateToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Name:   user.Name,
		Email:  user.Email,
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        utils.GetUUID(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func signupHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid input"})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Name == "" || input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Please provide all required fields"})
		return
	}
	if input.Password != input.ConfirmPassword {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Passwords do not match"})
		return
	}
	if len(input.Password) < 6 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Password must be at least 6 characters"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Err()
	if err == nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Email already registered"})
		return
	} else if err != mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error creating account"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error creating account"})
		return
	}

	now := time.Now()
	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hashedPassword),
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := db.UserCollection.InsertOne(ctx, user)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error creating account"})
		return
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	token, err := generateToken(user)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Failed to generate token"})
		return
	}

	if err := rdx.RdxHset(sessionHash, user.ID.Hex(), token); err != nil {
		log.Printf("Failed to cache session token: %v", err)
	}

	if err := mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", user.Email, err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "Account created successfully",
		"token":   token,
		"user":    user.Info(),
	})
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid input"})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Email == "" || input.Password == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Please provide email and password"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user); err != nil {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := generateToken(user)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Failed to generate token"})
		return
	}

	if err := rdx.RdxHset(sessionHash, user.ID.Hex(), token); err != nil {
		log.Printf("Failed to cache session token: %v", err)
	}

	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"last_login": time.Now()}}); err != nil {
		log.Printf("Failed to record last login for %s: %v", user.ID.Hex(), err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user.Info(),
	})
}

func logoutHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "message": "Unauthorized"})
		return
	}

	if _, err := rdx.RdxHdel(sessionHash, userID); err != nil {
		log.Printf("Failed to remove session token for %s: %v", userID, err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Logged out successfully"})
}

func meHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "message": "Unauthorized"})
		return
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "message": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error fetching user"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "user": user.Info()})
}
