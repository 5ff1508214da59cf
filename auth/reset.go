package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"voyago/db"
	"voyago/mailer"
	"voyago/models"
	"voyago/rdx"
	"voyago/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 30 * time.Minute

func generateResetToken() (string, error) {
	tokenBytes := make([]byte, 20)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

// hashToken makes the stored token useless if the cache leaks.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func resetKey(hashedToken string) string {
	return "pwreset:" + hashedToken
}

func forgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid input"})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Please provide an email"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user); err != nil {
		if utils.IsNoDocuments(err) {
			utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "User not found with this email"})
			return
		}
		log.Printf("Failed to look up user by email: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error processing forgot password"})
		return
	}

	resetToken, err := generateResetToken()
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error processing forgot password"})
		return
	}

	if err := rdx.SetWithExpiry(resetKey(hashToken(resetToken)), user.ID.Hex(), resetTokenTTL); err != nil {
		log.Printf("Failed to store reset token: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error processing forgot password"})
		return
	}

	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:5173"
	}
	resetURL := fmt.Sprintf("%s/reset-password/%s", frontend, resetToken)

	if err := mailer.SendPasswordResetEmail(user.Email, resetURL); err != nil {
		log.Printf("Failed to send reset email to %s: %v", user.Email, err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Failed to send email. Please try again later."})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Password reset link sent to your email"})
}

func resetPasswordHandler(w http.ResponseWriter, r *http.Request, resetToken string) {
	var input struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid input"})
		return
	}

	if input.Password == "" || input.ConfirmPassword == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Please provide password and confirm password"})
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

	key := resetKey(hashToken(resetToken))
	userHex, err := rdx.RdxGet(key)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid or expired reset token"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(userHex)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid or expired reset token"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error resetting password"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"password": string(hashedPassword), "updated_at": time.Now()}},
	); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error resetting password"})
		return
	}

	// The token is single use.
	if err := rdx.RdxDel(key); err != nil {
		log.Printf("Failed to delete reset token: %v", err)
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error resetting password"})
		return
	}

	token, err := generateToken(user)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Failed to generate token"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Password reset successful",
		"token":   token,
		"user":    user.Info(),
	})
}
