package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voyago/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signedToken(t *testing.T, userID string) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestValidateJWT(t *testing.T) {
	claims, err := ValidateJWT("Bearer " + signedToken(t, "user-1"))
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user-1, got %q", claims.UserID)
	}

	bad := []string{
		"",
		"Bearer ",
		"Bearer not-a-token",
		signedToken(t, "user-1"), // missing scheme
	}
	for _, header := range bad {
		if _, err := ValidateJWT(header); err == nil {
			t.Errorf("expected %q to be rejected", header)
		}
	}
}

func TestAuthenticateRejectsMissingOrBadToken(t *testing.T) {
	for _, header := range []string{"", "Bearer garbage"} {
		called := false
		h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			called = true
		})

		r := httptest.NewRequest("GET", "/api/auth/me", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		h(w, r, nil)

		if called || w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401 without handler call, got code=%d called=%v", header, w.Code, called)
		}
	}
}

func TestAuthenticateStoresUserID(t *testing.T) {
	var got any
	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		got = r.Context().Value(globals.UserIDKey)
	})

	r := httptest.NewRequest("GET", "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, "user-7"))
	h(httptest.NewRecorder(), r, nil)

	if got != "user-7" {
		t.Fatalf("expected user-7 in context, got %v", got)
	}
}

func TestOptionalAuthPassesThroughWithoutToken(t *testing.T) {
	called := false
	var got any
	h := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		got = r.Context().Value(globals.UserIDKey)
	})

	h(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/itineraries", nil), nil)

	if !called {
		t.Fatal("expected handler to be called")
	}
	if got != nil {
		t.Fatalf("expected no user in context, got %v", got)
	}
}

func TestOptionalAuthAttachesUserID(t *testing.T) {
	var got any
	h := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		got = r.Context().Value(globals.UserIDKey)
	})

	r := httptest.NewRequest("POST", "/api/itineraries", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, "user-9"))
	h(httptest.NewRecorder(), r, nil)

	if got != "user-9" {
		t.Fatalf("expected user-9 in context, got %v", got)
	}
}
