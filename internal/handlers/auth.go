package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Dhruv435/slugma-admin/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Store    *store.Store
	JWTKey   []byte
	TokenTTL time.Duration
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a signed token. The token must be
// attached as a Bearer credential to every admin-scoped request; absence or
// expiry yields a 401 that forces re-login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := h.Store.GetAdminByUsername(req.Username)
	if err != nil {
		slog.Error("Failed to look up admin", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if admin == nil {
		respondError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(h.TokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.JWTKey)
	if err != nil {
		slog.Error("Failed to sign token", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	slog.Info("Admin login successful", "admin_id", admin.ID)
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// RequireAuth gates admin-scoped routes on a valid Bearer token.
func (h *AuthHandler) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			respondError(w, http.StatusUnauthorized, "Authentication required. Please log in.")
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return h.JWTKey, nil
		})
		if err != nil || !token.Valid {
			respondError(w, http.StatusUnauthorized, "Session expired. Please log in again.")
			return
		}

		next(w, r)
	}
}
