package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"ArtLens/core/auth"
	"ArtLens/logger"
	"ArtLens/model"
)

type contextKey string

const (
	contextKeyUserID   contextKey = "userID"
	contextKeyUsername contextKey = "username"
)

// RegisterRequest is the registration request body.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// RegisterHandler creates a user account and returns a session token.
func (h *APIHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "Check the request format and try again")
		return
	}

	if req.Username == "" || req.Password == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "Username, email and password are required", "Fill in the missing fields")
		return
	}

	existing, err := h.userRepo.GetUserByUsername(req.Username)
	if err != nil {
		logger.Error("register: user lookup failed", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error", "Try again shortly")
		return
	}
	if existing != nil {
		respondError(w, http.StatusConflict, "Username already taken", "Pick a different username")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("register: hash failed", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error", "Try again shortly")
		return
	}

	user := &model.User{Username: req.Username, Email: req.Email, PasswordHash: hash}
	id, err := h.userRepo.CreateUser(user)
	if err != nil {
		logger.Error("register: create failed", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error", "Try again shortly")
		return
	}
	user.ID = id

	token, err := auth.GenerateToken(id, user.Username)
	if err != nil {
		logger.Error("register: token failed", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error", "Try again shortly")
		return
	}

	logger.Info("user registered", logger.String("username", user.Username))
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// LoginRequest is the login request body; username may be a username or an
// email address.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler authenticates a user and returns a session token.
func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "Check the request format and try again")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username/email and password are required", "Fill in the missing fields")
		return
	}

	var user *model.User
	var err error
	if strings.Contains(req.Username, "@") {
		user, err = h.userRepo.GetUserByEmail(req.Username)
	} else {
		user, err = h.userRepo.GetUserByUsername(req.Username)
	}
	if err != nil {
		logger.Error("login: user lookup failed", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error", "Try again shortly")
		return
	}

	if user == nil || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("login: invalid credentials", logger.String("username", req.Username))
		respondError(w, http.StatusUnauthorized, "Invalid username/email or password", "Check your credentials and try again")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		logger.Error("login: token failed", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error", "Try again shortly")
		return
	}

	logger.Info("user logged in", logger.String("username", user.Username))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// AuthMiddleware checks for a valid JWT bearer token and adds the user to
// the request context.
func (h *APIHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := bearerClaims(r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "Invalid or missing token", "Log in and retry with a valid token")
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, contextKeyUsername, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// OptionalAuth attaches user context when a valid token is present but lets
// anonymous requests through. Used where auth only enables extras (view
// tracking).
func (h *APIHandler) OptionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := bearerClaims(r); ok {
			ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
			ctx = context.WithValue(ctx, contextKeyUsername, claims.Username)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	}
}

func bearerClaims(r *http.Request) (*auth.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}
	claims, err := auth.ParseToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// GetUserIDFromContext extracts the authenticated user ID.
func GetUserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(contextKeyUserID).(int64)
	if !ok {
		return 0, fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}
