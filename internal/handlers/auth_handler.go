package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/newrban/cotizador-api/internal/auth"
)

// AuthHandler handles the admin login endpoint
type AuthHandler struct {
	sessions *auth.Manager
	log      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *auth.Manager, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		log:      log,
	}
}

// LoginRequest carries the operator's password attempt
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/admin/login
// A correct password unlocks catalog editing for this session
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode login request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	token, err := h.sessions.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			h.log.Warn("admin login rejected")
			WriteError(w, http.StatusUnauthorized, "Wrong password", h.log)
			return
		}

		h.log.Error("failed to create admin session", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("admin session unlocked")
	WriteJSON(w, http.StatusOK, LoginResponse{Token: token}, h.log)
}
