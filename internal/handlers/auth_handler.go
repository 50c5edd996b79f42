package handlers

import (
	"encoding/json"
	"net/http"

	"messmate-admin/internal/client"
	"messmate-admin/internal/models"
	"messmate-admin/internal/services"
	"messmate-admin/internal/session"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	apiClient *client.Client
	sessions  *session.Store
	auth      *services.AuthService
	logger    zerolog.Logger
}

func NewAuthHandler(apiClient *client.Client, sessions *session.Store, auth *services.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		apiClient: apiClient,
		sessions:  sessions,
		auth:      auth,
		logger:    logger,
	}
}

// Login authenticates against the backend, persists the backend token
// and user into the session store, and hands the browser a gateway
// session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Email and password are required")
		return
	}

	resp, err := h.apiClient.Login(r.Context(), req)
	if err != nil {
		h.logger.Warn().Str("email", req.Email).Msg("Login failed")
		respondClientError(w, h.sessions, h.logger, err, "authentication_failed")
		return
	}

	if err := h.sessions.Save(resp.Token, resp.User); err != nil {
		h.logger.Error().Err(err).Msg("Failed to persist session")
		respondWithError(w, http.StatusInternalServerError, "session_error", "Failed to persist session")
		return
	}

	role := string(models.RoleAdmin)
	if resp.User != nil && resp.User.Role != "" {
		role = resp.User.Role
	}
	gatewayToken, err := h.auth.GenerateToken(req.Email, role)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "token_generation_failed", "Failed to generate session token")
		return
	}
	setSessionCookie(w, gatewayToken)

	h.logger.Info().Str("email", req.Email).Msg("Admin logged in")
	respondWithJSON(w, http.StatusOK, models.AuthResponse{
		Token: gatewayToken,
		User:  resp.User,
	})
}

// Logout is local only: it clears the persisted session and expires
// the gateway cookie without calling the backend.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear()
	expireSessionCookie(w)

	h.logger.Info().Msg("Admin logged out")
	respondWithJSON(w, http.StatusOK, models.MessageResponse{Message: "Logged out"})
}

// Session reports the current session for the app shell's startup
// check: whether a backend token is held and, when known, the user.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": h.sessions.Authenticated(),
		"user":          h.sessions.User(),
	})
}
