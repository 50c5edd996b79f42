package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"messmate-admin/internal/client"
	"messmate-admin/internal/middleware"
	"messmate-admin/internal/session"

	"github.com/rs/zerolog"
)

// LoginPath is where clients are sent when the backend rejects the
// session.
const LoginPath = "/login"

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	respondWithJSON(w, code, map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
}

func expireSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// respondClientError maps backend call failures onto gateway
// responses. An AuthError tears the session down: the store is cleared,
// the session cookie is expired and the response carries the login
// redirect. This runs once per failing response, before anything else
// is written; Clear is idempotent, so overlapping rejections cannot
// tear the session down twice.
func respondClientError(w http.ResponseWriter, sessions *session.Store, logger zerolog.Logger, err error, errorCode string) {
	var authErr *client.AuthError
	if errors.As(err, &authErr) {
		sessions.Clear()
		expireSessionCookie(w)
		logger.Warn().Msg("Backend rejected session, forcing re-login")
		respondWithJSON(w, http.StatusUnauthorized, map[string]string{
			"error":    "session_expired",
			"message":  "Your session has expired. Please sign in again.",
			"redirect": LoginPath,
		})
		return
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		respondWithError(w, apiErr.Status, errorCode, apiErr.Message)
		return
	}

	logger.Error().Err(err).Msg("Backend call failed")
	respondWithError(w, http.StatusBadGateway, "backend_unavailable", "The mess service is unreachable. Please try again.")
}
