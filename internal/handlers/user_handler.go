package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"messmate-admin/internal/client"
	"messmate-admin/internal/models"
	"messmate-admin/internal/session"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	apiClient *client.Client
	sessions  *session.Store
	logger    zerolog.Logger
}

func NewUserHandler(apiClient *client.Client, sessions *session.Store, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
	}
}

// List merges the backend's role groups into one list for the
// management screen. Supports ?role=all|student|guest|admin and
// ?search= over id, name and email.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.apiClient.GetAllUsers(r.Context())
	if err != nil {
		respondClientError(w, h.sessions, h.logger, err, "users_fetch_failed")
		return
	}

	merged := groups.Merge()
	roleFilter := r.URL.Query().Get("role")
	search := strings.ToLower(r.URL.Query().Get("search"))

	users := make([]models.User, 0, len(merged))
	for _, u := range merged {
		if !u.MatchesFilter(roleFilter) {
			continue
		}
		if search != "" && !matchesSearch(u, search) {
			continue
		}
		users = append(users, u)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"total": len(users),
	})
}

func matchesSearch(u models.User, term string) bool {
	return strings.Contains(strconv.Itoa(u.ID), term) ||
		strings.Contains(strings.ToLower(u.Name), term) ||
		strings.Contains(strings.ToLower(u.Email), term)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_user_id", "Invalid user ID")
		return
	}

	user, err := h.apiClient.GetUserByID(r.Context(), id)
	if err != nil {
		respondClientError(w, h.sessions, h.logger, err, "user_not_found")
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_user_id", "Invalid user ID")
		return
	}

	resp, err := h.apiClient.DeleteUserByID(r.Context(), id)
	if err != nil {
		respondClientError(w, h.sessions, h.logger, err, "user_delete_failed")
		return
	}

	h.logger.Info().Int("user_id", id).Msg("User deleted")
	respondWithJSON(w, http.StatusOK, resp)
}
