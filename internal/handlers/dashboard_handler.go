package handlers

import (
	"net/http"

	"messmate-admin/internal/client"
	"messmate-admin/internal/session"

	"github.com/rs/zerolog"
)

type DashboardHandler struct {
	apiClient *client.Client
	sessions  *session.Store
	logger    zerolog.Logger
}

func NewDashboardHandler(apiClient *client.Client, sessions *session.Store, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
	}
}

// GetStats fetches the meal counts and guest revenue aggregate. Nothing
// is cached gateway-side; every screen load hits the backend.
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.apiClient.GetDashboardStats(r.Context())
	if err != nil {
		respondClientError(w, h.sessions, h.logger, err, "stats_fetch_failed")
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
