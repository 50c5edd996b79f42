package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"messmate-admin/internal/client"
	"messmate-admin/internal/models"
	"messmate-admin/internal/session"

	"github.com/rs/zerolog"
)

type RechargeHandler struct {
	apiClient *client.Client
	sessions  *session.Store
	logger    zerolog.Logger
}

func NewRechargeHandler(apiClient *client.Client, sessions *session.Store, logger zerolog.Logger) *RechargeHandler {
	return &RechargeHandler{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
	}
}

// Recharge credits a guest wallet and returns the new balance.
func (h *RechargeHandler) Recharge(w http.ResponseWriter, r *http.Request) {
	var req models.RechargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	if req.GuestID <= 0 {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Please provide a valid Guest ID")
		return
	}

	resp, err := h.apiClient.RechargeGuest(r.Context(), req)
	if err != nil {
		if errors.Is(err, client.ErrInvalidAmount) {
			respondWithError(w, http.StatusBadRequest, "invalid_amount", "Amount must be a positive number")
			return
		}
		respondClientError(w, h.sessions, h.logger, err, "recharge_failed")
		return
	}

	h.logger.Info().
		Int("guest_id", req.GuestID).
		Float64("amount", req.Amount).
		Float64("new_balance", resp.NewBalance).
		Msg("Guest wallet recharged")

	respondWithJSON(w, http.StatusOK, resp)
}
