package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"messmate-admin/internal/client"
	"messmate-admin/internal/models"
	"messmate-admin/internal/session"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type MenuHandler struct {
	apiClient *client.Client
	sessions  *session.Store
	logger    zerolog.Logger
}

func NewMenuHandler(apiClient *client.Client, sessions *session.Store, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
	}
}

func (h *MenuHandler) validateInput(w http.ResponseWriter, input models.MenuItemInput) bool {
	if input.Name == "" {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Item name is required")
		return false
	}
	if input.EstimatedPrepTime < 0 || input.MonthlyLimit < 0 || input.ExtraPrice < 0 {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Prep time, monthly limit and extra price must not be negative")
		return false
	}
	return true
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if !h.validateInput(w, input) {
		return
	}

	item, err := h.apiClient.AddMenuItem(r.Context(), input)
	if err != nil {
		respondClientError(w, h.sessions, h.logger, err, "menu_item_add_failed")
		return
	}

	h.logger.Info().Int("item_id", item.ID).Str("name", item.Name).Msg("Menu item added")
	respondWithJSON(w, http.StatusCreated, models.AddMenuItemResponse{Item: *item})
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.apiClient.GetAllMenuItems(r.Context())
	if err != nil {
		respondClientError(w, h.sessions, h.logger, err, "menu_items_fetch_failed")
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	respondWithJSON(w, http.StatusOK, models.MenuItemList{MenuItems: items})
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_item_id", "Invalid menu item ID")
		return
	}

	var input models.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if !h.validateInput(w, input) {
		return
	}

	item, err := h.apiClient.UpdateMenuItem(r.Context(), id, input)
	if err != nil {
		respondClientError(w, h.sessions, h.logger, err, "menu_item_update_failed")
		return
	}

	h.logger.Info().Int("item_id", id).Msg("Menu item updated")
	respondWithJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_item_id", "Invalid menu item ID")
		return
	}

	resp, err := h.apiClient.DeleteMenuItem(r.Context(), id)
	if err != nil {
		respondClientError(w, h.sessions, h.logger, err, "menu_item_delete_failed")
		return
	}

	h.logger.Info().Int("item_id", id).Msg("Menu item deleted")
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *MenuHandler) SetWeeklyMenu(w http.ResponseWriter, r *http.Request) {
	var req models.WeeklyMenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if len(req.Days) == 0 {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "At least one day is required")
		return
	}

	resp, err := h.apiClient.SetWeeklyMenu(r.Context(), req)
	if err != nil {
		respondClientError(w, h.sessions, h.logger, err, "weekly_menu_failed")
		return
	}

	h.logger.Info().Int("days", len(req.Days)).Msg("Weekly menu set")
	respondWithJSON(w, http.StatusOK, resp)
}
