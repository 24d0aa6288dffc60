package handlers

import (
	"errors"
	"net/http"

	"lostfound-backend/internal/http/response"
	"lostfound-backend/internal/service"
	"lostfound-backend/models"
)

// NotifyHandler exposes the match notifier over HTTP.
type NotifyHandler struct {
	notifier *service.Notifier
}

// NewNotifyHandler creates a new notify handler.
func NewNotifyHandler(notifier *service.Notifier) *NotifyHandler {
	return &NotifyHandler{notifier: notifier}
}

// NotifyMatchRequest is the request body. Exactly one of Item or ItemID is
// needed; an inline item wins when both are present.
type NotifyMatchRequest struct {
	Item   *models.FoundItem `json:"item,omitempty"`
	ItemID string            `json:"item_id,omitempty"`
}

// NotifyMatch handles POST requests announcing a found item and responds with
// a delivery summary.
func (h *NotifyHandler) NotifyMatch(w http.ResponseWriter, r *http.Request) {
	var req NotifyMatchRequest
	if !response.Decode(w, r, &req) {
		return
	}

	summary, err := h.notifier.Notify(r.Context(), service.MatchRequest{
		Item:   req.Item,
		ItemID: req.ItemID,
	})
	if err != nil {
		writeNotifyError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// writeNotifyError maps the notifier error taxonomy onto HTTP statuses.
func writeNotifyError(w http.ResponseWriter, err error) {
	var (
		validationErr *models.ValidationError
		configErr     *models.ConfigurationError
		upstreamErr   *models.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		response.Error(w, http.StatusBadRequest, validationErr.Error(), "")
	case errors.Is(err, models.ErrItemNotFound):
		response.Error(w, http.StatusNotFound, models.ErrItemNotFound.Error(), "")
	case errors.As(err, &configErr):
		response.Error(w, http.StatusInternalServerError, configErr.Error(), "")
	case errors.As(err, &upstreamErr):
		response.Error(w, http.StatusInternalServerError, "item store query failed", upstreamErr.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error", "")
	}
}
