package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// guarded by requireIdentity, the username is always present here
	username, _ := utils.GetUsernameFromContext(ctx)

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	message, err := h.services.MessageService.SendMessage(ctx, models.Message{
		FromUsername: username,
		ToUsername:   req.ToUsername,
		Body:         req.Body,
	})
	if err != nil {
		log.Err(err).Str("to_username", req.ToUsername).Msg("sending message ended with error")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusCreated)
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, _ := utils.GetUsernameFromContext(ctx)

	id, err := messageIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid message id")
		writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	message, err := h.services.MessageService.GetMessage(ctx, username, id)
	if err != nil {
		log.Err(err).Int64("message_id", id).Msg("message lookup ended with error")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}

func (h *Handler) markMessageRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, _ := utils.GetUsernameFromContext(ctx)

	id, err := messageIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid message id")
		writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	read, err := h.services.MessageService.MarkMessageRead(ctx, username, id)
	if err != nil {
		log.Err(err).Int64("message_id", id).Msg("marking message read ended with error")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageReadResponse{Message: read}, http.StatusOK)
}

func messageIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
