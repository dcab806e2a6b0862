package http

import (
	"net/http"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users ended with error")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	user, err := h.services.UserService.GetUser(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user lookup ended with error")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

func (h *Handler) messagesTo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	messages, err := h.services.MessageService.MessagesTo(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("listing inbound messages ended with error")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessagesResponse{Messages: messages}, http.StatusOK)
}

func (h *Handler) messagesFrom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	messages, err := h.services.MessageService.MessagesFrom(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("listing outbound messages ended with error")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessagesResponse{Messages: messages}, http.StatusOK)
}
