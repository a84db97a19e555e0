package messaging

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"courtvista-backend/internal/httpx"
	"courtvista-backend/internal/middleware"
	"courtvista-backend/internal/transport"
	"courtvista-backend/internal/validation"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
	hub     *Hub
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, hub *Hub, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		hub:     hub,
		val:     val,
		log:     log,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.ListConversations(ctx, middleware.PrincipalFromContext(r.Context()))
	if err != nil {
		log.Error("messages list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	log.Info("messages list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

func (h *Handler) Thread(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	thread, err := h.service.Thread(ctx, middleware.PrincipalFromContext(r.Context()), id)
	if err != nil {
		h.writeServiceError(w, log, "messages thread", id, err)
		return
	}

	log.Info("messages thread: ok", slog.String("conversation_id", id), slog.Int("count", len(thread.Messages)))
	transport.WriteJSON(w, http.StatusOK, thread)
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var req SendRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("messages send: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("messages send: validation error")
		details := httpx.ValidationDetails(h.val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	msg, err := h.service.Send(ctx, middleware.PrincipalFromContext(r.Context()), id, req.Text)
	if err != nil {
		h.writeServiceError(w, log, "messages send", id, err)
		return
	}

	log.Info("messages send: ok", slog.String("conversation_id", id), slog.String("message_id", msg.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": msg,
	})
}

// Stream upgrades to a websocket that receives each new message as JSON.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	err := h.service.Authorize(ctx, middleware.PrincipalFromContext(r.Context()), id)
	cancel()
	if err != nil {
		h.writeServiceError(w, log, "messages stream", id, err)
		return
	}

	if err := h.hub.Serve(w, r, id); err != nil {
		log.Warn("messages stream: upgrade failed", slog.String("error", err.Error()))
		return
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, log *slog.Logger, op, id string, err error) {
	switch {
	case errors.Is(err, ErrConversationNotFound):
		log.Warn(op+": not found", slog.String("conversation_id", id))
		transport.WriteError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, ErrForbidden):
		log.Warn(op+": forbidden", slog.String("conversation_id", id))
		transport.WriteError(w, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, ErrConversationClosed):
		log.Warn(op+": conversation closed", slog.String("conversation_id", id))
		transport.WriteError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, ErrEmptyMessage):
		log.Warn(op+": empty message", slog.String("conversation_id", id))
		transport.WriteError(w, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		log.Error(op+": store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
