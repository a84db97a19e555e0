package qna

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
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	items := h.service.List(category)
	log.Info("qna list: ok", slog.String("category", category), slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req AskRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("qna ask: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("qna ask: validation error")
		details := httpx.ValidationDetails(h.val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	sub, err := h.service.Ask(ctx, middleware.PrincipalFromContext(r.Context()), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyQuestion):
			log.Warn("qna ask: empty question")
			transport.WriteError(w, http.StatusUnprocessableEntity, err.Error(), nil)
		case errors.Is(err, ErrUnknownCategory):
			log.Warn("qna ask: unknown category", slog.String("category", req.Category))
			transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			log.Error("qna ask: store error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		}
		return
	}

	log.Info("qna ask: submitted", slog.String("question_id", sub.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"question": sub,
		"message":  "Your question has been submitted! Lawyers will respond soon.",
	})
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 50, 200)
	if err != nil {
		log.Warn("admin questions list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.Submitted(ctx)
	if err != nil {
		log.Error("admin questions list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	start, end := httpx.Window(len(items), limit, offset)
	log.Info("admin questions list: ok", slog.Int("count", end-start))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items[start:end],
		"limit":  limit,
		"offset": offset,
		"total":  len(items),
	})
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
