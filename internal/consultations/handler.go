package consultations

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"courtvista-backend/internal/httpx"
	"courtvista-backend/internal/middleware"
	"courtvista-backend/internal/models"
	"courtvista-backend/internal/transport"
	"courtvista-backend/internal/validation"
	"github.com/go-chi/chi/v5"
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

func (h *Handler) Slots(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"slots": TimeSlots(),
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req BookRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("consultations create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := h.val.Struct(req); err != nil {
		log.Warn("consultations create: validation error")
		details := httpx.ValidationDetails(h.val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	p := middleware.PrincipalFromContext(r.Context())
	c, err := h.service.Book(ctx, p, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrLawyerNotFound):
			log.Warn("consultations create: lawyer not found", slog.Int("lawyer_id", req.LawyerID))
			transport.WriteError(w, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, ErrUnknownCaseType), errors.Is(err, ErrDateInPast):
			log.Warn("consultations create: invalid request", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			log.Error("consultations create: store error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		}
		return
	}

	log.Info("consultations create: booked",
		slog.String("consultation_id", c.ID),
		slog.Int("lawyer_id", c.LawyerID),
		slog.String("date", c.Date),
		slog.String("time", c.Time),
	)
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"consultation": c,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := h.service.Get(ctx, middleware.PrincipalFromContext(r.Context()), id)
	if err != nil {
		h.writeServiceError(w, log, "consultations get", id, err)
		return
	}

	log.Info("consultations get: ok", slog.String("consultation_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"consultation": c,
	})
}

func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, "consultations confirm", h.service.Confirm)
}

func (h *Handler) Decline(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, "consultations decline", h.service.Decline)
}

type transitionFunc func(ctx context.Context, p models.Principal, id string) (models.Consultation, error)

func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request, op string, fn transitionFunc) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	c, err := fn(ctx, middleware.PrincipalFromContext(r.Context()), id)
	if err != nil {
		h.writeServiceError(w, log, op, id, err)
		return
	}

	log.Info(op+": ok", slog.String("consultation_id", id), slog.String("status", string(c.Status)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"consultation": c,
	})
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 50, 200)
	if err != nil {
		log.Warn("admin consultations list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	status := models.ConsultationStatus(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status"))))

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.ListAll(ctx, status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			log.Warn("admin consultations list: invalid status", slog.String("status", string(status)))
			transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		log.Error("admin consultations list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	start, end := httpx.Window(len(items), limit, offset)
	log.Info("admin consultations list: ok", slog.Int("count", end-start))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items[start:end],
		"counts": CountByStatus(items),
		"limit":  limit,
		"offset": offset,
		"total":  len(items),
	})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, log *slog.Logger, op, id string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		log.Warn(op+": not found", slog.String("consultation_id", id))
		transport.WriteError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, ErrForbidden):
		log.Warn(op+": forbidden", slog.String("consultation_id", id))
		transport.WriteError(w, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, ErrInvalidTransition):
		log.Warn(op+": invalid transition", slog.String("consultation_id", id))
		transport.WriteError(w, http.StatusConflict, err.Error(), nil)
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
