package identity

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
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service      *Service
	val          *validation.Validator
	log          *slog.Logger
	secureCookie bool
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, secureCookie bool) *Handler {
	return &Handler{
		service:      service,
		val:          val,
		log:          log,
		secureCookie: secureCookie,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req RegisterRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("auth register: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := h.val.Struct(req); err != nil {
		errs := h.val.ValidationErrors(err)
		log.Warn("auth register: validation error")
		transport.WriteError(w, http.StatusBadRequest, registerError(errs).Error(), httpx.ValidationDetails(errs))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	principal, tokens, err := h.service.Register(ctx, RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			log.Warn("auth register: duplicate email")
			transport.WriteError(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, ErrInvalidRole), errors.Is(err, ErrMissingRequiredField):
			log.Warn("auth register: invalid input", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			log.Error("auth register: store error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		}
		return
	}

	h.setSessionCookies(w, tokens)
	log.Info("auth register: ok", slog.String("user_id", principal.ID), slog.String("role", string(principal.Role)))
	transport.WriteJSON(w, http.StatusCreated, SessionResponse{
		User:          principal,
		DashboardPath: DashboardPath(principal.Role),
		Tokens:        &tokens,
	})
}

// registerError picks the single form error shown for a failed registration.
// Missing fields win over a short password, which wins over a mismatch.
func registerError(errs validator.ValidationErrors) error {
	has := func(match func(validator.FieldError) bool) bool {
		for _, fe := range errs {
			if match(fe) {
				return true
			}
		}
		return false
	}
	switch {
	case has(func(fe validator.FieldError) bool { return fe.Tag() == "required" }):
		return ErrMissingRequiredField
	case has(func(fe validator.FieldError) bool { return fe.Field() == "Password" && fe.Tag() == "min" }):
		return ErrPasswordTooShort
	case has(func(fe validator.FieldError) bool { return fe.Tag() == "eqfield" }):
		return ErrPasswordMismatch
	case has(func(fe validator.FieldError) bool { return fe.Tag() == "role" }):
		return ErrInvalidRole
	default:
		return errors.New("validation error")
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("auth login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := h.val.Struct(req); err != nil {
		log.Warn("auth login: validation error")
		details := httpx.ValidationDetails(h.val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	principal, tokens, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Warn("auth login: invalid credentials")
			transport.WriteError(w, http.StatusUnauthorized, err.Error(), nil)
			return
		}
		log.Error("auth login: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	h.setSessionCookies(w, tokens)
	log.Info("auth login: ok", slog.String("user_id", principal.ID), slog.String("role", string(principal.Role)))
	transport.WriteJSON(w, http.StatusOK, SessionResponse{
		User:          principal,
		DashboardPath: DashboardPath(principal.Role),
		Tokens:        &tokens,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	token := ""
	if c, err := r.Cookie(middleware.RefreshCookie); err == nil {
		token = c.Value
	}
	if token == "" && r.ContentLength > 0 {
		var req refreshRequest
		if err := httpx.DecodeJSON(r.Body, &req); err != nil {
			log.Warn("auth refresh: invalid json")
			transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
			return
		}
		token = strings.TrimSpace(req.RefreshToken)
	}
	if token == "" {
		log.Warn("auth refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	principal, tokens, err := h.service.Refresh(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			log.Warn("auth refresh: session expired")
			h.clearSessionCookies(w)
			transport.WriteError(w, http.StatusUnauthorized, err.Error(), nil)
			return
		}
		log.Error("auth refresh: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	h.setSessionCookies(w, tokens)
	log.Info("auth refresh: ok", slog.String("user_id", principal.ID))
	transport.WriteJSON(w, http.StatusOK, SessionResponse{
		User:          principal,
		DashboardPath: DashboardPath(principal.Role),
		Tokens:        &tokens,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		if c, err := r.Cookie(middleware.RefreshCookie); err == nil {
			sessionID, _ = h.service.RefreshSessionID(c.Value)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Logout(ctx, sessionID); err != nil {
		log.Error("auth logout: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	h.clearSessionCookies(w)
	log.Info("auth logout: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFromContext(r.Context())
	role := p.Role
	var user *models.Principal
	if p.IsAnonymous() {
		role = models.RoleAnonymous
	} else {
		user = &p
	}
	transport.WriteJSON(w, http.StatusOK, MeResponse{
		User:          user,
		Role:          role,
		DashboardPath: DashboardPath(role),
		NavLinks:      NavLinks(role),
	})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req ProfileRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("auth profile: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	req.Phone = strings.TrimSpace(req.Phone)
	if err := h.val.Struct(req); err != nil {
		log.Warn("auth profile: validation error")
		details := httpx.ValidationDetails(h.val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	updated, err := h.service.UpdateProfile(ctx, middleware.SessionIDFromContext(r.Context()), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingName):
			log.Warn("auth profile: missing name")
			transport.WriteError(w, http.StatusUnprocessableEntity, err.Error(), nil)
		case errors.Is(err, ErrSessionExpired):
			log.Warn("auth profile: session expired")
			transport.WriteDenied(w, http.StatusUnauthorized, PathLogin)
		case errors.Is(err, ErrNotFound):
			log.Warn("auth profile: account not found")
			transport.WriteError(w, http.StatusNotFound, err.Error(), nil)
		default:
			log.Error("auth profile: store error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		}
		return
	}

	log.Info("auth profile: ok", slog.String("user_id", updated.ID))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": updated})
}

func (h *Handler) AdminListAccounts(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 50, 200)
	if err != nil {
		log.Warn("admin accounts list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.ListAccounts(ctx)
	if err != nil {
		log.Error("admin accounts list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	start, end := httpx.Window(len(items), limit, offset)
	log.Info("admin accounts list: ok", slog.Int("count", end-start))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items[start:end],
		"limit":  limit,
		"offset": offset,
		"total":  len(items),
	})
}

func (h *Handler) AdminLinkLawyer(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	accountID := strings.TrimSpace(chi.URLParam(r, "id"))
	if accountID == "" {
		log.Warn("admin link lawyer: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req LinkLawyerRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin link lawyer: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin link lawyer: validation error")
		details := httpx.ValidationDetails(h.val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	linked, err := h.service.LinkLawyer(ctx, accountID, req.LawyerID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownLawyer):
			log.Warn("admin link lawyer: not found", slog.String("id", accountID), slog.Int("lawyer_id", req.LawyerID))
			transport.WriteError(w, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, ErrInvalidRole):
			log.Warn("admin link lawyer: not a lawyer account", slog.String("id", accountID))
			transport.WriteError(w, http.StatusBadRequest, "account is not a lawyer", nil)
		default:
			log.Error("admin link lawyer: store error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		}
		return
	}

	log.Info("admin link lawyer: ok", slog.String("id", accountID), slog.Int("lawyer_id", req.LawyerID))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": linked})
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, tokens Tokens) {
	accessTTL, refreshTTL := h.service.SessionTTLs()
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessCookie,
		Value:    tokens.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(accessTTL.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.RefreshCookie,
		Value:    tokens.RefreshToken,
		Path:     "/api",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(refreshTTL.Seconds()),
	})
}

func (h *Handler) clearSessionCookies(w http.ResponseWriter) {
	expire := time.Now().Add(-1 * time.Hour)
	for name, path := range map[string]string{middleware.AccessCookie: "/", middleware.RefreshCookie: "/api"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     path,
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
			Expires:  expire,
			MaxAge:   -1,
		})
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
