package middleware

import (
	"context"
	"net/http"
	"strings"

	"courtvista-backend/internal/auth"
	"courtvista-backend/internal/models"
)

const (
	AccessCookie  = "cv_access"
	RefreshCookie = "cv_refresh"
)

// SessionResolver loads the principal held by a session slot.
type SessionResolver interface {
	Current(ctx context.Context, sessionID string) (models.Principal, error)
}

type principalKey struct{}
type sessionIDKey struct{}

// Authenticate attaches the caller's principal to the request context. Requests
// without a usable token continue as anonymous.
func Authenticate(manager *auth.Manager, sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := models.Anonymous()
			sessionID := ""

			if token := accessToken(r); token != "" && manager != nil {
				if claims, err := manager.ParseKind(token, auth.TokenAccess); err == nil {
					p, err := sessions.Current(r.Context(), claims.SessionID)
					if err == nil && !p.IsAnonymous() {
						principal = p
						sessionID = claims.SessionID
					}
				}
			}

			ctx := context.WithValue(r.Context(), principalKey{}, principal)
			ctx = context.WithValue(ctx, sessionIDKey{}, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func accessToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie(AccessCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func PrincipalFromContext(ctx context.Context) models.Principal {
	if p, ok := ctx.Value(principalKey{}).(models.Principal); ok {
		return p
	}
	return models.Anonymous()
}

func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithPrincipal is used by tests and internal callers to seed the context.
func WithPrincipal(ctx context.Context, p models.Principal, sessionID string) context.Context {
	ctx = context.WithValue(ctx, principalKey{}, p)
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}
