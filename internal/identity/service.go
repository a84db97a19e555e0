package identity

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"courtvista-backend/internal/auth"
	"courtvista-backend/internal/catalog"
	"courtvista-backend/internal/models"
	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail     = errors.New("this email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrMissingName        = errors.New("name is required")
	ErrNotFound           = errors.New("account not found")
	ErrUnknownLawyer      = errors.New("lawyer not found")
	ErrSessionExpired     = errors.New("session expired")

	ErrMissingRequiredField = errors.New("please fill in all required fields")
	ErrPasswordTooShort     = errors.New("password must be at least 4 characters")
	ErrPasswordMismatch     = errors.New("passwords do not match")
)

const AdminID = "admin-001"

// Admin is the single built-in administrator. It is never stored.
type Admin struct {
	Name     string
	Email    string
	Password string
}

func (a Admin) Principal() models.Principal {
	return models.Principal{
		ID:    AdminID,
		Name:  a.Name,
		Email: a.Email,
		Role:  models.RoleAdmin,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

type Service struct {
	accounts AccountRepository
	sessions SessionRepository
	tokens   *auth.Manager
	admin    Admin
	now      func() time.Time
}

func NewService(accounts AccountRepository, sessions SessionRepository, tokens *auth.Manager, admin Admin) *Service {
	admin.Email = normalizeEmail(admin.Email)
	if admin.Name == "" {
		admin.Name = "Admin"
	}
	return &Service{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		admin:    admin,
		now:      time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register stores a new user or lawyer account and signs it in.
func (s *Service) Register(ctx context.Context, in RegisterInput) (models.Principal, Tokens, error) {
	if in.Role != models.RoleUser && in.Role != models.RoleLawyer {
		return models.Principal{}, Tokens{}, ErrInvalidRole
	}
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if name == "" || email == "" || in.Password == "" {
		return models.Principal{}, Tokens{}, ErrMissingRequiredField
	}
	if email == s.admin.Email {
		return models.Principal{}, Tokens{}, ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.Principal{}, Tokens{}, fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{
		ID:        "user-" + uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  hash,
		Role:      in.Role,
		CreatedAt: s.now().UTC(),
	}
	err = s.accounts.Update(ctx, func(items []models.Account) ([]models.Account, error) {
		for _, existing := range items {
			if normalizeEmail(existing.Email) == email {
				return nil, ErrDuplicateEmail
			}
		}
		return append(items, account), nil
	})
	if err != nil {
		return models.Principal{}, Tokens{}, err
	}

	principal := account.Principal()
	tokens, err := s.startSession(ctx, principal)
	if err != nil {
		return models.Principal{}, Tokens{}, err
	}
	return principal, tokens, nil
}

// Login checks the built-in admin first, then stored accounts.
func (s *Service) Login(ctx context.Context, email, password string) (models.Principal, Tokens, error) {
	email = normalizeEmail(email)

	var principal models.Principal
	if s.isAdmin(email, password) {
		principal = s.admin.Principal()
	} else {
		items, err := s.accounts.List(ctx)
		if err != nil {
			return models.Principal{}, Tokens{}, err
		}
		found := false
		for _, a := range items {
			if normalizeEmail(a.Email) != email {
				continue
			}
			if auth.ComparePassword(a.Password, password) == nil {
				principal = a.Principal()
				found = true
				break
			}
		}
		if !found {
			return models.Principal{}, Tokens{}, ErrInvalidCredentials
		}
	}

	tokens, err := s.startSession(ctx, principal)
	if err != nil {
		return models.Principal{}, Tokens{}, err
	}
	return principal, tokens, nil
}

func (s *Service) isAdmin(email, password string) bool {
	if s.admin.Email == "" || s.admin.Password == "" {
		return false
	}
	return email == s.admin.Email &&
		subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
}

func (s *Service) startSession(ctx context.Context, p models.Principal) (Tokens, error) {
	sessionID := uuid.NewString()
	if err := s.sessions.Put(ctx, sessionID, p, s.tokens.RefreshTTL); err != nil {
		return Tokens{}, fmt.Errorf("store session: %w", err)
	}
	return s.issue(sessionID, p.Role)
}

func (s *Service) issue(sessionID string, role models.Role) (Tokens, error) {
	access, err := s.tokens.NewAccessToken(sessionID, string(role))
	if err != nil {
		return Tokens{}, err
	}
	refresh, err := s.tokens.NewRefreshToken(sessionID, string(role))
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.tokens.AccessTTL.Seconds()),
	}, nil
}

// Refresh re-issues tokens for a session whose slot still exists.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (models.Principal, Tokens, error) {
	claims, err := s.tokens.ParseKind(refreshToken, auth.TokenRefresh)
	if err != nil {
		return models.Principal{}, Tokens{}, ErrSessionExpired
	}
	p, ok, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return models.Principal{}, Tokens{}, err
	}
	if !ok {
		return models.Principal{}, Tokens{}, ErrSessionExpired
	}
	if err := s.sessions.Put(ctx, claims.SessionID, p, s.tokens.RefreshTTL); err != nil {
		return models.Principal{}, Tokens{}, err
	}
	tokens, err := s.issue(claims.SessionID, p.Role)
	if err != nil {
		return models.Principal{}, Tokens{}, err
	}
	return p, tokens, nil
}

// SessionTTLs returns the access and refresh lifetimes used for cookies.
func (s *Service) SessionTTLs() (time.Duration, time.Duration) {
	return s.tokens.AccessTTL, s.tokens.RefreshTTL
}

// RefreshSessionID extracts the session id from a valid refresh token.
func (s *Service) RefreshSessionID(refreshToken string) (string, bool) {
	claims, err := s.tokens.ParseKind(refreshToken, auth.TokenRefresh)
	if err != nil {
		return "", false
	}
	return claims.SessionID, true
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// Current returns the principal held by the session, or an anonymous one.
func (s *Service) Current(ctx context.Context, sessionID string) (models.Principal, error) {
	if sessionID == "" {
		return models.Anonymous(), nil
	}
	p, ok, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return models.Anonymous(), err
	}
	if !ok {
		return models.Anonymous(), nil
	}
	return p, nil
}

func (s *Service) UpdateProfile(ctx context.Context, sessionID string, req ProfileRequest) (models.Principal, error) {
	current, err := s.Current(ctx, sessionID)
	if err != nil {
		return models.Principal{}, err
	}
	if current.IsAnonymous() {
		return models.Principal{}, ErrSessionExpired
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Principal{}, ErrMissingName
	}

	apply := func(p *models.Principal) {
		p.Name = name
		p.Phone = strings.TrimSpace(req.Phone)
		p.Bio = strings.TrimSpace(req.Bio)
		if p.Role == models.RoleLawyer {
			p.Jurisdiction = strings.TrimSpace(req.Jurisdiction)
			p.Experience = strings.TrimSpace(req.Experience)
			p.Languages = strings.TrimSpace(req.Languages)
		}
	}

	updated := current
	apply(&updated)

	if current.Role != models.RoleAdmin {
		err := s.accounts.Update(ctx, func(items []models.Account) ([]models.Account, error) {
			for i := range items {
				if items[i].ID != current.ID {
					continue
				}
				items[i].Name = updated.Name
				items[i].Phone = updated.Phone
				items[i].Bio = updated.Bio
				items[i].Jurisdiction = updated.Jurisdiction
				items[i].Experience = updated.Experience
				items[i].Languages = updated.Languages
				updated = items[i].Principal()
				return items, nil
			}
			return nil, ErrNotFound
		})
		if err != nil {
			return models.Principal{}, err
		}
	}

	if err := s.sessions.Put(ctx, sessionID, updated, s.tokens.RefreshTTL); err != nil {
		return models.Principal{}, err
	}
	return updated, nil
}

// LinkLawyer ties a lawyer account to a catalog lawyer. Sessions already open
// keep their previous snapshot until the next login.
func (s *Service) LinkLawyer(ctx context.Context, accountID string, lawyerID int) (models.Principal, error) {
	if _, ok := catalog.LawyerByID(lawyerID); !ok {
		return models.Principal{}, ErrUnknownLawyer
	}

	var linked models.Principal
	err := s.accounts.Update(ctx, func(items []models.Account) ([]models.Account, error) {
		for i := range items {
			if items[i].ID != accountID {
				continue
			}
			if items[i].Role != models.RoleLawyer {
				return nil, ErrInvalidRole
			}
			id := lawyerID
			items[i].LawyerID = &id
			linked = items[i].Principal()
			return items, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return models.Principal{}, err
	}
	return linked, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]models.Principal, error) {
	items, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	out := make([]models.Principal, 0, len(items))
	for _, a := range items {
		out = append(out, a.Principal())
	}
	return out, nil
}

func (s *Service) CountAccounts(ctx context.Context) (int, error) {
	items, err := s.accounts.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
