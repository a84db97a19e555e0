package identity

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"courtvista-backend/internal/auth"
	"courtvista-backend/internal/models"
	"courtvista-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	auth.Cost = bcrypt.MinCost
}

// countingStore records writes per key on top of the memory backend.
type countingStore struct {
	*store.MemoryStore
	writes map[string]int
}

func (c *countingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.writes[key]++
	return c.MemoryStore.Set(ctx, key, value, ttl)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) (*Service, *countingStore) {
	t.Helper()
	s := &countingStore{MemoryStore: store.NewMemory(), writes: map[string]int{}}
	manager := &auth.Manager{
		Secret:     []byte("test-secret"),
		AccessTTL:  15 * time.Minute,
		RefreshTTL: time.Hour,
		Issuer:     "courtvista-backend",
	}
	svc := NewService(
		NewAccountRepository(s, discardLogger()),
		NewSessionRepository(s),
		manager,
		Admin{Email: "admin@courtvista.com", Password: "admin123"},
	)
	return svc, s
}

func register(t *testing.T, svc *Service, name, email, password string, role models.Role) (models.Principal, Tokens) {
	t.Helper()
	p, tokens, err := svc.Register(context.Background(), RegisterInput{Name: name, Email: email, Password: password, Role: role})
	require.NoError(t, err)
	return p, tokens
}

func sessionOf(t *testing.T, svc *Service, tokens Tokens) string {
	t.Helper()
	claims, err := svc.tokens.ParseKind(tokens.AccessToken, auth.TokenAccess)
	require.NoError(t, err)
	return claims.SessionID
}

func TestRegisterStoresHashedAccountAndStartsSession(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	p, tokens := register(t, svc, " Asha Rao ", "Asha@Example.com", "pass1", models.RoleUser)
	assert.Equal(t, "Asha Rao", p.Name)
	assert.Equal(t, "asha@example.com", p.Email)
	assert.Equal(t, models.RoleUser, p.Role)
	assert.Contains(t, p.ID, "user-")
	assert.Equal(t, 900, tokens.ExpiresIn)

	accounts, err := svc.accounts.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.NotEqual(t, "pass1", accounts[0].Password)
	assert.NoError(t, auth.ComparePassword(accounts[0].Password, "pass1"))

	current, err := svc.Current(ctx, sessionOf(t, svc, tokens))
	require.NoError(t, err)
	assert.Equal(t, p, current)
	assert.Equal(t, 1, s.writes[store.KeyAccounts])
}

func TestRegisterDuplicateEmailDoesNotWrite(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	register(t, svc, "Asha", "asha@example.com", "pass1", models.RoleUser)

	_, _, err := svc.Register(ctx, RegisterInput{Name: "Other", Email: "ASHA@example.com ", Password: "pass2", Role: models.RoleLawyer})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, s.writes[store.KeyAccounts])

	_, _, err = svc.Register(ctx, RegisterInput{Name: "Fake", Email: "Admin@CourtVista.com", Password: "pass2", Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, s.writes[store.KeyAccounts])
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc, _ := newTestService(t)
	_, _, err := svc.Register(context.Background(), RegisterInput{Name: "X", Email: "x@example.com", Password: "pass", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	registered, _ := register(t, svc, "Karan Malhotra", "karan@example.com", "secret", models.RoleLawyer)

	p, tokens, err := svc.Login(ctx, "KARAN@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered, p)
	assert.NotEmpty(t, tokens.RefreshToken)

	_, _, err = svc.Login(ctx, "karan@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	p, _, err := svc.Login(context.Background(), "admin@courtvista.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, AdminID, p.ID)
	assert.Equal(t, "Admin", p.Name)
	assert.Equal(t, models.RoleAdmin, p.Role)

	_, _, err = svc.Login(context.Background(), "admin@courtvista.com", "admin124")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutClearsSlotButKeepsAccount(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, tokens := register(t, svc, "Asha", "asha@example.com", "pass1", models.RoleUser)
	sid := sessionOf(t, svc, tokens)

	require.NoError(t, svc.Logout(ctx, sid))
	current, err := svc.Current(ctx, sid)
	require.NoError(t, err)
	assert.True(t, current.IsAnonymous())

	_, _, err = svc.Login(ctx, "asha@example.com", "pass1")
	assert.NoError(t, err)
}

func TestRefresh(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	p, tokens := register(t, svc, "Asha", "asha@example.com", "pass1", models.RoleUser)

	refreshed, next, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, p, refreshed)
	assert.Equal(t, sessionOf(t, svc, tokens), sessionOf(t, svc, next))

	_, _, err = svc.Refresh(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, ErrSessionExpired)

	require.NoError(t, svc.Logout(ctx, sessionOf(t, svc, tokens)))
	_, _, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, userTokens := register(t, svc, "Asha", "asha@example.com", "pass1", models.RoleUser)
	userSID := sessionOf(t, svc, userTokens)
	updated, err := svc.UpdateProfile(ctx, userSID, ProfileRequest{
		Name:         "  Asha R ",
		Phone:        " 9876543210 ",
		Bio:          " hello ",
		Jurisdiction: "Delhi High Court",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha R", updated.Name)
	assert.Equal(t, "9876543210", updated.Phone)
	assert.Equal(t, "hello", updated.Bio)
	assert.Empty(t, updated.Jurisdiction)

	current, err := svc.Current(ctx, userSID)
	require.NoError(t, err)
	assert.Equal(t, updated, current)

	accounts, err := svc.accounts.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha R", accounts[0].Name)

	_, lawyerTokens := register(t, svc, "Karan", "karan@example.com", "pass1", models.RoleLawyer)
	lawyer, err := svc.UpdateProfile(ctx, sessionOf(t, svc, lawyerTokens), ProfileRequest{Name: "Karan", Jurisdiction: "Delhi High Court", Languages: "Hindi, English"})
	require.NoError(t, err)
	assert.Equal(t, "Delhi High Court", lawyer.Jurisdiction)
	assert.Equal(t, "Hindi, English", lawyer.Languages)

	_, err = svc.UpdateProfile(ctx, userSID, ProfileRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = svc.UpdateProfile(ctx, "missing", ProfileRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestUpdateProfileAdminOnlyTouchesSlot(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	_, tokens, err := svc.Login(ctx, "admin@courtvista.com", "admin123")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, sessionOf(t, svc, tokens), ProfileRequest{Name: "Chief Admin"})
	require.NoError(t, err)
	assert.Equal(t, "Chief Admin", updated.Name)
	assert.Zero(t, s.writes[store.KeyAccounts])
}

func TestLinkLawyer(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	lawyer, tokens := register(t, svc, "Someone Else", "lawyer@example.com", "pass1", models.RoleLawyer)
	user, _ := register(t, svc, "Asha", "asha@example.com", "pass1", models.RoleUser)

	linked, err := svc.LinkLawyer(ctx, lawyer.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, linked.LawyerID)
	assert.Equal(t, 7, *linked.LawyerID)

	// the open session keeps its snapshot
	current, err := svc.Current(ctx, sessionOf(t, svc, tokens))
	require.NoError(t, err)
	assert.Nil(t, current.LawyerID)

	relogged, _, err := svc.Login(ctx, "lawyer@example.com", "pass1")
	require.NoError(t, err)
	require.NotNil(t, relogged.LawyerID)
	assert.Equal(t, 7, *relogged.LawyerID)

	_, err = svc.LinkLawyer(ctx, lawyer.ID, 999)
	assert.ErrorIs(t, err, ErrUnknownLawyer)
	_, err = svc.LinkLawyer(ctx, "user-missing", 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.LinkLawyer(ctx, user.ID, 1)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestListAndCountAccounts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	step := 0
	svc.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}
	register(t, svc, "First", "first@example.com", "pass1", models.RoleUser)
	register(t, svc, "Second", "second@example.com", "pass1", models.RoleLawyer)

	items, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Second", items[0].Name)

	n, err := svc.CountAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
