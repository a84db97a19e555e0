package consultations

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"courtvista-backend/internal/models"
	"courtvista-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	mu       sync.Mutex
	received []models.Consultation
	changed  []models.Consultation
	fail     bool
}

func (f *fakeMailer) BookingReceived(ctx context.Context, c models.Consultation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, c)
	if f.fail {
		return "", errors.New("smtp down")
	}
	return "m-1", nil
}

func (f *fakeMailer) StatusChanged(ctx context.Context, c models.Consultation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changed = append(f.changed, c)
	return "m-2", nil
}

var testNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, mailer Mailer) *Service {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	svc := NewService(NewRepository(store.NewMemory(), discardLogger()), mailer, loc, discardLogger())
	tick := 0
	svc.now = func() time.Time {
		tick++
		return testNow.Add(time.Duration(tick) * time.Second)
	}
	return svc
}

var (
	karan  = models.Principal{ID: "user-karan", Name: "Karan", Email: "karan@example.com", Role: models.RoleLawyer}
	priya  = models.Principal{ID: "user-priya", Name: "Priya", Email: "priya@example.com", Role: models.RoleLawyer}
	client = models.Principal{ID: "user-asingh", Name: "A. Singh", Email: "A@X.com", Role: models.RoleUser}
	admin  = models.Principal{ID: "admin-001", Name: "Admin", Email: "admin@courtvista.com", Role: models.RoleAdmin}
)

func bookForKaran(t *testing.T, svc *Service, p models.Principal) models.Consultation {
	t.Helper()
	c, err := svc.Book(context.Background(), p, BookRequest{
		LawyerID: 7,
		Name:     "A. Singh",
		Email:    "a@x.com",
		CaseType: "corporate",
		Date:     "2026-03-12",
		Time:     "10:00 - 11:00 AM",
		Message:  "Shareholder dispute",
	})
	require.NoError(t, err)
	return c
}

func TestBookAnonymousThenLawyerConfirms(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestService(t, mailer)
	ctx := context.Background()

	c := bookForKaran(t, svc, models.Anonymous())
	assert.Equal(t, models.StatusPending, c.Status)
	assert.Equal(t, "Karan Malhotra", c.LawyerName)
	assert.Equal(t, "Corporate Law", c.CaseTypeName)
	assert.Empty(t, c.ClientUserID)
	assert.Len(t, c.ID, 36)

	confirmed, err := svc.Confirm(ctx, karan, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)
	assert.True(t, confirmed.UpdatedAt.After(c.UpdatedAt))

	_, err = svc.Confirm(ctx, karan, c.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Decline(ctx, karan, c.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	svc.WaitForMail()
	assert.Len(t, mailer.received, 1)
	require.Len(t, mailer.changed, 1)
	assert.Equal(t, models.StatusConfirmed, mailer.changed[0].Status)
}

func TestTransitionAuthority(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	c := bookForKaran(t, svc, client)
	assert.Equal(t, client.ID, c.ClientUserID)

	for name, p := range map[string]models.Principal{
		"other lawyer": priya,
		"client":       client,
		"admin":        admin,
		"anonymous":    models.Anonymous(),
	} {
		_, err := svc.Confirm(ctx, p, c.ID)
		assert.ErrorIs(t, err, ErrForbidden, name)
	}

	_, err := svc.Decline(ctx, karan, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	declined, err := svc.Decline(ctx, karan, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, declined.Status)
	_, err = svc.Confirm(ctx, karan, c.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExplicitLinkDecidesAlone(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	c := bookForKaran(t, svc, client)

	linkedElsewhere := karan
	other := 3
	linkedElsewhere.LawyerID = &other
	_, err := svc.Confirm(ctx, linkedElsewhere, c.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	seven := 7
	renamed := models.Principal{ID: "user-x", Name: "Somebody Else", Role: models.RoleLawyer, LawyerID: &seven}
	_, err = svc.Confirm(ctx, renamed, c.ID)
	assert.NoError(t, err)
}

func TestLawyerNameFallback(t *testing.T) {
	c := models.Consultation{LawyerID: 99, LawyerName: "Karan Malhotra"}
	assert.True(t, IsLawyerFor(models.Principal{ID: "x", Name: "malhotra", Role: models.RoleLawyer}, c))
	assert.False(t, IsLawyerFor(models.Principal{ID: "x", Name: "  ", Role: models.RoleLawyer}, c))
	assert.False(t, IsLawyerFor(models.Principal{ID: "x", Name: "Karan", Role: models.RoleUser}, c))
}

func TestBookValidation(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Book(ctx, client, BookRequest{LawyerID: 404, Name: "A", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrLawyerNotFound)

	_, err = svc.Book(ctx, client, BookRequest{LawyerID: 1, Name: "A", Email: "a@x.com", CaseType: "maritime"})
	assert.ErrorIs(t, err, ErrUnknownCaseType)

	_, err = svc.Book(ctx, client, BookRequest{LawyerID: 1, Name: "A", Email: "a@x.com", Date: "2026-03-09"})
	assert.ErrorIs(t, err, ErrDateInPast)

	// today in Kolkata is still bookable
	_, err = svc.Book(ctx, client, BookRequest{LawyerID: 1, Name: "A", Email: "a@x.com", Date: "2026-03-10"})
	assert.NoError(t, err)

	// optional fields may be left out
	c, err := svc.Book(ctx, models.Anonymous(), BookRequest{LawyerID: 1, Name: "A", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Empty(t, c.CaseTypeName)
	assert.Empty(t, c.Date)
}

func TestBookIsNotIdempotent(t *testing.T) {
	svc := newTestService(t, nil)
	first := bookForKaran(t, svc, client)
	second := bookForKaran(t, svc, client)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := svc.ListAll(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMailFailureIsNotSurfaced(t *testing.T) {
	mailer := &fakeMailer{fail: true}
	svc := newTestService(t, mailer)
	c := bookForKaran(t, svc, client)
	svc.WaitForMail()
	assert.NotEmpty(t, c.ID)
	assert.Len(t, mailer.received, 1)
}

func TestListsAndGet(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	older := bookForKaran(t, svc, client)
	newer := bookForKaran(t, svc, models.Anonymous())
	other, err := svc.Book(ctx, client, BookRequest{LawyerID: 2, Name: "A. Singh", Email: "a@x.com"})
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, karan, older.ID)
	require.NoError(t, err)

	mine, err := svc.ListForLawyer(ctx, karan, "")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].ID)

	pending, err := svc.ListForLawyer(ctx, karan, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, newer.ID, pending[0].ID)

	// the anonymous booking matches the client by email
	booked, err := svc.ListForClient(ctx, client, "")
	require.NoError(t, err)
	assert.Len(t, booked, 3)
	assert.Equal(t, other.ID, booked[0].ID)

	_, err = svc.ListAll(ctx, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	confirmed, err := svc.Confirmed(ctx)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)

	_, err = svc.Get(ctx, client, older.ID)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, karan, older.ID)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, admin, older.ID)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, priya, older.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Get(ctx, models.Anonymous(), older.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Get(ctx, admin, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus([]models.Consultation{
		{Status: models.StatusPending},
		{Status: models.StatusPending},
		{Status: models.StatusConfirmed},
		{Status: models.StatusDeclined},
	})
	assert.Equal(t, Counts{Total: 4, Pending: 2, Confirmed: 1, Declined: 1}, counts)
	assert.Len(t, TimeSlots(), 7)
}
