package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"courtvista-backend/internal/auth"
	"courtvista-backend/internal/consultations"
	"courtvista-backend/internal/identity"
	"courtvista-backend/internal/middleware"
	"courtvista-backend/internal/models"
	"courtvista-backend/internal/search"
	"courtvista-backend/internal/store"
	"courtvista-backend/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	auth.Cost = bcrypt.MinCost
}

type downStore struct {
	*store.MemoryStore
}

func (downStore) Ping(context.Context) error {
	return errors.New("connection refused")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := store.NewMemory()
	log := discardLogger()
	manager := &auth.Manager{
		Secret:     []byte("test-secret"),
		AccessTTL:  15 * time.Minute,
		RefreshTTL: time.Hour,
		Issuer:     "courtvista-backend",
	}
	return &Server{
		Store:    s,
		Cache:    s,
		CacheTTL: time.Minute,
		Val:      validation.New(),
		Log:      log,
		Identity: identity.NewService(
			identity.NewAccountRepository(s, log),
			identity.NewSessionRepository(s),
			manager,
			identity.Admin{Email: "admin@courtvista.com", Password: "admin123"},
		),
		Consultations: consultations.NewService(consultations.NewRepository(s, log), nil, time.UTC, log),
	}
}

func newRouter(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.Health)
	r.Get("/lawyers", s.SearchLawyers)
	r.Get("/lawyers/featured", s.FeaturedLawyers)
	r.Get("/lawyers/{id}", s.GetLawyer)
	r.Get("/practice-areas", s.PracticeAreas)
	r.Get("/filters", s.Filters)
	r.Get("/compare", s.Compare)
	r.Post("/compare/toggle", s.CompareToggle)
	r.Get("/dashboard/user", s.UserDashboard)
	r.Get("/dashboard/lawyer", s.LawyerDashboard)
	r.Get("/dashboard/admin", s.AdminDashboard)
	return r
}

func get(router http.Handler, path string, p models.Principal) *httptest.ResponseRecorder {
	return send(router, http.MethodGet, path, "", p)
}

func send(router http.Handler, method, path, body string, p models.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req = req.WithContext(middleware.WithPrincipal(req.Context(), p, "sid"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := get(newRouter(s), "/health", models.Anonymous())
	assert.Equal(t, http.StatusOK, rec.Code)

	s.Store = downStore{store.NewMemory()}
	rec = get(newRouter(s), "/health", models.Anonymous())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unreachable")
}

func TestSearchLawyers(t *testing.T) {
	s := newTestServer(t)
	router := newRouter(s)

	rec := get(router, "/lawyers?area=criminal&sort=experience", models.Anonymous())
	require.Equal(t, http.StatusOK, rec.Code)
	var result search.Result
	decode(t, rec, &result)
	require.NotEmpty(t, result.Items)
	assert.Equal(t, search.SortExperience, result.Sort)
	assert.Equal(t, "Rajesh Kumar Sharma", result.Items[0].Name)
	for _, l := range result.Items {
		assert.Contains(t, l.Specializations, "criminal")
	}

	_, ok, err := s.Cache.Get(context.Background(), cachePrefix+"lawyers:area=criminal&sort=experience")
	require.NoError(t, err)
	assert.True(t, ok)

	cached := get(router, "/lawyers?sort=experience&area=criminal", models.Anonymous())
	assert.JSONEq(t, rec.Body.String(), cached.Body.String())
}

func TestSearchLawyersRejectsBadQuery(t *testing.T) {
	router := newRouter(newTestServer(t))

	rec := get(router, "/lawyers?sort=cheapest", models.Anonymous())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "sort")

	rec = get(router, "/lawyers?page=0", models.Anonymous())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLawyerProfile(t *testing.T) {
	router := newRouter(newTestServer(t))

	rec := get(router, "/lawyers/1", models.Anonymous())
	require.Equal(t, http.StatusOK, rec.Code)
	var profile lawyerProfile
	decode(t, rec, &profile)
	assert.Equal(t, 1, profile.Lawyer.ID)
	assert.Equal(t, []string{"Criminal Law", "Civil Litigation"}, profile.Areas)
	assert.Equal(t, "Exceptional", profile.RatingLabel)
	assert.Equal(t, 2, profile.ReviewSummary.Count)

	assert.Equal(t, http.StatusNotFound, get(router, "/lawyers/999", models.Anonymous()).Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/lawyers/abc", models.Anonymous()).Code)
}

func TestFeaturedAndFilters(t *testing.T) {
	router := newRouter(newTestServer(t))

	rec := get(router, "/lawyers/featured", models.Anonymous())
	require.Equal(t, http.StatusOK, rec.Code)
	var featured struct {
		Items []struct {
			ID int `json:"id"`
		} `json:"items"`
	}
	decode(t, rec, &featured)
	require.Len(t, featured.Items, featuredCount)
	assert.Equal(t, 1, featured.Items[0].ID)

	rec = get(router, "/filters", models.Anonymous())
	require.Equal(t, http.StatusOK, rec.Code)
	var filters struct {
		Experience []int     `json:"experience"`
		Ratings    []float64 `json:"ratings"`
		Genders    []string  `json:"genders"`
		SortKeys   []string  `json:"sortKeys"`
	}
	decode(t, rec, &filters)
	assert.Equal(t, []int{5, 10, 15, 20}, filters.Experience)
	assert.Equal(t, []float64{9, 8.5, 8, 7}, filters.Ratings)
	assert.Equal(t, []string{"Male", "Female"}, filters.Genders)
	assert.Contains(t, filters.SortKeys, "fees_low")

	assert.Equal(t, http.StatusOK, get(router, "/practice-areas", models.Anonymous()).Code)
}

func TestCompare(t *testing.T) {
	router := newRouter(newTestServer(t))

	rec := get(router, "/compare?ids=2,1,2,999", models.Anonymous())
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Items []struct {
			ID int `json:"id"`
		} `json:"items"`
	}
	decode(t, rec, &body)
	require.Len(t, body.Items, 2)
	assert.Equal(t, 2, body.Items[0].ID)
	assert.Equal(t, 1, body.Items[1].ID)

	assert.Equal(t, http.StatusBadRequest, get(router, "/compare?ids=1,x", models.Anonymous()).Code)
}

func TestCompareToggle(t *testing.T) {
	router := newRouter(newTestServer(t))

	rec := send(router, http.MethodPost, "/compare/toggle", `{"ids":[1,2],"id":3}`, models.Anonymous())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ids":[1,2,3]}`, rec.Body.String())

	rec = send(router, http.MethodPost, "/compare/toggle", `{"ids":[1,2,3],"id":2}`, models.Anonymous())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ids":[1,3]}`, rec.Body.String())

	rec = send(router, http.MethodPost, "/compare/toggle", `{"ids":[1,2,3],"id":4}`, models.Anonymous())
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = send(router, http.MethodPost, "/compare/toggle", `{"ids":[1],"id":999}`, models.Anonymous())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = send(router, http.MethodPost, "/compare/toggle", `{"ids":[1]}`, models.Anonymous())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboards(t *testing.T) {
	s := newTestServer(t)
	router := newRouter(s)
	ctx := context.Background()

	user, _, err := s.Identity.Register(ctx, identity.RegisterInput{
		Name: "Asha Rao", Email: "asha@example.com", Password: "secret1", Role: models.RoleUser,
	})
	require.NoError(t, err)

	booked, err := s.Consultations.Book(ctx, user, consultations.BookRequest{
		LawyerID: 7, Name: "Asha Rao", Email: "asha@example.com",
	})
	require.NoError(t, err)

	rec := get(router, "/dashboard/user", user)
	require.Equal(t, http.StatusOK, rec.Code)
	var userView struct {
		Consultations []models.Consultation `json:"consultations"`
		Counts        consultations.Counts  `json:"counts"`
	}
	decode(t, rec, &userView)
	require.Len(t, userView.Consultations, 1)
	assert.Equal(t, booked.ID, userView.Consultations[0].ID)
	assert.Equal(t, 1, userView.Counts.Pending)

	lawyerID := 7
	karan := models.Principal{ID: "user-karan", Name: "Karan", Email: "karan@example.com", Role: models.RoleLawyer, LawyerID: &lawyerID}
	rec = get(router, "/dashboard/lawyer", karan)
	require.Equal(t, http.StatusOK, rec.Code)
	var lawyerView struct {
		Lawyer *struct {
			ID int `json:"id"`
		} `json:"lawyer"`
		Counts consultations.Counts `json:"counts"`
	}
	decode(t, rec, &lawyerView)
	require.NotNil(t, lawyerView.Lawyer)
	assert.Equal(t, 7, lawyerView.Lawyer.ID)
	assert.Equal(t, 1, lawyerView.Counts.Total)

	rec = get(router, "/dashboard/admin", models.Principal{ID: identity.AdminID, Role: models.RoleAdmin})
	require.Equal(t, http.StatusOK, rec.Code)
	var adminView struct {
		Stats adminStats `json:"stats"`
	}
	decode(t, rec, &adminView)
	assert.Equal(t, 1, adminView.Stats.RegisteredUsers)
	assert.Equal(t, 1, adminView.Stats.Consultations.Pending)
	assert.Positive(t, adminView.Stats.TotalLawyers)
	assert.LessOrEqual(t, adminView.Stats.VerifiedLawyers, adminView.Stats.TotalLawyers)
}

func TestLinkedLawyerFallsBackToName(t *testing.T) {
	l, ok := linkedLawyer(models.Principal{Name: "fatima", Role: models.RoleLawyer})
	require.True(t, ok)
	assert.Equal(t, 8, l.ID)

	_, ok = linkedLawyer(models.Principal{Name: "Nobody Known", Role: models.RoleLawyer})
	assert.False(t, ok)
}
