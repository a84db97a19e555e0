package consultations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courtvista-backend/internal/middleware"
	"courtvista-backend/internal/models"
	"courtvista-backend/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *Service) {
	t.Helper()
	svc := newTestService(t, nil)
	h := NewHandler(svc, validation.New(), discardLogger())

	r := chi.NewRouter()
	r.Get("/consultations/slots", h.Slots)
	r.Post("/consultations", h.Create)
	r.Get("/consultations/{id}", h.Get)
	r.Patch("/consultations/{id}/confirm", h.Confirm)
	r.Patch("/consultations/{id}/decline", h.Decline)
	r.Get("/admin/consultations", h.AdminList)
	return r, svc
}

func call(router http.Handler, method, path, body string, p models.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req = req.WithContext(middleware.WithPrincipal(req.Context(), p, "sid"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeConsultation(t *testing.T, rec *httptest.ResponseRecorder) models.Consultation {
	t.Helper()
	var body struct {
		Consultation models.Consultation `json:"consultation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Consultation
}

func TestSlotsHandler(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := call(router, http.MethodGet, "/consultations/slots", "", models.Anonymous())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "09:00 - 10:00 AM")
}

func TestCreateAndConfirmHandler(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"lawyerId":7,"name":"A. Singh","email":"a@x.com","caseType":"corporate","date":"2026-03-12","time":"10:00 - 11:00 AM"}`
	rec := call(router, http.MethodPost, "/consultations", body, models.Anonymous())
	require.Equal(t, http.StatusCreated, rec.Code)
	c := decodeConsultation(t, rec)
	assert.Equal(t, models.StatusPending, c.Status)

	rec = call(router, http.MethodPatch, "/consultations/"+c.ID+"/confirm", "", priya)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = call(router, http.MethodPatch, "/consultations/"+c.ID+"/confirm", "", karan)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusConfirmed, decodeConsultation(t, rec).Status)

	rec = call(router, http.MethodPatch, "/consultations/"+c.ID+"/decline", "", karan)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(router, http.MethodPatch, "/consultations/missing/decline", "", karan)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(router, http.MethodGet, "/consultations/"+c.ID, "", client)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = call(router, http.MethodGet, "/consultations/"+c.ID, "", priya)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateHandlerValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := map[string]struct {
		body   string
		status int
	}{
		"missing name":   {`{"lawyerId":1,"email":"a@x.com"}`, http.StatusBadRequest},
		"bad email":      {`{"lawyerId":1,"name":"A","email":"nope"}`, http.StatusBadRequest},
		"bad slot":       {`{"lawyerId":1,"name":"A","email":"a@x.com","time":"13:00"}`, http.StatusBadRequest},
		"bad date":       {`{"lawyerId":1,"name":"A","email":"a@x.com","date":"12/03/2026"}`, http.StatusBadRequest},
		"past date":      {`{"lawyerId":1,"name":"A","email":"a@x.com","date":"2026-01-01"}`, http.StatusBadRequest},
		"unknown area":   {`{"lawyerId":1,"name":"A","email":"a@x.com","caseType":"space"}`, http.StatusBadRequest},
		"unknown lawyer": {`{"lawyerId":77,"name":"A","email":"a@x.com"}`, http.StatusNotFound},
		"unknown field":  {`{"lawyerId":1,"name":"A","email":"a@x.com","fee":1}`, http.StatusBadRequest},
	}
	for name, tc := range cases {
		rec := call(router, http.MethodPost, "/consultations", tc.body, models.Anonymous())
		assert.Equal(t, tc.status, rec.Code, name)
	}
}

func TestAdminListHandler(t *testing.T) {
	router, svc := newTestRouter(t)
	bookForKaran(t, svc, client)
	bookForKaran(t, svc, client)

	rec := call(router, http.MethodGet, "/admin/consultations?status=pending&limit=1", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Items  []models.Consultation `json:"items"`
		Counts Counts                `json:"counts"`
		Total  int                   `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, 2, body.Counts.Pending)

	rec = call(router, http.MethodGet, "/admin/consultations?status=archived", "", admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
