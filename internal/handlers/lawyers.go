package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"courtvista-backend/internal/catalog"
	"courtvista-backend/internal/search"
	"courtvista-backend/internal/transport"
	"github.com/go-chi/chi/v5"
)

const featuredCount = 4

var (
	experienceOptions = []int{5, 10, 15, 20}
	ratingOptions     = []float64{9, 8.5, 8, 7}
	genderOptions     = []string{"Male", "Female"}
)

type lawyerProfile struct {
	Lawyer        catalog.Lawyer        `json:"lawyer"`
	Areas         []string              `json:"areas"`
	RatingLabel   string                `json:"ratingLabel"`
	ReviewSummary catalog.ReviewSummary `json:"reviewSummary"`
}

func (s *Server) SearchLawyers(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	values := r.URL.Query()

	q, err := search.ParseQuery(values)
	if err != nil {
		var fieldErr *search.FieldError
		if errors.As(err, &fieldErr) {
			log.Warn("lawyers search: invalid query", slog.String("field", fieldErr.Field))
			transport.WriteError(w, http.StatusBadRequest, "invalid query", map[string]string{
				fieldErr.Field: fieldErr.Reason,
			})
			return
		}
		transport.WriteError(w, http.StatusBadRequest, "invalid query", nil)
		return
	}

	s.serveCached(w, r, log, "lawyers search", "lawyers:"+values.Encode(), func() interface{} {
		return search.Run(catalog.Lawyers(), q.Criteria, q.Sort, q.Page)
	})
}

func (s *Server) FeaturedLawyers(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": catalog.Featured(featuredCount),
	})
}

func (s *Server) GetLawyer(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	raw := strings.TrimSpace(chi.URLParam(r, "id"))

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		log.Warn("lawyers get: invalid id", slog.String("id", raw))
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	l, ok := catalog.LawyerByID(id)
	if !ok {
		log.Warn("lawyers get: not found", slog.Int("lawyer_id", id))
		transport.WriteError(w, http.StatusNotFound, "lawyer not found", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, lawyerProfile{
		Lawyer:        l,
		Areas:         catalog.AreaNames(l.Specializations),
		RatingLabel:   catalog.RatingLabel(l.Rating),
		ReviewSummary: catalog.SummarizeReviews(l),
	})
}

func (s *Server) PracticeAreas(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": catalog.PracticeAreas(),
	})
}

func (s *Server) Filters(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	s.serveCached(w, r, log, "filters", "filters", func() interface{} {
		return map[string]interface{}{
			"areas":      catalog.PracticeAreas(),
			"cities":     catalog.Cities(),
			"languages":  catalog.Languages(),
			"experience": experienceOptions,
			"ratings":    ratingOptions,
			"genders":    genderOptions,
			"sortKeys":   search.SortKeys,
		}
	})
}
