package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"courtvista-backend/internal/catalog"
	"courtvista-backend/internal/consultations"
	"courtvista-backend/internal/middleware"
	"courtvista-backend/internal/models"
	"courtvista-backend/internal/transport"
)

type adminStats struct {
	RegisteredUsers int                  `json:"registeredUsers"`
	TotalLawyers    int                  `json:"totalLawyers"`
	VerifiedLawyers int                  `json:"verifiedLawyers"`
	TotalReviews    int                  `json:"totalReviews"`
	Consultations   consultations.Counts `json:"consultations"`
}

// linkedLawyer resolves the catalog entry a lawyer account acts for.
func linkedLawyer(p models.Principal) (catalog.Lawyer, bool) {
	if p.LawyerID != nil {
		return catalog.LawyerByID(*p.LawyerID)
	}
	return catalog.FindByName(p.Name)
}

func (s *Server) UserDashboard(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	p := middleware.PrincipalFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Consultations.ListForClient(ctx, p, "")
	if err != nil {
		log.Error("dashboard user: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	log.Info("dashboard user: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user":          p,
		"consultations": items,
		"counts":        consultations.CountByStatus(items),
	})
}

func (s *Server) LawyerDashboard(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	p := middleware.PrincipalFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Consultations.ListForLawyer(ctx, p, "")
	if err != nil {
		log.Error("dashboard lawyer: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	response := map[string]interface{}{
		"user":          p,
		"consultations": items,
		"counts":        consultations.CountByStatus(items),
	}
	if l, ok := linkedLawyer(p); ok {
		response["lawyer"] = l
	}

	log.Info("dashboard lawyer: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (s *Server) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users, err := s.Identity.CountAccounts(ctx)
	if err != nil {
		log.Error("dashboard admin: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}
	items, err := s.Consultations.ListAll(ctx, "")
	if err != nil {
		log.Error("dashboard admin: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "store error", nil)
		return
	}

	cat := catalog.CatalogStats()
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"stats": adminStats{
			RegisteredUsers: users,
			TotalLawyers:    cat.TotalLawyers,
			VerifiedLawyers: cat.VerifiedLawyers,
			TotalReviews:    cat.TotalReviews,
			Consultations:   consultations.CountByStatus(items),
		},
	})
}
