package consultations

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"courtvista-backend/internal/catalog"
	"courtvista-backend/internal/models"
	"courtvista-backend/internal/schedule"
	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("consultation not found")
	ErrLawyerNotFound    = errors.New("lawyer not found")
	ErrUnknownCaseType   = errors.New("unknown case type")
	ErrDateInPast        = errors.New("date is in the past")
	ErrInvalidTransition = errors.New("consultation is no longer pending")
	ErrForbidden         = errors.New("not allowed to act on this consultation")
	ErrInvalidStatus     = errors.New("invalid status")
)

// Mailer notifies clients. Both calls return the provider message id.
type Mailer interface {
	BookingReceived(ctx context.Context, c models.Consultation) (string, error)
	StatusChanged(ctx context.Context, c models.Consultation) (string, error)
}

type Service struct {
	repo   Repository
	mailer Mailer
	loc    *time.Location
	log    *slog.Logger
	now    func() time.Time
	mail   sync.WaitGroup
}

func NewService(repo Repository, mailer Mailer, loc *time.Location, log *slog.Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:   repo,
		mailer: mailer,
		loc:    loc,
		log:    log,
		now:    time.Now,
	}
}

func TimeSlots() []string {
	return schedule.Slots()
}

// Book records a pending consultation. Repeated submissions are stored as
// separate requests.
func (s *Service) Book(ctx context.Context, p models.Principal, req BookRequest) (models.Consultation, error) {
	lawyer, ok := catalog.LawyerByID(req.LawyerID)
	if !ok {
		return models.Consultation{}, ErrLawyerNotFound
	}

	caseType := strings.TrimSpace(req.CaseType)
	caseTypeName := ""
	if caseType != "" {
		area, ok := catalog.AreaByID(caseType)
		if !ok {
			return models.Consultation{}, ErrUnknownCaseType
		}
		caseTypeName = area.Name
	}

	date := strings.TrimSpace(req.Date)
	if date != "" {
		past, err := schedule.IsDatePast(date, s.loc, s.now())
		if err != nil {
			return models.Consultation{}, err
		}
		if past {
			return models.Consultation{}, ErrDateInPast
		}
	}

	now := s.now().UTC()
	c := models.Consultation{
		ID:           uuid.NewString(),
		LawyerID:     lawyer.ID,
		LawyerName:   lawyer.Name,
		ClientName:   strings.TrimSpace(req.Name),
		ClientEmail:  strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		CaseType:     caseType,
		CaseTypeName: caseTypeName,
		Date:         date,
		Time:         strings.TrimSpace(req.Time),
		Message:      strings.TrimSpace(req.Message),
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if !p.IsAnonymous() {
		c.ClientUserID = p.ID
	}

	err := s.repo.Update(ctx, func(items []models.Consultation) ([]models.Consultation, error) {
		return append(items, c), nil
	})
	if err != nil {
		return models.Consultation{}, err
	}

	s.notify("booking received", c, func(ctx context.Context, m Mailer) (string, error) {
		return m.BookingReceived(ctx, c)
	})
	return c, nil
}

func (s *Service) Confirm(ctx context.Context, p models.Principal, id string) (models.Consultation, error) {
	return s.transition(ctx, p, id, models.StatusConfirmed)
}

func (s *Service) Decline(ctx context.Context, p models.Principal, id string) (models.Consultation, error) {
	return s.transition(ctx, p, id, models.StatusDeclined)
}

// transition moves a pending consultation to a terminal status. Only the
// consultation's lawyer may do so.
func (s *Service) transition(ctx context.Context, p models.Principal, id string, to models.ConsultationStatus) (models.Consultation, error) {
	var updated models.Consultation
	err := s.repo.Update(ctx, func(items []models.Consultation) ([]models.Consultation, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if !IsLawyerFor(p, items[i]) {
				return nil, ErrForbidden
			}
			if items[i].Status != models.StatusPending {
				return nil, ErrInvalidTransition
			}
			items[i].Status = to
			items[i].UpdatedAt = s.now().UTC()
			updated = items[i]
			return items, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return models.Consultation{}, err
	}

	s.notify("status changed", updated, func(ctx context.Context, m Mailer) (string, error) {
		return m.StatusChanged(ctx, updated)
	})
	return updated, nil
}

func (s *Service) Get(ctx context.Context, p models.Principal, id string) (models.Consultation, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return models.Consultation{}, err
	}
	if !CanView(p, c) {
		return models.Consultation{}, ErrForbidden
	}
	return c, nil
}

// Find looks a consultation up without an access check.
func (s *Service) Find(ctx context.Context, id string) (models.Consultation, error) {
	return s.find(ctx, id)
}

func (s *Service) find(ctx context.Context, id string) (models.Consultation, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return models.Consultation{}, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Consultation{}, ErrNotFound
}

// ListForLawyer returns the consultations p acts on as lawyer, newest first.
// An empty status lists every status.
func (s *Service) ListForLawyer(ctx context.Context, p models.Principal, status models.ConsultationStatus) ([]models.Consultation, error) {
	return s.list(ctx, status, func(c models.Consultation) bool { return IsLawyerFor(p, c) })
}

// ListForClient returns the consultations p booked, newest first.
func (s *Service) ListForClient(ctx context.Context, p models.Principal, status models.ConsultationStatus) ([]models.Consultation, error) {
	return s.list(ctx, status, func(c models.Consultation) bool { return IsClientOf(p, c) })
}

func (s *Service) ListAll(ctx context.Context, status models.ConsultationStatus) ([]models.Consultation, error) {
	return s.list(ctx, status, func(models.Consultation) bool { return true })
}

// Confirmed returns every confirmed consultation in storage order.
func (s *Service) Confirmed(ctx context.Context) ([]models.Consultation, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Consultation, 0, len(items))
	for _, c := range items {
		if c.Status == models.StatusConfirmed {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Service) list(ctx context.Context, status models.ConsultationStatus, keep func(models.Consultation) bool) ([]models.Consultation, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Consultation, 0, len(items))
	for _, c := range items {
		if status != "" && c.Status != status {
			continue
		}
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Service) notify(kind string, c models.Consultation, send func(context.Context, Mailer) (string, error)) {
	if s.mailer == nil || c.ClientEmail == "" {
		return
	}
	s.mail.Add(1)
	go func() {
		defer s.mail.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer cancel()

		messageID, err := send(ctx, s.mailer)
		if err != nil {
			s.log.Warn("consultations email: send failed",
				slog.String("kind", kind),
				slog.String("consultation_id", c.ID),
				slog.String("error", err.Error()),
			)
			return
		}
		s.log.Info("consultations email: sent",
			slog.String("kind", kind),
			slog.String("consultation_id", c.ID),
			slog.String("message_id", messageID),
		)
	}()
}

// WaitForMail blocks until queued emails have been attempted.
func (s *Service) WaitForMail() {
	s.mail.Wait()
}
