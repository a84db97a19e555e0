package qna

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"courtvista-backend/internal/catalog"
	"courtvista-backend/internal/models"
	"courtvista-backend/internal/schedule"
	"courtvista-backend/internal/store"
	"courtvista-backend/internal/utils"
	"github.com/google/uuid"
)

var (
	ErrEmptyQuestion   = errors.New("question text is required")
	ErrUnknownCategory = errors.New("unknown category")
)

type Service struct {
	submissions *store.Collection[Submission]
	loc         *time.Location
	now         func() time.Time
}

func NewService(s store.Store, loc *time.Location, log *slog.Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		submissions: store.NewCollection[Submission](s, store.KeyQuestions, log),
		loc:         loc,
		now:         time.Now,
	}
}

// List returns the answered catalog questions, optionally for one category.
func (s *Service) List(category string) []Entry {
	category = strings.TrimSpace(category)
	out := make([]Entry, 0)
	for _, q := range catalog.Questions() {
		if category != "" && q.Category != category {
			continue
		}
		out = append(out, enrich(q))
	}
	return out
}

func enrich(q catalog.Question) Entry {
	e := Entry{
		ID:           q.ID,
		Question:     q.Question,
		Category:     q.Category,
		CategoryName: q.Category,
		CategoryIcon: unknownIcon,
		AskedBy:      q.AskedBy,
		Date:         q.Date,
		AnswerCount:  len(q.Answers),
		Answers:      make([]Answer, 0, len(q.Answers)),
	}
	if area, ok := catalog.AreaByID(q.Category); ok {
		e.CategoryName = area.Name
		e.CategoryIcon = area.Icon
	}
	for _, a := range q.Answers {
		ans := Answer{
			ID:             a.ID,
			LawyerID:       a.LawyerID,
			LawyerName:     anonymousLawyer,
			LawyerInitials: anonymousAvatar,
			ProfilePath:    fmt.Sprintf("/lawyer/%d", a.LawyerID),
			Text:           a.Text,
			Date:           a.Date,
		}
		if l, ok := catalog.LawyerByID(a.LawyerID); ok {
			ans.LawyerName = l.Name
			ans.LawyerInitials = catalog.Initials(l.Name)
		}
		e.Answers = append(e.Answers, ans)
	}
	return e
}

// Ask stores a question for moderation.
func (s *Service) Ask(ctx context.Context, p models.Principal, req AskRequest) (Submission, error) {
	text := strings.TrimSpace(req.Question)
	if text == "" {
		return Submission{}, ErrEmptyQuestion
	}
	category := strings.TrimSpace(req.Category)
	if category != "" {
		if _, ok := catalog.AreaByID(category); !ok {
			return Submission{}, ErrUnknownCategory
		}
	}

	now := s.now()
	sub := Submission{
		ID:        questionID(text),
		Question:  text,
		Category:  category,
		AskedBy:   anonymousAsker,
		Date:      now.In(s.loc).Format(schedule.DateLayout),
		Status:    StatusPending,
		CreatedAt: now.UTC(),
	}
	if !p.IsAnonymous() {
		if name := strings.TrimSpace(p.Name); name != "" {
			sub.AskedBy = name
		}
		sub.AskedByUserID = p.ID
	}

	err := s.submissions.Update(ctx, func(items []Submission) ([]Submission, error) {
		return append(items, sub), nil
	})
	if err != nil {
		return Submission{}, err
	}
	return sub, nil
}

func questionID(text string) string {
	short := strings.SplitN(uuid.NewString(), "-", 2)[0]
	slug := utils.SlugWords(text, 6)
	if slug == "" {
		return "q-" + short
	}
	return "q-" + slug + "-" + short
}

// Submitted lists stored questions, newest first.
func (s *Service) Submitted(ctx context.Context) ([]Submission, error) {
	items, err := s.submissions.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
