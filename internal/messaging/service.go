package messaging

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"courtvista-backend/internal/consultations"
	"courtvista-backend/internal/models"
	"github.com/google/uuid"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrConversationClosed   = errors.New("conversation is open only for confirmed consultations")
	ErrEmptyMessage         = errors.New("message text is required")
	ErrForbidden            = errors.New("not a participant in this conversation")
)

// ConsultationSource is the read side of the consultation store.
type ConsultationSource interface {
	Find(ctx context.Context, id string) (models.Consultation, error)
	Confirmed(ctx context.Context) ([]models.Consultation, error)
}

// Publisher fans a stored message out to live subscribers.
type Publisher interface {
	Publish(conversationID string, m models.Message)
}

type Service struct {
	consultations ConsultationSource
	messages      Repository
	publisher     Publisher
	now           func() time.Time
}

func NewService(consultations ConsultationSource, messages Repository, publisher Publisher) *Service {
	return &Service{
		consultations: consultations,
		messages:      messages,
		publisher:     publisher,
		now:           time.Now,
	}
}

func isParticipant(p models.Principal, c models.Consultation) bool {
	if p.Role == models.RoleLawyer && consultations.IsLawyerFor(p, c) {
		return true
	}
	return consultations.IsClientOf(p, c)
}

func counterpart(p models.Principal, c models.Consultation) (string, string) {
	if p.Role == models.RoleLawyer && consultations.IsLawyerFor(p, c) {
		return c.ClientName, "Client"
	}
	return c.LawyerName, "Lawyer"
}

// ListConversations builds the inbox of p from confirmed consultations,
// most recent activity first.
func (s *Service) ListConversations(ctx context.Context, p models.Principal) ([]Conversation, error) {
	if p.IsAnonymous() {
		return []Conversation{}, nil
	}
	confirmed, err := s.consultations.Confirmed(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.messages.List(ctx)
	if err != nil {
		return nil, err
	}

	byConversation := make(map[string][]models.Message)
	for _, m := range all {
		byConversation[m.ConversationID] = append(byConversation[m.ConversationID], m)
	}

	isLawyer := p.Role == models.RoleLawyer
	out := make([]Conversation, 0)
	for _, c := range confirmed {
		mine := false
		switch p.Role {
		case models.RoleLawyer:
			mine = consultations.IsLawyerFor(p, c)
		case models.RoleUser:
			mine = consultations.IsClientOf(p, c)
		case models.RoleAdmin, models.RoleAnonymous:
			mine = false
		}
		if !mine {
			continue
		}

		conv := Conversation{
			ID:              c.ID,
			CaseType:        c.CaseTypeName,
			LastMessage:     DefaultLastMessage,
			LastMessageTime: c.CreatedAt,
			LawyerID:        c.LawyerID,
			IsLawyer:        isLawyer,
		}
		if conv.CaseType == "" {
			conv.CaseType = DefaultCaseType
		}
		if isLawyer {
			conv.OtherName, conv.OtherRole = c.ClientName, "Client"
		} else {
			conv.OtherName, conv.OtherRole = c.LawyerName, "Lawyer"
		}

		var latest *models.Message
		for i, m := range byConversation[c.ID] {
			if m.SenderID != p.ID && !m.Read {
				conv.UnreadCount++
			}
			if latest == nil || m.Timestamp.After(latest.Timestamp) {
				latest = &byConversation[c.ID][i]
			}
		}
		if latest != nil {
			if latest.Text != "" {
				conv.LastMessage = latest.Text
			}
			conv.LastMessageTime = latest.Timestamp
		}
		out = append(out, conv)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastMessageTime.After(out[j].LastMessageTime)
	})
	return out, nil
}

// Thread returns a conversation's consultation and its messages, oldest first.
func (s *Service) Thread(ctx context.Context, p models.Principal, conversationID string) (Thread, error) {
	c, err := s.lookup(ctx, conversationID)
	if err != nil {
		return Thread{}, err
	}
	participant := isParticipant(p, c)
	if !participant && p.Role != models.RoleAdmin {
		return Thread{}, ErrForbidden
	}

	all, err := s.messages.List(ctx)
	if err != nil {
		return Thread{}, err
	}
	msgs := make([]models.Message, 0)
	for _, m := range all {
		if m.ConversationID == conversationID {
			msgs = append(msgs, m)
		}
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})

	otherName, otherRole := counterpart(p, c)
	return Thread{
		Consultation: c,
		OtherName:    otherName,
		OtherRole:    otherRole,
		Messages:     msgs,
		CanSend:      participant && c.Status == models.StatusConfirmed,
	}, nil
}

// Authorize checks that p may follow the conversation live.
func (s *Service) Authorize(ctx context.Context, p models.Principal, conversationID string) error {
	c, err := s.lookup(ctx, conversationID)
	if err != nil {
		return err
	}
	if !isParticipant(p, c) {
		return ErrForbidden
	}
	return nil
}

// Send appends a message from p to a confirmed conversation.
func (s *Service) Send(ctx context.Context, p models.Principal, conversationID, text string) (models.Message, error) {
	if p.IsAnonymous() {
		return models.Message{}, ErrForbidden
	}
	c, err := s.lookup(ctx, conversationID)
	if err != nil {
		return models.Message{}, err
	}
	if c.Status != models.StatusConfirmed {
		return models.Message{}, ErrConversationClosed
	}
	if !isParticipant(p, c) {
		return models.Message{}, ErrForbidden
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, ErrEmptyMessage
	}

	m := models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       p.ID,
		SenderName:     p.Name,
		SenderRole:     p.Role,
		Text:           text,
		Timestamp:      s.now().UTC(),
		Read:           false,
	}
	err = s.messages.Update(ctx, func(items []models.Message) ([]models.Message, error) {
		return append(items, m), nil
	})
	if err != nil {
		return models.Message{}, err
	}

	if s.publisher != nil {
		s.publisher.Publish(conversationID, m)
	}
	return m, nil
}

func (s *Service) lookup(ctx context.Context, conversationID string) (models.Consultation, error) {
	c, err := s.consultations.Find(ctx, conversationID)
	if err != nil {
		if errors.Is(err, consultations.ErrNotFound) {
			return models.Consultation{}, ErrConversationNotFound
		}
		return models.Consultation{}, err
	}
	return c, nil
}
