package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleLawyer    Role = "lawyer"
	RoleAdmin     Role = "admin"
)

func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAnonymous:
		return RoleAnonymous, true
	case RoleUser:
		return RoleUser, true
	case RoleLawyer:
		return RoleLawyer, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Account is a stored login. Password holds a bcrypt hash.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	Role         Role      `json:"role"`
	LawyerID     *int      `json:"lawyerId,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Jurisdiction string    `json:"jurisdiction,omitempty"`
	Experience   string    `json:"experience,omitempty"`
	Languages    string    `json:"languages,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Principal is the identity held by a session: an account without its password.
type Principal struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	LawyerID     *int   `json:"lawyerId,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Jurisdiction string `json:"jurisdiction,omitempty"`
	Experience   string `json:"experience,omitempty"`
	Languages    string `json:"languages,omitempty"`
}

func (a Account) Principal() Principal {
	return Principal{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Role:         a.Role,
		LawyerID:     a.LawyerID,
		Phone:        a.Phone,
		Bio:          a.Bio,
		Jurisdiction: a.Jurisdiction,
		Experience:   a.Experience,
		Languages:    a.Languages,
	}
}

func Anonymous() Principal {
	return Principal{Role: RoleAnonymous}
}

func (p Principal) IsAnonymous() bool {
	return p.Role == RoleAnonymous || p.Role == "" || p.ID == ""
}

type ConsultationStatus string

const (
	StatusPending   ConsultationStatus = "pending"
	StatusConfirmed ConsultationStatus = "confirmed"
	StatusDeclined  ConsultationStatus = "declined"
)

func (s ConsultationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined:
		return true
	default:
		return false
	}
}

type Consultation struct {
	ID           string             `json:"id"`
	LawyerID     int                `json:"lawyerId"`
	LawyerName   string             `json:"lawyerName"`
	ClientUserID string             `json:"clientUserId,omitempty"`
	ClientName   string             `json:"clientName"`
	ClientEmail  string             `json:"clientEmail"`
	Phone        string             `json:"phone,omitempty"`
	CaseType     string             `json:"caseType,omitempty"`
	CaseTypeName string             `json:"caseTypeName,omitempty"`
	Date         string             `json:"date,omitempty"`
	Time         string             `json:"time,omitempty"`
	Message      string             `json:"message,omitempty"`
	Status       ConsultationStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	SenderName     string    `json:"senderName"`
	SenderRole     Role      `json:"senderRole"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}
