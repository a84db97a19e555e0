package messaging

import (
	"time"

	"courtvista-backend/internal/models"
)

const (
	DefaultCaseType    = "Consultation"
	DefaultLastMessage = "No messages yet. Start the conversation!"
)

// Conversation summarises one confirmed consultation for an inbox.
type Conversation struct {
	ID              string    `json:"id"`
	OtherName       string    `json:"otherName"`
	OtherRole       string    `json:"otherRole"`
	CaseType        string    `json:"caseType"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	UnreadCount     int       `json:"unreadCount"`
	LawyerID        int       `json:"lawyerId"`
	IsLawyer        bool      `json:"isLawyer"`
}

type Thread struct {
	Consultation models.Consultation `json:"consultation"`
	OtherName    string              `json:"otherName"`
	OtherRole    string              `json:"otherRole"`
	Messages     []models.Message    `json:"messages"`
	CanSend      bool                `json:"canSend"`
}

type SendRequest struct {
	Text string `json:"text" validate:"max=4000"`
}
