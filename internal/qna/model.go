package qna

import "time"

const (
	StatusPending = "pending"

	anonymousAsker  = "Anonymous"
	anonymousLawyer = "Anonymous Lawyer"
	anonymousAvatar = "A"
	unknownIcon     = "❓"
)

// Submission is a visitor question waiting for moderation.
type Submission struct {
	ID            string    `json:"id"`
	Question      string    `json:"question"`
	Category      string    `json:"category,omitempty"`
	AskedBy       string    `json:"askedBy"`
	AskedByUserID string    `json:"askedByUserId,omitempty"`
	Date          string    `json:"date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Entry struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Category     string   `json:"category"`
	CategoryName string   `json:"categoryName"`
	CategoryIcon string   `json:"categoryIcon"`
	AskedBy      string   `json:"askedBy"`
	Date         string   `json:"date"`
	AnswerCount  int      `json:"answerCount"`
	Answers      []Answer `json:"answers"`
}

type Answer struct {
	ID             string `json:"id"`
	LawyerID       int    `json:"lawyerId"`
	LawyerName     string `json:"lawyerName"`
	LawyerInitials string `json:"lawyerInitials"`
	ProfilePath    string `json:"profilePath"`
	Text           string `json:"text"`
	Date           string `json:"date"`
}

type AskRequest struct {
	Question string `json:"question" validate:"max=1000"`
	Category string `json:"category" validate:"max=64"`
}
