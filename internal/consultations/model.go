package consultations

import "courtvista-backend/internal/models"

type BookRequest struct {
	LawyerID int    `json:"lawyerId" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	CaseType string `json:"caseType" validate:"max=64"`
	Date     string `json:"date" validate:"omitempty,date"`
	Time     string `json:"time" validate:"omitempty,slot"`
	Message  string `json:"message" validate:"max=4000"`
}

// Counts are consultation totals per status.
type Counts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Declined  int `json:"declined"`
}

func CountByStatus(list []models.Consultation) Counts {
	var c Counts
	for _, item := range list {
		c.Total++
		switch item.Status {
		case models.StatusPending:
			c.Pending++
		case models.StatusConfirmed:
			c.Confirmed++
		case models.StatusDeclined:
			c.Declined++
		}
	}
	return c
}
