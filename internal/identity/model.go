package identity

import "courtvista-backend/internal/models"

type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProfileRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
	Bio          string `json:"bio" validate:"max=2000"`
	Jurisdiction string `json:"jurisdiction"`
	Experience   string `json:"experience"`
	Languages    string `json:"languages"`
}

type LinkLawyerRequest struct {
	LawyerID int `json:"lawyerId" validate:"required,gt=0"`
}

// Tokens are the signed credentials handed to a client for one session.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

type SessionResponse struct {
	User          models.Principal `json:"user"`
	DashboardPath string           `json:"dashboardPath"`
	Tokens        *Tokens          `json:"tokens,omitempty"`
}

type MeResponse struct {
	User          *models.Principal `json:"user"`
	Role          models.Role       `json:"role"`
	DashboardPath string            `json:"dashboardPath"`
	NavLinks      []NavLink         `json:"navLinks"`
}
