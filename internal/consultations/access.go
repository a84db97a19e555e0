package consultations

import (
	"strings"

	"courtvista-backend/internal/catalog"
	"courtvista-backend/internal/models"
)

// IsLawyerFor reports whether p acts as the lawyer on c. An explicit lawyer
// link decides alone. Without one, p matches when the first catalog lawyer
// whose name contains p's name is c's lawyer, or when c's lawyer name
// contains p's name.
func IsLawyerFor(p models.Principal, c models.Consultation) bool {
	if p.IsAnonymous() || p.Role != models.RoleLawyer {
		return false
	}
	if p.LawyerID != nil {
		return *p.LawyerID == c.LawyerID
	}
	name := strings.ToLower(strings.TrimSpace(p.Name))
	if name == "" {
		return false
	}
	if l, ok := catalog.FindByName(name); ok && l.ID == c.LawyerID {
		return true
	}
	return strings.Contains(strings.ToLower(c.LawyerName), name)
}

// IsClientOf matches by user id first, then by email ignoring case.
func IsClientOf(p models.Principal, c models.Consultation) bool {
	if p.IsAnonymous() {
		return false
	}
	if c.ClientUserID != "" && c.ClientUserID == p.ID {
		return true
	}
	email := strings.TrimSpace(p.Email)
	return email != "" && strings.EqualFold(email, strings.TrimSpace(c.ClientEmail))
}

// CanView admits the client, the lawyer and the admin.
func CanView(p models.Principal, c models.Consultation) bool {
	if p.IsAnonymous() {
		return false
	}
	switch p.Role {
	case models.RoleAdmin:
		return true
	case models.RoleLawyer:
		return IsLawyerFor(p, c) || IsClientOf(p, c)
	case models.RoleUser:
		return IsClientOf(p, c)
	case models.RoleAnonymous:
		return false
	default:
		return false
	}
}
