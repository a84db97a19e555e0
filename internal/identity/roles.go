package identity

import (
	"net/http"

	"courtvista-backend/internal/models"
)

const (
	PathHome            = "/"
	PathLogin           = "/login"
	PathDashboardAdmin  = "/dashboard/admin"
	PathDashboardLawyer = "/dashboard/lawyer"
	PathDashboardUser   = "/dashboard/user"
)

func DashboardPath(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return PathDashboardAdmin
	case models.RoleLawyer:
		return PathDashboardLawyer
	case models.RoleUser:
		return PathDashboardUser
	case models.RoleAnonymous:
		return PathLogin
	default:
		return PathLogin
	}
}

// Decision is the outcome of a route guard check.
type Decision struct {
	Allowed  bool
	Status   int
	Redirect string
}

// Guard admits p when its role is in allowed. Anonymous visitors are sent to
// the login page; signed-in users with another role are sent home.
func Guard(p models.Principal, allowed ...models.Role) Decision {
	role := p.Role
	if p.IsAnonymous() {
		role = models.RoleAnonymous
	}

	switch role {
	case models.RoleAnonymous:
		for _, r := range allowed {
			if r == models.RoleAnonymous {
				return Decision{Allowed: true, Status: http.StatusOK}
			}
		}
		return Decision{Status: http.StatusUnauthorized, Redirect: PathLogin}
	case models.RoleUser, models.RoleLawyer, models.RoleAdmin:
		if len(allowed) == 0 {
			return Decision{Allowed: true, Status: http.StatusOK}
		}
		for _, r := range allowed {
			if r == role {
				return Decision{Allowed: true, Status: http.StatusOK}
			}
		}
		return Decision{Status: http.StatusForbidden, Redirect: PathHome}
	default:
		return Decision{Status: http.StatusUnauthorized, Redirect: PathLogin}
	}
}

type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var publicLinks = []NavLink{
	{Label: "Home", Path: "/"},
	{Label: "Find a Lawyer", Path: "/search"},
	{Label: "Compare", Path: "/compare"},
	{Label: "Legal Q&A", Path: "/qna"},
}

func NavLinks(role models.Role) []NavLink {
	links := append([]NavLink(nil), publicLinks...)
	switch role {
	case models.RoleUser, models.RoleLawyer:
		links = append(links,
			NavLink{Label: "Messages", Path: "/messages"},
			NavLink{Label: "Dashboard", Path: DashboardPath(role)},
		)
	case models.RoleAdmin:
		links = append(links, NavLink{Label: "Dashboard", Path: DashboardPath(role)})
	case models.RoleAnonymous:
		links = append(links,
			NavLink{Label: "Login", Path: "/login"},
			NavLink{Label: "Register", Path: "/register"},
		)
	}
	return links
}
