package auth

// Role codes as issued by the backend.
const (
	RoleSuperAdmin = "1"
	RoleAdmin      = "2"
	RoleHR         = "3"
	RoleEmployee   = "4"
	RoleManager    = "5"
)

// RoleLabel maps a backend role code to a display label. Unrecognized or
// absent codes fall back to a generic label rather than erroring.
func RoleLabel(code string) string {
	switch code {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleAdmin:
		return "Admin"
	case RoleHR:
		return "HR"
	case RoleEmployee:
		return "Employee"
	case RoleManager:
		return "Manager"
	default:
		return "User"
	}
}

// LandingPath is where a freshly authenticated identity lands. Every role
// currently shares the dashboard; the mapping stays a function so a
// per-role landing page is a one-line change.
func LandingPath(code string) string {
	return "/app"
}
