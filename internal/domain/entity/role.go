// Package entity contains the core business objects of the registry.
package entity

// Role represents the type of role an account can have in the registry.
type Role string

const (
	// RoleNGO indicates a non-governmental restoration organization.
	RoleNGO Role = "NGO"
	// RoleCommunity indicates a local community group.
	RoleCommunity Role = "COMMUNITY"
	// RoleAdmin indicates a registry administrator (verifier).
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleNGO, RoleCommunity, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanSubmit reports whether the role may register project sites and upload
// plantation records.
func (r Role) CanSubmit() bool {
	return r == RoleNGO || r == RoleCommunity
}

// CanVerify reports whether the role may verify plantation records and issue
// carbon credits.
func (r Role) CanVerify() bool {
	return r == RoleAdmin
}

// DashboardPath returns the application path of the dashboard matching the role.
func (r Role) DashboardPath() string {
	if r == RoleAdmin {
		return "/admin-dashboard"
	}

	return "/ngo-dashboard"
}

// RoleFromString converts a string to a Role, reporting whether it is valid.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
