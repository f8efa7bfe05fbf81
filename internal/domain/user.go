package domain

import "strings"

// Role represents the access level of a user
type Role string

const (
	RoleTraveler Role = "TRAVELER"
	RoleAdmin    Role = "ADMIN"
)

// Roles lists every valid role
var Roles = []Role{RoleTraveler, RoleAdmin}

// ParseRole parses a role name case-insensitively.
// Returns false when the name matches no known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range Roles {
		if r == valid {
			return r, true
		}
	}
	return "", false
}

// User is an authenticated account. Owned by the identity layer;
// the booking domain only reads it.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
}

// IsAdmin reports whether the user holds the ADMIN role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
