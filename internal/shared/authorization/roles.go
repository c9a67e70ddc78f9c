package authorization

import "fmt"

// UserRole is the role claim carried in access tokens. Admins bypass setup
// access rules and get the admin subscription plan.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsAdmin() bool { return r == RoleAdmin }

// ParseUserRole maps unknown or empty roles to RoleUser.
func ParseUserRole(s string) UserRole {
	if r, err := ParseStrictRole(s); err == nil {
		return r
	}
	return RoleUser
}

// ParseStrictRole rejects anything that is not a known role.
func ParseStrictRole(s string) (UserRole, error) {
	switch r := UserRole(s); r {
	case RoleAdmin, RoleUser:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}
