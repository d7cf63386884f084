package user

import "time"

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash *string
	Role         Role
	AccessActive bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleFinance    Role = "finance"
	RoleOperations Role = "operations"
)

// ParseRole maps a stored role string onto the closed enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleFinance, RoleOperations:
		return Role(s), true
	}
	return "", false
}
