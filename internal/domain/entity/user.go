package entity

import "time"

// Role of a system user. The role, together with the assigned district,
// determines which districts' resources the user may touch.
type Role string

// Valid roles.
const (
	RoleAdmin  Role = "Admin"
	RoleZone   Role = "Zone"
	RoleWoreda Role = "Woreda"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleZone || r == RoleWoreda
}

// User represents an account in the identity directory. Each user is bound to
// exactly one district.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt hash, never the plain password after persist
	Role         Role
	Sex          string
	DistrictID   int64
	Phone        string
	Position     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
