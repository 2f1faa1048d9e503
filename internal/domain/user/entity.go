package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Employer - manages rows and reports
	RoleEmployee Role = "employee" // Records own punches only
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	// Name is the display identifier stamped on punch rows.
	Name      string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin checks if user is the employer/admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
