package user

import "time"

// User is the credential record provisioned alongside an employee. The login
// name is the employee's phone number; the initial secret is generated at
// provisioning time and stored bcrypt-hashed.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
