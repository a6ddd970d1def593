package model

import "time"

// Role is the access level of a dashboard user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEngineer   Role = "engineer"
	RoleTechnician Role = "technician"
)

// User is a dashboard account. Password is plaintext fixture data and must be
// stripped before a User leaves the service layer.
type User struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"password,omitempty"`
	Role       Role      `json:"role"`
	Avatar     string    `json:"avatar"`
	FirstLogin bool      `json:"first_login"`
	CompanyID  int       `json:"company_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Sanitized returns a copy with the password removed.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Company is the singleton company settings record.
type Company struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Timezone       string `json:"timezone"`
	Language       string `json:"language"`
	ServiceType    string `json:"service_type"`
	Industry       string `json:"industry"`
	SetupCompleted bool   `json:"setup_completed"`
}
