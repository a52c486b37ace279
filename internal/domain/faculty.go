package domain

import "time"

// FacultyProfile is the identity record activities are joined against.
// Department and designation are the grouping keys for the rollups.
type FacultyProfile struct {
	ID          string    `db:"id" json:"id"`
	Email       *string   `db:"email" json:"email,omitempty"`
	FullName    *string   `db:"full_name" json:"full_name,omitempty"`
	Department  *string   `db:"department" json:"department,omitempty"`
	Designation *string   `db:"designation" json:"designation,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// DisplayName falls back to email when no full name is set.
func (f *FacultyProfile) DisplayName() string {
	if f.FullName != nil && *f.FullName != "" {
		return *f.FullName
	}
	if f.Email != nil && *f.Email != "" {
		return *f.Email
	}
	return "Unknown"
}

// User holds login credentials. The profile row shares the user's id.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsHOD        bool      `db:"is_hod"`
	CreatedAt    time.Time `db:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
