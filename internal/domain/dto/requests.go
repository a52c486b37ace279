package dto

import (
	"time"

	"github.com/facultyboard/server/internal/domain"
)

type SignupRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	FullName    string  `json:"full_name" validate:"required"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Profile   *domain.FacultyProfile `json:"profile"`
	AuthToken string                 `json:"auth_token"`
	IsHOD     bool                   `json:"is_hod"`
}

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
}

type CreateActivityRequest struct {
	Title string `json:"title" validate:"required"`
	// OccurredAt is only honored by categories whose date column is not
	// created_at (workshops, FDP).
	OccurredAt  *time.Time         `json:"occurred_at,omitempty"`
	Dimensions  map[string]*string `json:"dimensions,omitempty"`
	ArtifactURL *string            `json:"artifact_url,omitempty" validate:"omitempty,url"`
}
