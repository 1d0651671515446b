package models

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Project is a workspace owned by exactly one user.
// UserID is the opaque identity issued by the auth provider.
// Chats belong to a project and are removed with it.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	URL         *string   `json:"url" db:"url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CreateProjectRequest is the payload for creating a new project.
// Name is required; empty optional fields are stored as NULL.
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

// Validate checks the request before it reaches the database.
// The returned error text is safe to show to the client.
func (r CreateProjectRequest) Validate() error {
	return validation.Validate(strings.TrimSpace(r.Name),
		validation.Required.Error("Name is required"),
		validation.RuneLength(0, 255).Error("Name must be at most 255 characters"),
	)
}

// Normalize trims the name and turns empty optional strings into nil.
func (r *CreateProjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = nullIfEmpty(r.Description)
	r.URL = nullIfEmpty(r.URL)
}

// UpdateProjectRequest replaces all editable fields at once.
// A field left out of the body is written as NULL.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

// ProjectResponse wraps a single project.
type ProjectResponse struct {
	Project *Project `json:"project"`
}

// ProjectsResponse is the response format for project listings.
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
}

func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
