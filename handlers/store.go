package handlers

import (
	"context"

	"orchids/access"
	"orchids/models"

	"github.com/google/uuid"
)

// ProjectStore is the slice of the data service the project handlers use.
// *database.DB implements it.
type ProjectStore interface {
	access.Checker
	ListProjects(ctx context.Context, userID string) ([]models.Project, error)
	CreateProject(ctx context.Context, userID string, req models.CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID, userID string) (*models.Project, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, userID string, req models.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID, userID string) error
}

// ChatStore is the slice of the data service the chat handlers use.
type ChatStore interface {
	access.Checker
	GetChat(ctx context.Context, chatID, projectID uuid.UUID) (*models.ChatDetail, error)
	UpdateChat(ctx context.Context, chatID, projectID uuid.UUID, req models.UpdateChatRequest) (*models.Chat, error)
	DeleteChat(ctx context.Context, chatID, projectID uuid.UUID) error
}
