package handlers

import (
	"context"

	"orchids/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockStore records every data-layer call so tests can assert that denied
// requests never reach the database.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) ProjectOwned(ctx context.Context, projectID uuid.UUID, userID string) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) ChatInProject(ctx context.Context, chatID, projectID uuid.UUID) (bool, error) {
	args := m.Called(ctx, chatID, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	args := m.Called(ctx, userID)
	projects, _ := args.Get(0).([]models.Project)
	return projects, args.Error(1)
}

func (m *mockStore) CreateProject(ctx context.Context, userID string, req models.CreateProjectRequest) (*models.Project, error) {
	args := m.Called(ctx, userID, req)
	project, _ := args.Get(0).(*models.Project)
	return project, args.Error(1)
}

func (m *mockStore) GetProject(ctx context.Context, projectID uuid.UUID, userID string) (*models.Project, error) {
	args := m.Called(ctx, projectID, userID)
	project, _ := args.Get(0).(*models.Project)
	return project, args.Error(1)
}

func (m *mockStore) UpdateProject(ctx context.Context, projectID uuid.UUID, userID string, req models.UpdateProjectRequest) (*models.Project, error) {
	args := m.Called(ctx, projectID, userID, req)
	project, _ := args.Get(0).(*models.Project)
	return project, args.Error(1)
}

func (m *mockStore) DeleteProject(ctx context.Context, projectID uuid.UUID, userID string) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func (m *mockStore) GetChat(ctx context.Context, chatID, projectID uuid.UUID) (*models.ChatDetail, error) {
	args := m.Called(ctx, chatID, projectID)
	chat, _ := args.Get(0).(*models.ChatDetail)
	return chat, args.Error(1)
}

func (m *mockStore) UpdateChat(ctx context.Context, chatID, projectID uuid.UUID, req models.UpdateChatRequest) (*models.Chat, error) {
	args := m.Called(ctx, chatID, projectID, req)
	chat, _ := args.Get(0).(*models.Chat)
	return chat, args.Error(1)
}

func (m *mockStore) DeleteChat(ctx context.Context, chatID, projectID uuid.UUID) error {
	args := m.Called(ctx, chatID, projectID)
	return args.Error(0)
}
