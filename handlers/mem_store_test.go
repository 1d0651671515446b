package handlers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"orchids/database"
	"orchids/models"

	"github.com/google/uuid"
)

// memStore is an in-memory data service with the same filtering rules as
// the Postgres one. The clock advances one second per write so ordering
// is deterministic.
type memStore struct {
	now      time.Time
	projects map[uuid.UUID]models.Project
	chats    map[uuid.UUID]models.ChatDetail
}

func newMemStore() *memStore {
	return &memStore{
		now:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		projects: map[uuid.UUID]models.Project{},
		chats:    map[uuid.UUID]models.ChatDetail{},
	}
}

func (s *memStore) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *memStore) addChat(projectID uuid.UUID, title string, messages ...models.Message) models.ChatDetail {
	at := s.tick()
	chat := models.ChatDetail{
		Chat: models.Chat{
			ID: uuid.New(), ProjectID: projectID, Title: title, CreatedAt: at, UpdatedAt: at,
		},
		Messages: messages,
	}
	if chat.Messages == nil {
		chat.Messages = []models.Message{}
	}
	s.chats[chat.ID] = chat
	return chat
}

func (s *memStore) ProjectOwned(_ context.Context, projectID uuid.UUID, userID string) (bool, error) {
	p, ok := s.projects[projectID]
	return ok && p.UserID == userID, nil
}

func (s *memStore) ChatInProject(_ context.Context, chatID, projectID uuid.UUID) (bool, error) {
	c, ok := s.chats[chatID]
	return ok && c.ProjectID == projectID, nil
}

func (s *memStore) ListProjects(_ context.Context, userID string) ([]models.Project, error) {
	projects := []models.Project{}
	for _, p := range s.projects {
		if p.UserID == userID {
			projects = append(projects, p)
		}
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
	})
	return projects, nil
}

func (s *memStore) CreateProject(_ context.Context, userID string, req models.CreateProjectRequest) (*models.Project, error) {
	at := s.tick()
	p := models.Project{
		ID: uuid.New(), UserID: userID, Name: req.Name,
		Description: req.Description, URL: req.URL,
		CreatedAt: at, UpdatedAt: at,
	}
	s.projects[p.ID] = p
	return &p, nil
}

func (s *memStore) GetProject(_ context.Context, projectID uuid.UUID, userID string) (*models.Project, error) {
	p, ok := s.projects[projectID]
	if !ok || p.UserID != userID {
		return nil, fmt.Errorf("project %s: %w", projectID, database.ErrNotFound)
	}
	return &p, nil
}

func (s *memStore) UpdateProject(_ context.Context, projectID uuid.UUID, userID string, req models.UpdateProjectRequest) (*models.Project, error) {
	p, ok := s.projects[projectID]
	if !ok || p.UserID != userID {
		return nil, fmt.Errorf("project %s: %w", projectID, database.ErrNotFound)
	}
	if req.Name == nil {
		return nil, errors.New(`null value in column "name" of relation "projects" violates not-null constraint`)
	}
	if strings.TrimSpace(*req.Name) == "" {
		return nil, errors.New(`new row for relation "projects" violates check constraint "projects_name_not_blank"`)
	}
	p.Name = *req.Name
	p.Description = req.Description
	p.URL = req.URL
	p.UpdatedAt = s.tick()
	s.projects[projectID] = p
	return &p, nil
}

func (s *memStore) DeleteProject(_ context.Context, projectID uuid.UUID, userID string) error {
	p, ok := s.projects[projectID]
	if !ok || p.UserID != userID {
		return fmt.Errorf("project %s: %w", projectID, database.ErrNotFound)
	}
	delete(s.projects, projectID)
	for id, c := range s.chats {
		if c.ProjectID == projectID {
			delete(s.chats, id)
		}
	}
	return nil
}

func (s *memStore) GetChat(_ context.Context, chatID, projectID uuid.UUID) (*models.ChatDetail, error) {
	c, ok := s.chats[chatID]
	if !ok || c.ProjectID != projectID {
		return nil, fmt.Errorf("chat %s: %w", chatID, database.ErrNotFound)
	}
	return &c, nil
}

func (s *memStore) UpdateChat(_ context.Context, chatID, projectID uuid.UUID, req models.UpdateChatRequest) (*models.Chat, error) {
	c, ok := s.chats[chatID]
	if !ok || c.ProjectID != projectID {
		return nil, fmt.Errorf("chat %s: %w", chatID, database.ErrNotFound)
	}
	if req.Title == nil {
		return nil, errors.New(`null value in column "title" of relation "chats" violates not-null constraint`)
	}
	c.Title = *req.Title
	c.UpdatedAt = s.tick()
	s.chats[chatID] = c
	return &c.Chat, nil
}

func (s *memStore) DeleteChat(_ context.Context, chatID, projectID uuid.UUID) error {
	c, ok := s.chats[chatID]
	if !ok || c.ProjectID != projectID {
		return fmt.Errorf("chat %s: %w", chatID, database.ErrNotFound)
	}
	delete(s.chats, chatID)
	return nil
}
