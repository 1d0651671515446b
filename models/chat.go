package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat is a conversation inside a project.
// Ownership is inherited from the parent project; a chat has no user_id.
type Chat struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ChatDetail is a chat together with its messages.
type ChatDetail struct {
	Chat
	Messages []Message `json:"messages"`
}

// Message is a single entry of a chat, ordered by CreatedAt.
type Message struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ChatID    uuid.UUID `json:"chat_id" db:"chat_id"`
	Role      string    `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UpdateChatRequest replaces the chat title.
type UpdateChatRequest struct {
	Title *string `json:"title"`
}

// ChatResponse wraps a single chat.
type ChatResponse struct {
	Chat *Chat `json:"chat"`
}

// ChatDetailResponse wraps a chat loaded with its messages.
type ChatDetailResponse struct {
	Chat *ChatDetail `json:"chat"`
}
