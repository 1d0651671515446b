package database

import (
	"context"
	"errors"
	"fmt"
	"orchids/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	chatColumns    = "id, project_id, title, created_at, updated_at"
	messageColumns = "id, chat_id, role, content, created_at"
)

// ChatInProject reports whether chatID exists under projectID.
// It says nothing about who owns the project; check that first.
func (db *DB) ChatInProject(ctx context.Context, chatID, projectID uuid.UUID) (bool, error) {
	qb := chatKey(chatID, projectID)
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM chats %s)`, qb.WhereClause())

	var found bool
	if err := db.Pool.QueryRow(ctx, query, qb.Args()...).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check chat: %w", err)
	}
	return found, nil
}

// GetChat loads a chat and its messages (oldest first).
// Both queries go out in a single pgx batch, one network round trip.
func (db *DB) GetChat(ctx context.Context, chatID, projectID uuid.UUID) (*models.ChatDetail, error) {
	qb := chatKey(chatID, projectID)
	chatQuery := fmt.Sprintf(`SELECT %s FROM chats %s`, chatColumns, qb.WhereClause())
	messagesQuery := fmt.Sprintf(`
		SELECT %s
		FROM messages
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC
	`, messageColumns, columnChatID, columnCreatedAt, columnID)

	batch := &pgx.Batch{}
	batch.Queue(chatQuery, qb.Args()...)
	batch.Queue(messagesQuery, chatID)

	results := db.Pool.SendBatch(ctx, batch)
	defer func() {
		_ = results.Close()
	}()

	chat, err := scanChat(results.QueryRow())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("chat %s: %w", chatID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}

	rows, err := results.Query()
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	defer rows.Close()

	messages, err := scanMessages(rows)
	if err != nil {
		return nil, err
	}

	return &models.ChatDetail{Chat: *chat, Messages: messages}, nil
}

func (db *DB) UpdateChat(ctx context.Context, chatID, projectID uuid.UUID, req models.UpdateChatRequest) (*models.Chat, error) {
	qb := NewQueryBuilder()
	title := qb.Arg(req.Title)
	qb.AddCondition(columnID, chatID).
		AddCondition(columnProjectID, projectID)
	query := fmt.Sprintf(`
		UPDATE chats
		SET title = %s, updated_at = GREATEST(NOW(), updated_at)
		%s
		RETURNING %s
	`, title, qb.WhereClause(), chatColumns)

	chat, err := scanChat(db.Pool.QueryRow(ctx, query, qb.Args()...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("chat %s: %w", chatID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update chat: %w", err)
	}

	return chat, nil
}

func (db *DB) DeleteChat(ctx context.Context, chatID, projectID uuid.UUID) error {
	qb := chatKey(chatID, projectID)
	query := fmt.Sprintf(`DELETE FROM chats %s`, qb.WhereClause())

	result, err := db.Pool.Exec(ctx, query, qb.Args()...)
	if err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("chat %s: %w", chatID, ErrNotFound)
	}

	db.log.Info("deleted chat", zap.String("chat_id", chatID.String()), zap.String("project_id", projectID.String()))
	return nil
}

func scanChat(row rowScanner) (*models.Chat, error) {
	var chat models.Chat
	err := row.Scan(
		&chat.ID,
		&chat.ProjectID,
		&chat.Title,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func scanMessages(rows rowsScanner) ([]models.Message, error) {
	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	return messages, nil
}
