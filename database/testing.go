package database

import (
	"context"
	"fmt"
	"orchids/models"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	testDB *DB
)

// GetTestDB returns the shared test database connection.
// Skips the calling test when short mode is on or when TestMain could
// not reach Postgres.
func GetTestDB(t *testing.T) *DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}
	if testDB == nil {
		t.Skip("skipping integration test: no test database")
	}
	return testDB
}

// SetupTestDB creates a test database connection and runs migrations.
// Should be called once in TestMain, not in individual tests.
func SetupTestDB(dbURL string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := Migrate(ctx, db.Pool, nil); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// CleanupTestDB truncates all tables for a fresh test state.
// Call this at the start of each integration test.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "TRUNCATE TABLE messages, chats, projects CASCADE")
	require.NoError(t, err)
}

// TeardownTestDB closes the test database connection.
// Safe to call with nil DB (no-op).
func TeardownTestDB(db *DB) {
	if db != nil {
		db.Close()
	}
}

// InsertTestChat stores a chat directly; the API has no chat creation endpoint.
func InsertTestChat(t *testing.T, db *DB, projectID uuid.UUID, title string) models.Chat {
	t.Helper()

	query := fmt.Sprintf(`INSERT INTO chats (project_id, title) VALUES ($1, $2) RETURNING %s`, chatColumns)
	chat, err := scanChat(db.Pool.QueryRow(context.Background(), query, projectID, title))
	require.NoError(t, err)
	return *chat
}

// InsertTestMessage stores a message with an explicit timestamp so tests
// control ordering.
func InsertTestMessage(t *testing.T, db *DB, chatID uuid.UUID, role, content string, at time.Time) models.Message {
	t.Helper()

	var m models.Message
	query := fmt.Sprintf(`
		INSERT INTO messages (chat_id, role, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, messageColumns)
	err := db.Pool.QueryRow(context.Background(), query, chatID, role, content, at).
		Scan(&m.ID, &m.ChatID, &m.Role, &m.Content, &m.CreatedAt)
	require.NoError(t, err)
	return m
}

// SetProjectUpdatedAt backdates a project so ordering tests are deterministic.
func SetProjectUpdatedAt(t *testing.T, db *DB, projectID uuid.UUID, at time.Time) {
	t.Helper()

	_, err := db.Pool.Exec(context.Background(),
		`UPDATE projects SET updated_at = $1 WHERE id = $2`, at, projectID)
	require.NoError(t, err)
}
