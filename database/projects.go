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

const projectColumns = "id, user_id, name, description, url, created_at, updated_at"

// ProjectOwned reports whether projectID exists and belongs to userID.
func (db *DB) ProjectOwned(ctx context.Context, projectID uuid.UUID, userID string) (bool, error) {
	qb := projectKey(projectID, userID)
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM projects %s)`, qb.WhereClause())

	var owned bool
	if err := db.Pool.QueryRow(ctx, query, qb.Args()...).Scan(&owned); err != nil {
		return false, fmt.Errorf("failed to check project ownership: %w", err)
	}
	return owned, nil
}

func (db *DB) CreateProject(ctx context.Context, userID string, req models.CreateProjectRequest) (*models.Project, error) {
	query := fmt.Sprintf(`
		INSERT INTO projects (user_id, name, description, url)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, userID, req.Name, req.Description, req.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	db.log.Info("created project", zap.String("project_id", project.ID.String()), zap.String("user_id", userID))
	return project, nil
}

// ListProjects returns every project owned by userID, most recently
// updated first. Returns an empty slice (not nil) when there are none.
func (db *DB) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	qb := NewQueryBuilder().AddCondition(columnUserID, userID)
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		%s
		ORDER BY %s DESC, %s DESC
	`, projectColumns, qb.WhereClause(), columnUpdatedAt, columnID)

	rows, err := db.Pool.Query(ctx, query, qb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (db *DB) GetProject(ctx context.Context, projectID uuid.UUID, userID string) (*models.Project, error) {
	qb := projectKey(projectID, userID)
	query := fmt.Sprintf(`SELECT %s FROM projects %s`, projectColumns, qb.WhereClause())

	project, err := scanProject(db.Pool.QueryRow(ctx, query, qb.Args()...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// UpdateProject replaces name, description and url and refreshes
// updated_at. updated_at never moves backwards.
func (db *DB) UpdateProject(ctx context.Context, projectID uuid.UUID, userID string, req models.UpdateProjectRequest) (*models.Project, error) {
	qb := NewQueryBuilder()
	set := fmt.Sprintf("name = %s, description = %s, url = %s",
		qb.Arg(req.Name), qb.Arg(req.Description), qb.Arg(req.URL))
	qb.AddCondition(columnID, projectID).
		AddCondition(columnUserID, userID)
	query := fmt.Sprintf(`
		UPDATE projects
		SET %s, updated_at = GREATEST(NOW(), updated_at)
		%s
		RETURNING %s
	`, set, qb.WhereClause(), projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, qb.Args()...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes the project; its chats go with it through the
// foreign key cascade.
func (db *DB) DeleteProject(ctx context.Context, projectID uuid.UUID, userID string) error {
	qb := projectKey(projectID, userID)
	query := fmt.Sprintf(`DELETE FROM projects %s`, qb.WhereClause())

	result, err := db.Pool.Exec(ctx, query, qb.Args()...)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", projectID, ErrNotFound)
	}

	db.log.Info("deleted project", zap.String("project_id", projectID.String()), zap.String("user_id", userID))
	return nil
}

// Helper functions

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.UserID,
		&project.Name,
		&project.Description,
		&project.URL,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
