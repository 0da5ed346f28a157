package repository

import (
	"context"
	"errors"
	"fmt"

	"task_tracker/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TaskRepository defines operations for task data
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id string) (*model.Task, error)
	FindByUser(ctx context.Context, userID string) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id string) error
}

type taskRepository struct {
	db DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create inserts a new task into the database, assigning its id.
func (r *taskRepository) Create(ctx context.Context, t *model.Task) error {
	t.ID = uuid.NewString()
	sql := `INSERT INTO tasks (id, user_id, description, completion, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, sql, t.ID, t.UserID, t.Description, t.Completion, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID
func (r *taskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	t := &model.Task{}
	sql := `SELECT id, user_id, description, completion, created_at, updated_at
            FROM tasks WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&t.ID, &t.UserID, &t.Description, &t.Completion, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find task by ID: %w", err)
	}
	return t, nil
}

// FindByUser retrieves all tasks owned by a user, newest first.
func (r *taskRepository) FindByUser(ctx context.Context, userID string) ([]model.Task, error) {
	sql := `SELECT id, user_id, description, completion, created_at, updated_at
            FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by user: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Description, &t.Completion, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

// Update modifies an existing task
func (r *taskRepository) Update(ctx context.Context, t *model.Task) error {
	sql := `UPDATE tasks
            SET description = $1, completion = $2, updated_at = NOW()
            WHERE id = $3 AND user_id = $4 RETURNING updated_at` // ensure user_id matches for ownership
	err := r.db.QueryRow(ctx, sql, t.Description, t.Completion, t.ID, t.UserID).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("task not found or not owned by user for update")
		}
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes a task from the database
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	sql := `DELETE FROM tasks WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("task not found for deletion")
	}
	return nil
}
