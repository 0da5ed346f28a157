package model

import "time"

// Task represents a single to-do item owned by a user. Completion is a
// percentage (0-100) rendered by the dashboard chart.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Completion  int       `json:"completion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTaskRequest is used for creating a new task
type CreateTaskRequest struct {
	Description string `json:"description" binding:"required"`
	Completion  *int   `json:"completion" binding:"omitempty,gte=0,lte=100"`
}

type UpdateTaskRequest struct {
	Description *string `json:"description,omitempty"` // Pointers to allow partial updates
	Completion  *int    `json:"completion,omitempty" binding:"omitempty,gte=0,lte=100"`
}
