package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task_tracker/internal/model"
	"task_tracker/internal/repository"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService defines operations for tasks
type TaskService interface {
	CreateTask(ctx context.Context, userID string, req model.CreateTaskRequest) (*model.Task, error)
	GetTaskByID(ctx context.Context, taskID, userID string) (*model.Task, error)
	GetUserTasks(ctx context.Context, userID string) ([]model.Task, error)
	UpdateTask(ctx context.Context, taskID, userID string, req model.UpdateTaskRequest) (*model.Task, error)
	DeleteTask(ctx context.Context, taskID, userID string) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) CreateTask(ctx context.Context, userID string, req model.CreateTaskRequest) (*model.Task, error) {
	completion := 0
	if req.Completion != nil {
		completion = *req.Completion
	}

	task := &model.Task{
		UserID:      userID,
		Description: req.Description,
		Completion:  completion,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task in repo: %w", err)
	}
	return task, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, taskID, userID string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task by ID: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.UserID != userID {
		return nil, ErrForbidden
	}
	return task, nil
}

func (s *taskService) GetUserTasks(ctx context.Context, userID string) ([]model.Task, error) {
	tasks, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user tasks from repo: %w", err)
	}
	return tasks, nil
}

func (s *taskService) UpdateTask(ctx context.Context, taskID, userID string, req model.UpdateTaskRequest) (*model.Task, error) {
	existing, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task for update: %w", err)
	}
	if existing == nil {
		return nil, ErrTaskNotFound
	}
	if existing.UserID != userID { // Only the owner can edit
		return nil, ErrForbidden
	}

	// Apply updates
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Completion != nil {
		existing.Completion = *req.Completion
	}

	// The repository stamps updated_at and writes it back into the task.
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update task in repo: %w", err)
	}
	return existing, nil
}

func (s *taskService) DeleteTask(ctx context.Context, taskID, userID string) error {
	existing, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to find task for deletion: %w", err)
	}
	if existing == nil {
		return ErrTaskNotFound
	}
	if existing.UserID != userID {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task in repo: %w", err)
	}
	return nil
}
