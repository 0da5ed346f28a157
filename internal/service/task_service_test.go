package service

import (
	"context"
	"testing"
	"time"

	"task_tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskRepo struct {
	tasks map[string]*model.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*model.Task)}
}

func (f *fakeTaskRepo) Create(_ context.Context, t *model.Task) error {
	t.ID = "task-" + t.Description
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) FindByID(_ context.Context, id string) (*model.Task, error) {
	return f.tasks[id], nil
}

func (f *fakeTaskRepo) FindByUser(_ context.Context, userID string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, t *model.Task) error {
	// The real store stamps updated_at and returns it to the caller.
	t.UpdatedAt = time.Now()
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id string) error {
	delete(f.tasks, id)
	return nil
}

func TestTaskService_CreateAndList(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	created, err := svc.CreateTask(context.Background(), "u1", model.CreateTaskRequest{Description: "write report"})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, 0, created.Completion)

	tasks, err := svc.GetUserTasks(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	other, err := svc.GetUserTasks(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTaskService_OwnershipEnforced(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	created, err := svc.CreateTask(context.Background(), "u1", model.CreateTaskRequest{Description: "write report"})
	require.NoError(t, err)

	_, err = svc.GetTaskByID(context.Background(), created.ID, "u2")
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeleteTask(context.Background(), created.ID, "u2")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateTask(context.Background(), created.ID, "u2", model.UpdateTaskRequest{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTaskService_UpdatePartial(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	created, err := svc.CreateTask(context.Background(), "u1", model.CreateTaskRequest{Description: "write report"})
	require.NoError(t, err)

	completion := 75
	updated, err := svc.UpdateTask(context.Background(), created.ID, "u1", model.UpdateTaskRequest{Completion: &completion})
	require.NoError(t, err)
	assert.Equal(t, 75, updated.Completion)
	assert.Equal(t, "write report", updated.Description)
}

func TestTaskService_UpdateTimestampComesFromStore(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	created, err := svc.CreateTask(context.Background(), "u1", model.CreateTaskRequest{Description: "write report"})
	require.NoError(t, err)
	before := created.UpdatedAt

	desc := "write final report"
	updated, err := svc.UpdateTask(context.Background(), created.ID, "u1", model.UpdateTaskRequest{Description: &desc})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(before), "updated_at must carry the store's stamp")
}

func TestTaskService_NotFound(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	_, err := svc.GetTaskByID(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = svc.DeleteTask(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
