package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"task_tracker/internal/middleware"
	"task_tracker/internal/model"
	"task_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task related requests
type TaskHandler struct {
	service service.TaskService
	log     *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(s service.TaskService, log *slog.Logger) *TaskHandler {
	return &TaskHandler{service: s, log: log}
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (string, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return userID, nil
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": false, "msg": err.Error()})
		return
	}

	var req model.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("rejected task payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid request"})
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), userID, req)
	if err != nil {
		h.log.Error("failed to create task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Failed to create task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task, "status": true, "msg": "Task created successfully"})
}

func (h *TaskHandler) GetMyTasks(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": false, "msg": err.Error()})
		return
	}

	tasks, err := h.service.GetUserTasks(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("failed to list tasks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Failed to retrieve tasks"})
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "status": true, "msg": "Tasks found successfully"})
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": false, "msg": err.Error()})
		return
	}

	task, err := h.service.GetTaskByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.respondTaskError(c, err, "Failed to retrieve task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task, "status": true, "msg": "Task found successfully"})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": false, "msg": err.Error()})
		return
	}

	var req model.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("rejected task payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Invalid request"})
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		h.respondTaskError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task, "status": true, "msg": "Task updated successfully"})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": false, "msg": err.Error()})
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.respondTaskError(c, err, "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": true, "msg": "Task deleted successfully"})
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "Task not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"status": false, "msg": "You do not have permission to access this task"})
	default:
		h.log.Error(internalMsg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": internalMsg})
	}
}

// RegisterTaskRoutes registers task routes behind the auth middleware.
func (h *TaskHandler) RegisterTaskRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	taskRoutes := rg.Group("/tasks")
	taskRoutes.Use(authMW) // All routes in this group require authentication
	{
		taskRoutes.POST("", h.CreateTask)
		taskRoutes.GET("", h.GetMyTasks)
		taskRoutes.GET("/:id", h.GetTaskByID)
		taskRoutes.PUT("/:id", h.UpdateTask)
		taskRoutes.DELETE("/:id", h.DeleteTask)
	}
}
