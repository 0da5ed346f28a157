package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"task_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the authenticated user's profile. The middleware has
// already established who the caller is; the handler re-reads the canonical
// record and applies the admin role gate, so authentication and authorization
// stay separate, sequential checks.
type ProfileHandler struct {
	service service.AuthService
	log     *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(s service.AuthService, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{service: s, log: log}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": false, "msg": err.Error()})
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": false, "msg": "User not found"})
			return
		}
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"status": false, "msg": "Access denied. Only admin users can access this endpoint"})
			return
		}
		h.log.Error("failed to load profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "status": true, "msg": "Profile found successfully"})
}

// RegisterProfileRoutes registers the profile route behind the auth middleware.
func (h *ProfileHandler) RegisterProfileRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/profile", authMW, h.GetProfile)
}
