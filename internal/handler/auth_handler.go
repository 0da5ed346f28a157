package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"task_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Validation kinds are rendered into user-facing text only here, at the
// response boundary.
var validationMessages = map[service.ValidationKind]string{
	service.ValidationMissingFields:    "Please fill all the fields",
	service.ValidationNonStringValues:  "Please send string values only",
	service.ValidationPasswordTooShort: "Password length must be at least 4 characters",
	service.ValidationInvalidEmail:     "Invalid Email",
	service.ValidationDuplicateEmail:   "This email is already registered",
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	log     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{service: s, log: log}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request"})
		return
	}

	_, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": validationMessages[vErr.Kind]})
			return
		}
		h.log.Error("signup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Congratulations! Admin account has been created"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Please fill all the fields"})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"status": false, "msg": "Invalid email or password"})
			return
		}
		h.log.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"msg":    "Login successful",
		"token":  token,
		"user":   user,
	})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}
}
