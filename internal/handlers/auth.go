package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteer-connect/internal/apperror"
	"volunteer-connect/internal/auth"
	"volunteer-connect/internal/services"
)

// AuthHandler handles registration, login and the current-user endpoint
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Register creates a new user account
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered",
		"user":    user.ToResponse(),
	})
}

// Login checks credentials and returns the user's identity with a session token
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    result.User.ID,
		"name":  result.User.Name,
		"role":  result.User.Role,
		"token": result.Token,
	})
}

// GetMe returns the authenticated user
// GET /auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		respondError(c, apperror.Authentication("User not authenticated"))
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponse())
}
