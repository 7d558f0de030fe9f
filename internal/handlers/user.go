package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteer-connect/internal/models"
	"volunteer-connect/internal/services"
)

// UserHandler handles user-related endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers returns every user without credentials
// GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]models.UserResponse, len(users))
	for i := range users {
		resp[i] = users[i].ToResponse()
	}
	c.JSON(http.StatusOK, resp)
}

// GetUser returns one user
// GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponse())
}

// DeleteUser removes a user with its organizations, applications and payments
// DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	deleted(c, "User")
}
