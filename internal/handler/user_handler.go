package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookhub/internal/dto"
	"bookhub/internal/middleware"
	"bookhub/internal/models"
	"bookhub/internal/service"
)

type UserHandler struct {
	authService service.AuthService
}

func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRoutes registers the profile endpoints. The group must already run
// the RequireUser middleware.
func (h *UserHandler) RegisterRoutes(profile *gin.RouterGroup) {
	profile.GET("", h.GetProfile)
	profile.PUT("", h.UpdateProfile)
	profile.DELETE("", h.DeleteProfile)
}

// currentUser pulls the user the RequireUser middleware resolved.
func currentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return nil, false
	}
	user, ok := value.(*models.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return nil, false
	}
	return user, true
}

// currentUserID pulls the subject ID set by either auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return "", false
	}
	return id, true
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.UserOut{
		ID:       user.ID,
		Username: user.Username,
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.UpdateProfile(user, req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrNameInUse) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

func (h *UserHandler) DeleteProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.authService.DeleteProfile(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
