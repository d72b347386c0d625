package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookhub/internal/dto"
	"bookhub/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the unauthenticated auth endpoints
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	router.POST("/token", h.Token)
	router.POST("/token/refresh", h.Refresh)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.authService.Signup(req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrNameInUse) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User created"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, refreshToken, _, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One message for unknown user and wrong password alike
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
	})
}

// Token is the form-encoded login used by OAuth2 password-grant tooling
// (Swagger UI posts username/password as a form and expects access_token).
func (h *AuthHandler) Token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	accessToken, _, _, err := h.authService.Login(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, dto.OAuthTokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newAccessToken, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken: newAccessToken,
		TokenType:   "bearer",
	})
}
