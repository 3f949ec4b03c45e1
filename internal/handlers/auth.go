package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/campus-wellness-api/internal/dto"
	apierrors "github.com/yukikurage/campus-wellness-api/internal/errors"
	"github.com/yukikurage/campus-wellness-api/internal/services"
	"github.com/yukikurage/campus-wellness-api/internal/session"
	"github.com/yukikurage/campus-wellness-api/internal/utils"
	"go.uber.org/zap"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new user.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), services.SignupInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	utils.Logger.Info("user_signed_up", zap.String("user", user.Username))
	c.JSON(http.StatusCreated, gin.H{
		"user":    dto.ToUserDTO(*user),
		"message": "Account created! Please login 💛",
	})
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if err := session.Login(c, user.Username); err != nil {
		respondInternal(c, err, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.SessionDTO{
		Username: user.Username,
		Message:  "Welcome back 🎉",
		Screen:   ScreenDashboard,
	})
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Logout(c); err != nil {
		respondInternal(c, err, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
		"screen":  ScreenLogin,
	})
}

// Me returns the username held by the session.
func (h *AuthHandler) Me(c *gin.Context) {
	username, ok := currentUsername(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.SessionDTO{
		Username: username,
		Screen:   ScreenDashboard,
	})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, "Username already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, "Invalid login details")
	case errors.Is(err, services.ErrUsernameRequired),
		errors.Is(err, services.ErrUsernameTooLong),
		errors.Is(err, services.ErrPasswordRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		respondInternal(c, err, "Internal server error")
	}
}
