package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/services/user"
)

// UserHandler serves account and profile endpoints.
type UserHandler struct {
	Users  user.UserService
	Logger *zap.Logger
}

func NewUserHandler(users user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

// RegisterHandler handles POST /api/auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.Users.SignUp(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Registration failed", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.Users.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, logger, "Login failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the caller's token.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	if err := h.Users.SignOut(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, logger, "Logout failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
