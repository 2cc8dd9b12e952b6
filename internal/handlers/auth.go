package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect-app/backend/internal/auth"
	"github.com/devconnect-app/backend/internal/middleware"
	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/service"
)

type AuthHandler struct {
	svc    AuthService
	tokens *auth.TokenService
	log    *slog.Logger
}

func NewAuthHandler(svc AuthService, tokens *auth.TokenService, logg *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, tokens: tokens, log: logg}
}

// GetAuth echoes the authenticated user. The password hash never leaves the
// model (json:"-").
func (h *AuthHandler) GetAuth(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	user, err := h.svc.UserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login authenticates email+password and returns a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	user, err := h.svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"msg": "Invalid credentials"}}})
			return
		}
		respondError(c, h.log, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
