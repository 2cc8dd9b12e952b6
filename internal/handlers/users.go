package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect-app/backend/internal/service"
)

type UserHandler struct {
	svc AuthService
	log *slog.Logger
}

func NewUserHandler(svc AuthService, logg *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logg}
}

// Register creates a new user. Duplicate emails are rejected before anything
// is written.
func (h *UserHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	_, err := h.svc.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"msg": "User already exists"}}})
			return
		}
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User registered successfully"})
}
