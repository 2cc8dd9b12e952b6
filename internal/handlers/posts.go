package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect-app/backend/internal/middleware"
)

type PostHandler struct {
	svc PostService
	log *slog.Logger
}

func NewPostHandler(svc PostService, logg *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: logg}
}

// actingUser pulls the id the auth middleware injected. Handlers behind the
// auth group never see requests without it; the guard is for miswired routes.
func (h *PostHandler) actingUser(c *gin.Context) (int, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
	}
	return userID, ok
}

// GetPosts returns all posts, newest first.
func (h *PostHandler) GetPosts(c *gin.Context) {
	posts, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost returns a single post. A malformed id answers exactly like a
// missing one.
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost creates a post owned by the authenticated user.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	post, err := h.svc.Create(c.Request.Context(), userID, input.Text)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// DeletePost removes a post; only its owner may.
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Post removed"})
}

// LikePost records a like; a duplicate like is rejected, not toggled.
func (h *PostHandler) LikePost(c *gin.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	likes, err := h.svc.Like(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// UnlikePost removes the caller's like, rejecting if there is none.
func (h *PostHandler) UnlikePost(c *gin.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	likes, err := h.svc.Unlike(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// CreateComment attaches a comment and returns the updated list, newest first.
func (h *PostHandler) CreateComment(c *gin.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	comments, err := h.svc.AddComment(c.Request.Context(), c.Param("id"), userID, input.Text)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// DeleteComment removes the comment identified by its own id; only the
// comment's author may.
func (h *PostHandler) DeleteComment(c *gin.Context) {
	userID, ok := h.actingUser(c)
	if !ok {
		return
	}

	comments, err := h.svc.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("comment_id"), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
