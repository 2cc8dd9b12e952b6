package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/devconnect-app/backend/internal/auth"
	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/service"
)

// AuthService resolves users and checks credentials.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	UserByID(ctx context.Context, id int) (*models.User, error)
}

// PostService is the ownership-checked post API the handlers translate to HTTP.
type PostService interface {
	Create(ctx context.Context, authorID int, text string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, id string, actingUserID int) error
	Like(ctx context.Context, id string, actingUserID int) ([]models.Like, error)
	Unlike(ctx context.Context, id string, actingUserID int) ([]models.Like, error)
	AddComment(ctx context.Context, id string, authorID int, text string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id, commentID string, actingUserID int) ([]models.Comment, error)
}

// Handler combines all handler types.
type Handler struct {
	Auth *AuthHandler
	User *UserHandler
	Post *PostHandler
}

// NewHandler creates a unified handler with all sub-handlers.
func NewHandler(authSvc AuthService, postSvc PostService, tokens *auth.TokenService, logg *slog.Logger) *Handler {
	return &Handler{
		Auth: NewAuthHandler(authSvc, tokens, logg),
		User: NewUserHandler(authSvc, logg),
		Post: NewPostHandler(postSvc, logg),
	}
}

// bindingErrors converts a gin binding failure into the field-level error
// envelope: {"errors":[{"msg":"..."}, ...]}.
func bindingErrors(err error) []gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, gin.H{"msg": fieldMessage(fe)})
		}
		return out
	}
	return []gin.H{{"msg": "Invalid request body"}}
}

func fieldMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Name":
		return "Name is required"
	case fe.Field() == "Email":
		return "Please include a valid email"
	case fe.Field() == "Password" && fe.Tag() == "min":
		return "Please enter a password with 6 or more characters"
	case fe.Field() == "Password":
		return "Password is required"
	case fe.Field() == "Text":
		return "Text is required"
	default:
		return fe.Field() + " is invalid"
	}
}

// respondError maps service failures to the response envelope. Ownership
// violations return 401 like the original surface did, not 403.
func respondError(c *gin.Context, logg *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
	case errors.Is(err, service.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Comment does not exist"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized"})
	case errors.Is(err, service.ErrAlreadyLiked):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Post already liked"})
	case errors.Is(err, service.ErrNotLiked):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Post has not yet been liked"})
	default:
		logg.Error("unexpected handler error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
	}
}
