package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect-app/backend/internal/auth"
	"github.com/devconnect-app/backend/internal/handlers"
	"github.com/devconnect-app/backend/internal/middleware"
	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/service"
)

type stubAuthService struct {
	registerErr error
	authErr     error
	user        *models.User
}

func (s *stubAuthService) Register(context.Context, string, string, string) (*models.User, error) {
	return s.user, s.registerErr
}

func (s *stubAuthService) Authenticate(context.Context, string, string) (*models.User, error) {
	return s.user, s.authErr
}

func (s *stubAuthService) UserByID(context.Context, int) (*models.User, error) {
	return s.user, s.authErr
}

type stubPostService struct {
	post     *models.Post
	posts    []models.Post
	likes    []models.Like
	comments []models.Comment
	err      error
}

func (s *stubPostService) Create(context.Context, int, string) (*models.Post, error) {
	return s.post, s.err
}
func (s *stubPostService) List(context.Context) ([]models.Post, error) { return s.posts, s.err }
func (s *stubPostService) GetByID(context.Context, string) (*models.Post, error) {
	return s.post, s.err
}
func (s *stubPostService) Delete(context.Context, string, int) error { return s.err }
func (s *stubPostService) Like(context.Context, string, int) ([]models.Like, error) {
	return s.likes, s.err
}
func (s *stubPostService) Unlike(context.Context, string, int) ([]models.Like, error) {
	return s.likes, s.err
}
func (s *stubPostService) AddComment(context.Context, string, int, string) ([]models.Comment, error) {
	return s.comments, s.err
}
func (s *stubPostService) DeleteComment(context.Context, string, string, int) ([]models.Comment, error) {
	return s.comments, s.err
}

var testTokens = auth.NewTokenService("test-secret", time.Hour)

func newTestRouter(authSvc handlers.AuthService, postSvc handlers.PostService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logg := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handlers.NewHandler(authSvc, postSvc, testTokens, logg)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/users", h.User.Register)
	api.POST("/auth", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(testTokens))
	protected.GET("/auth", h.Auth.GetAuth)
	protected.GET("/posts", h.Post.GetPosts)
	protected.GET("/posts/:id", h.Post.GetPost)
	protected.POST("/posts", h.Post.CreatePost)
	protected.DELETE("/posts/:id", h.Post.DeletePost)
	protected.PUT("/posts/like/:id", h.Post.LikePost)
	protected.PUT("/posts/unlike/:id", h.Post.UnlikePost)
	protected.POST("/posts/comment/:id", h.Post.CreateComment)
	protected.DELETE("/posts/comment/:id/:comment_id", h.Post.DeleteComment)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		token, err := testTokens.Issue(1)
		require.NoError(t, err)
		req.Header.Set(middleware.TokenHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, &stubPostService{})

	w := doJSON(t, r, http.MethodPost, "/api/users", `{"name":"","email":"bad","password":"abc"}`, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"errors"`)
	assert.Contains(t, body, "Name is required")
	assert.Contains(t, body, "Please include a valid email")
	assert.Contains(t, body, "Please enter a password with 6 or more characters")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestRouter(&stubAuthService{registerErr: service.ErrEmailTaken}, &stubPostService{})

	w := doJSON(t, r, http.MethodPost, "/api/users", `{"name":"Ana","email":"ana@x.com","password":"secret1"}`, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"User already exists"}]}`, w.Body.String())
}

func TestRegisterSuccess(t *testing.T) {
	svc := &stubAuthService{user: &models.User{ID: 1, Name: "Ana"}}
	r := newTestRouter(svc, &stubPostService{})

	w := doJSON(t, r, http.MethodPost, "/api/users", `{"name":"Ana","email":"ana@x.com","password":"secret1"}`, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"User registered successfully"}`, w.Body.String())
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newTestRouter(&stubAuthService{authErr: service.ErrInvalidCredentials}, &stubPostService{})

	w := doJSON(t, r, http.MethodPost, "/api/auth", `{"email":"ana@x.com","password":"wrong"}`, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Invalid credentials"}]}`, w.Body.String())
}

func TestLoginReturnsToken(t *testing.T) {
	svc := &stubAuthService{user: &models.User{ID: 7, Email: "ana@x.com"}}
	r := newTestRouter(svc, &stubPostService{})

	w := doJSON(t, r, http.MethodPost, "/api/auth", `{"email":"ana@x.com","password":"secret1"}`, false)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	userID, err := testTokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)
}

func TestGetAuthHidesPassword(t *testing.T) {
	svc := &stubAuthService{user: &models.User{ID: 1, Name: "Ana", Email: "ana@x.com", Password: "hash"}}
	r := newTestRouter(svc, &stubPostService{})

	w := doJSON(t, r, http.MethodGet, "/api/auth", "", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"ana@x.com"`)
	assert.NotContains(t, w.Body.String(), "hash")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, &stubPostService{})

	w := doJSON(t, r, http.MethodGet, "/api/posts", "", false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"No token, authorization denied"}`, w.Body.String())
}

func TestCreatePostValidation(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, &stubPostService{})

	w := doJSON(t, r, http.MethodPost, "/api/posts", `{"text":""}`, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Text is required"}]}`, w.Body.String())
}

func TestGetPostNotFound(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, &stubPostService{err: service.ErrNotFound})

	w := doJSON(t, r, http.MethodGet, "/api/posts/999", "", true)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"Post not found"}`, w.Body.String())
}

func TestDeletePostForbidden(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, &stubPostService{err: service.ErrForbidden})

	w := doJSON(t, r, http.MethodDelete, "/api/posts/1", "", true)

	// The original surface answers 401, not 403, for ownership violations.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"msg":"User not authorized"}`, w.Body.String())
}

func TestLikeAlreadyLiked(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, &stubPostService{err: service.ErrAlreadyLiked})

	w := doJSON(t, r, http.MethodPut, "/api/posts/like/1", "", true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Post already liked"}`, w.Body.String())
}

func TestUnlikeNotLiked(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, &stubPostService{err: service.ErrNotLiked})

	w := doJSON(t, r, http.MethodPut, "/api/posts/unlike/1", "", true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Post has not yet been liked"}`, w.Body.String())
}

func TestDeleteCommentNotFound(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, &stubPostService{err: service.ErrCommentNotFound})

	w := doJSON(t, r, http.MethodDelete, "/api/posts/comment/1/999", "", true)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"Comment does not exist"}`, w.Body.String())
}

func TestUnexpectedErrorIsOpaque(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, &stubPostService{err: errors.New("pg: connection reset")})

	w := doJSON(t, r, http.MethodGet, "/api/posts", "", true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection reset")
}
