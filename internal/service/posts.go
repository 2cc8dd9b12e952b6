package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/devconnect-app/backend/internal/models"
)

// PostStore persists posts with their embedded likes and comments.
// ByID returns ErrNotFound for missing posts and preloads likes and
// comments newest first.
type PostStore interface {
	Create(ctx context.Context, p *models.Post) error
	List(ctx context.Context) ([]models.Post, error)
	ByID(ctx context.Context, id int) (*models.Post, error)
	Delete(ctx context.Context, p *models.Post) error
	AddLike(ctx context.Context, l *models.Like) error
	RemoveLike(ctx context.Context, l *models.Like) error
	Likes(ctx context.Context, postID int) ([]models.Like, error)
	AddComment(ctx context.Context, cm *models.Comment) error
	RemoveComment(ctx context.Context, cm *models.Comment) error
	Comments(ctx context.Context, postID int) ([]models.Comment, error)
}

// PostService implements the ownership-checked mutations over posts.
// Identity is whatever the auth middleware resolved; this layer only ever
// compares it against recorded author ids.
type PostService struct {
	posts PostStore
	users UserStore
}

func NewPostService(posts PostStore, users UserStore) *PostService {
	return &PostService{posts: posts, users: users}
}

// parseID maps malformed route ids to ErrNotFound so a bad id and a missing
// record are indistinguishable on the response surface.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, ErrNotFound
	}
	return id, nil
}

// Create stores a new post owned by authorID, snapshotting the author's
// name and avatar.
func (s *PostService) Create(ctx context.Context, authorID int, text string) (*models.Post, error) {
	user, err := s.users.ByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("loading author: %w", err)
	}

	post := &models.Post{
		Text:     text,
		AuthorID: user.ID,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Likes:    []models.Like{},
		Comments: []models.Comment{},
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	return post, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

// GetByID returns a post or ErrNotFound, for missing and malformed ids alike.
func (s *PostService) GetByID(ctx context.Context, rawID string) (*models.Post, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.posts.ByID(ctx, id)
}

// Delete removes a post and its likes and comments. Only the owner may
// delete; anyone else gets ErrForbidden.
func (s *PostService) Delete(ctx context.Context, rawID string, actingUserID int) error {
	post, err := s.GetByID(ctx, rawID)
	if err != nil {
		return err
	}
	if post.AuthorID != actingUserID {
		return ErrForbidden
	}
	return s.posts.Delete(ctx, post)
}

// Like records a like and returns the updated like list, newest first.
// A second like by the same user fails with ErrAlreadyLiked.
func (s *PostService) Like(ctx context.Context, rawID string, actingUserID int) ([]models.Like, error) {
	post, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	for _, like := range post.Likes {
		if like.UserID == actingUserID {
			return nil, ErrAlreadyLiked
		}
	}

	if err := s.posts.AddLike(ctx, &models.Like{PostID: post.ID, UserID: actingUserID}); err != nil {
		return nil, fmt.Errorf("adding like: %w", err)
	}
	return s.posts.Likes(ctx, post.ID)
}

// Unlike removes the acting user's like, failing with ErrNotLiked if there
// is none to remove.
func (s *PostService) Unlike(ctx context.Context, rawID string, actingUserID int) ([]models.Like, error) {
	post, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	var existing *models.Like
	for i := range post.Likes {
		if post.Likes[i].UserID == actingUserID {
			existing = &post.Likes[i]
			break
		}
	}
	if existing == nil {
		return nil, ErrNotLiked
	}

	if err := s.posts.RemoveLike(ctx, existing); err != nil {
		return nil, fmt.Errorf("removing like: %w", err)
	}
	return s.posts.Likes(ctx, post.ID)
}

// AddComment attaches a comment and returns the updated comment list,
// newest first.
func (s *PostService) AddComment(ctx context.Context, rawID string, authorID int, text string) ([]models.Comment, error) {
	post, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.ByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("loading author: %w", err)
	}

	comment := &models.Comment{
		PostID:   post.ID,
		Text:     text,
		AuthorID: user.ID,
		Name:     user.Name,
		Avatar:   user.Avatar,
	}
	if err := s.posts.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}
	return s.posts.Comments(ctx, post.ID)
}

// DeleteComment removes the comment identified by its own id. Only the
// comment's author may delete it.
func (s *PostService) DeleteComment(ctx context.Context, rawID, rawCommentID string, actingUserID int) ([]models.Comment, error) {
	post, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	commentID, err := strconv.Atoi(rawCommentID)
	if err != nil {
		return nil, ErrCommentNotFound
	}

	var target *models.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			target = &post.Comments[i]
			break
		}
	}
	if target == nil {
		return nil, ErrCommentNotFound
	}
	if target.AuthorID != actingUserID {
		return nil, ErrForbidden
	}

	if err := s.posts.RemoveComment(ctx, target); err != nil {
		return nil, fmt.Errorf("removing comment: %w", err)
	}
	return s.posts.Comments(ctx, post.ID)
}
