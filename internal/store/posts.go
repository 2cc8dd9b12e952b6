package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/service"
)

// newestFirst keeps likes and comments in prepend order: clients rely on
// index 0 being the most recent entry.
const newestFirst = "created_at DESC, id DESC"

// PostStore is the GORM-backed implementation of service.PostStore.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

func (s *PostStore) Create(ctx context.Context, p *models.Post) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *PostStore) List(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.db.WithContext(ctx).
		Preload("Likes", func(db *gorm.DB) *gorm.DB { return db.Order(newestFirst) }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order(newestFirst) }).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for i := range posts {
		normalize(&posts[i])
	}
	return posts, nil
}

func (s *PostStore) ByID(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).
		Preload("Likes", func(db *gorm.DB) *gorm.DB { return db.Order(newestFirst) }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order(newestFirst) }).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	normalize(&post)
	return &post, nil
}

// normalize keeps empty associations as [] rather than null on the wire.
func normalize(p *models.Post) {
	if p.Likes == nil {
		p.Likes = []models.Like{}
	}
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
}

// Delete removes the post together with its likes and comments.
func (s *PostStore) Delete(ctx context.Context, p *models.Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", p.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", p.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(p).Error
	})
}

func (s *PostStore) AddLike(ctx context.Context, l *models.Like) error {
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *PostStore) RemoveLike(ctx context.Context, l *models.Like) error {
	return s.db.WithContext(ctx).Delete(l).Error
}

func (s *PostStore) Likes(ctx context.Context, postID int) ([]models.Like, error) {
	likes := []models.Like{}
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order(newestFirst).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

func (s *PostStore) AddComment(ctx context.Context, cm *models.Comment) error {
	return s.db.WithContext(ctx).Create(cm).Error
}

func (s *PostStore) RemoveComment(ctx context.Context, cm *models.Comment) error {
	return s.db.WithContext(ctx).Delete(cm).Error
}

func (s *PostStore) Comments(ctx context.Context, postID int) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order(newestFirst).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
