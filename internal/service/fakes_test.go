package service_test

import (
	"context"
	"time"

	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/service"
)

// fakeUserStore is an in-memory service.UserStore.
type fakeUserStore struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]*models.User{}, nextID: 1}
}

func (s *fakeUserStore) Create(_ context.Context, u *models.User) error {
	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = time.Now()
	s.users[u.ID] = u
	return nil
}

func (s *fakeUserStore) ByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, service.ErrUserNotFound
}

func (s *fakeUserStore) ByID(_ context.Context, id int) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return u, nil
}

// fakePostStore is an in-memory service.PostStore with the same prepend
// ordering the real store produces: newest likes and comments first.
type fakePostStore struct {
	posts      map[int]*models.Post
	nextPostID int
	nextLikeID int
	nextCmtID  int
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[int]*models.Post{}, nextPostID: 1, nextLikeID: 1, nextCmtID: 1}
}

func (s *fakePostStore) Create(_ context.Context, p *models.Post) error {
	p.ID = s.nextPostID
	s.nextPostID++
	p.CreatedAt = time.Now()
	s.posts[p.ID] = p
	return nil
}

func (s *fakePostStore) List(_ context.Context) ([]models.Post, error) {
	out := []models.Post{}
	for id := s.nextPostID - 1; id >= 1; id-- {
		if p, ok := s.posts[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakePostStore) ByID(_ context.Context, id int) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return p, nil
}

func (s *fakePostStore) Delete(_ context.Context, p *models.Post) error {
	delete(s.posts, p.ID)
	return nil
}

func (s *fakePostStore) AddLike(_ context.Context, l *models.Like) error {
	l.ID = s.nextLikeID
	s.nextLikeID++
	l.CreatedAt = time.Now()
	p := s.posts[l.PostID]
	p.Likes = append([]models.Like{*l}, p.Likes...)
	return nil
}

func (s *fakePostStore) RemoveLike(_ context.Context, l *models.Like) error {
	p := s.posts[l.PostID]
	for i, existing := range p.Likes {
		if existing.ID == l.ID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			break
		}
	}
	return nil
}

func (s *fakePostStore) Likes(_ context.Context, postID int) ([]models.Like, error) {
	return append([]models.Like{}, s.posts[postID].Likes...), nil
}

func (s *fakePostStore) AddComment(_ context.Context, cm *models.Comment) error {
	cm.ID = s.nextCmtID
	s.nextCmtID++
	cm.CreatedAt = time.Now()
	p := s.posts[cm.PostID]
	p.Comments = append([]models.Comment{*cm}, p.Comments...)
	return nil
}

func (s *fakePostStore) RemoveComment(_ context.Context, cm *models.Comment) error {
	p := s.posts[cm.PostID]
	for i, existing := range p.Comments {
		if existing.ID == cm.ID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			break
		}
	}
	return nil
}

func (s *fakePostStore) Comments(_ context.Context, postID int) ([]models.Comment, error) {
	return append([]models.Comment{}, s.posts[postID].Comments...), nil
}
