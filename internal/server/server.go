package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/devconnect-app/backend/internal/auth"
	"github.com/devconnect-app/backend/internal/config"
	"github.com/devconnect-app/backend/internal/database"
	"github.com/devconnect-app/backend/internal/handlers"
	"github.com/devconnect-app/backend/internal/middleware"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
	tokens  *auth.TokenService
	log     *slog.Logger
}

// New wires routes into an http.Server with sane timeouts.
func New(cfg *config.Config, db database.Service, handler *handlers.Handler, tokens *auth.TokenService, logg *slog.Logger) *http.Server {
	s := &Server{
		db:      db,
		handler: handler,
		tokens:  tokens,
		log:     logg,
	}

	router := s.RegisterRoutes()

	return &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes.
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", "X-Requested-With", middleware.TokenHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	api := r.Group("/api")
	{
		// Public routes
		api.POST("/users", s.handler.User.Register)
		api.POST("/auth", s.handler.Auth.Login)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.Auth(s.tokens))
		{
			protected.GET("/auth", s.handler.Auth.GetAuth)

			protected.GET("/posts", s.handler.Post.GetPosts)
			protected.GET("/posts/:id", s.handler.Post.GetPost)
			protected.POST("/posts", s.handler.Post.CreatePost)
			protected.DELETE("/posts/:id", s.handler.Post.DeletePost)

			protected.PUT("/posts/like/:id", s.handler.Post.LikePost)
			protected.PUT("/posts/unlike/:id", s.handler.Post.UnlikePost)

			protected.POST("/posts/comment/:id", s.handler.Post.CreateComment)
			protected.DELETE("/posts/comment/:id/:comment_id", s.handler.Post.DeleteComment)
		}
	}

	return r
}
