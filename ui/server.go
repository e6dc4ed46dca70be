// Package ui hosts the HTTP surfaces: the public JSON API the storefront
// calls for testimonials and reviews, and a chi-based admin router for ops.
package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glastor/app"
	"glastor/internal"
)

// Server is the public JSON API consumed by the storefront.
type Server struct {
	router       *gin.Engine
	testimonials *app.TestimonialService
	reviews      *app.ReviewService
	log          *internal.Logger
}

// Config holds server configuration
type Config struct {
	GinMode string
}

// NewServer creates the public API server.
func NewServer(cfg Config, testimonials *app.TestimonialService, reviews *app.ReviewService, log *internal.Logger) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{
		router:       gin.New(),
		testimonials: testimonials,
		reviews:      reviews,
		log:          log,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.GET("/products/:id/testimonials", s.handleGetTestimonials)
		api.GET("/products/:id/reviews", s.handleListReviews)
		api.POST("/products/:id/reviews", s.handleAddReview)
		api.DELETE("/products/:id/reviews/:reviewID", s.handleRemoveReview)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run starts the server on the given port.
func (s *Server) Run(port string) error {
	s.log.Info("API server listening on :%s", port)
	return s.router.Run(":" + port)
}
