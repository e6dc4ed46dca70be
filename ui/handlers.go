package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glastor/domain/core"
	"glastor/domain/reltime"
	"glastor/domain/testimonial"
	"glastor/internal/errors"
	"glastor/models"
)

// testimonialView is the wire shape of one testimonial card, the record plus
// its pre-rendered relative-time label.
type testimonialView struct {
	testimonial.Testimonial
	RelativeTime string `json:"relative_time"`
}

func (s *Server) handleGetTestimonials(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	productName := c.Query("name")

	cards := s.testimonials.GetTestimonials(c.Request.Context(), productID, productName)

	views := make([]testimonialView, len(cards))
	for i, t := range cards {
		views[i] = testimonialView{
			Testimonial:  t,
			RelativeTime: reltime.FormatSince(t.CreatedAt.Time()),
		}
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": views})
}

func (s *Server) handleListReviews(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	reviews := s.reviews.List(productID)
	if reviews == nil {
		// render [] rather than null for products with no reviews
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"summary": s.reviews.Summary(productID),
	})
}

type addReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

func (s *Server) handleAddReview(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := s.reviews.Add(productID, req.Name, req.Rating, req.Comment)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  errors.GetCode(err),
		})
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (s *Server) handleRemoveReview(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	reviewID, err := core.ParseReviewID(c.Param("reviewID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.reviews.Remove(productID, reviewID)
	c.Status(http.StatusNoContent)
}

func productIDParam(c *gin.Context) (core.ProductID, bool) {
	productID, err := core.ParseProductID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return productID, true
}
