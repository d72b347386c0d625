package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookhub/internal/dto"
	"bookhub/internal/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterBookRoutes nests the per-book review endpoints under the catalog
// group (verify-only middleware).
func (h *ReviewHandler) RegisterBookRoutes(books *gin.RouterGroup) {
	books.GET("/:id/reviews", h.ListByBook)
	books.POST("/:id/reviews", h.Create)
}

// RegisterRoutes registers the author-scoped mutation endpoints. The group
// must run RequireUser.
func (h *ReviewHandler) RegisterRoutes(reviews *gin.RouterGroup) {
	reviews.PUT("/:id", h.Update)
	reviews.DELETE("/:id", h.Delete)
}

// RegisterProfileRoutes registers the caller's review listing under /profile.
func (h *ReviewHandler) RegisterProfileRoutes(profile *gin.RouterGroup) {
	profile.GET("/reviews", h.ListMine)
}

func reviewID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return 0, false
	}
	return id, true
}

// ListByBook returns all reviews for one book
// GET /books/:id/reviews
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByBook(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No reviews found for this book"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}

	out := make([]dto.ReviewOut, 0, len(reviews))
	for i := range reviews {
		out = append(out, *dto.FromModelToReviewOut(&reviews[i]))
	}
	c.JSON(http.StatusOK, out)
}

// ListMine returns the caller's own reviews
// GET /profile/reviews
func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByAuthor(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No reviews found for this user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}

	out := make([]dto.ProfileReviewOut, 0, len(reviews))
	for i := range reviews {
		out = append(out, *dto.FromModelToProfileReviewOut(&reviews[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create posts a review for a book, authored by the token subject
// POST /books/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Create(userID, id, req.Content, req.Rating)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review added", "review_id": review.ID})
}

// Update rewrites a review the caller authored
// PUT /reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reviewService.Update(id, userID, req.Content, req.Rating); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found or not owned by user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated"})
}

// Delete archives then removes a review the caller authored
// DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := reviewID(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.reviewService.Delete(id, userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found or not owned by user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted and archived"})
}
