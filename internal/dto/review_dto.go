package dto

import (
	"time"

	"bookhub/internal/models"
)

// ReviewCreateRequest: payload for adding or updating a review
type ReviewCreateRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// ReviewOut: review shape shown under a book
type ReviewOut struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	BookID    int64     `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
}

// ProfileReviewOut: review shape shown in the author's own profile; the
// author ID is implied so it's dropped
type ProfileReviewOut struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
}

func FromModelToReviewOut(review *models.Review) *ReviewOut {
	return &ReviewOut{
		ID:        review.ID,
		UserID:    review.UserID,
		BookID:    review.BookID,
		CreatedAt: review.CreatedAt,
		Content:   review.Content,
		Rating:    review.Rating,
	}
}

func FromModelToProfileReviewOut(review *models.Review) *ProfileReviewOut {
	return &ProfileReviewOut{
		ID:        review.ID,
		BookID:    review.BookID,
		CreatedAt: review.CreatedAt,
		Content:   review.Content,
		Rating:    review.Rating,
	}
}
