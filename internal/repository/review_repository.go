package repository

import (
	"bookhub/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	ListByBook(bookID int64) ([]models.Review, error)
	ListByAuthor(userID string) ([]models.Review, error)
	// UpdateOwned and DeleteOwned mirror the book repository: a review that
	// doesn't exist and one that belongs to another user are both
	// gorm.ErrRecordNotFound.
	UpdateOwned(id int64, callerID string, content string, rating int) error
	DeleteOwned(id int64, callerID string) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) ListByBook(bookID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("book_id = ?", bookID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ListByAuthor(userID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) UpdateOwned(id int64, callerID string, content string, rating int) error {
	result := r.db.Model(&models.Review{}).
		Where("id = ? AND user_id = ?", id, callerID).
		Updates(map[string]interface{}{"content": content, "rating": rating})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) DeleteOwned(id int64, callerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.Where("id = ? AND user_id = ?", id, callerID).First(&review).Error; err != nil {
			return err
		}

		archived := models.ReviewArchive{
			UserID:  review.UserID,
			BookID:  review.BookID,
			Content: review.Content,
			Rating:  review.Rating,
		}
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}

		return tx.Delete(&review).Error
	})
}
