package service

import (
	"errors"

	"gorm.io/gorm"

	"bookhub/internal/models"
	"bookhub/internal/repository"
)

type ReviewService interface {
	ListByBook(bookID int64) ([]models.Review, error)
	ListByAuthor(userID string) ([]models.Review, error)
	Create(userID string, bookID int64, content string, rating int) (*models.Review, error)
	Update(id int64, callerID string, content string, rating int) error
	Delete(id int64, callerID string) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	bookRepo   repository.BookRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, bookRepo repository.BookRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
	}
}

func (s *reviewService) ListByBook(bookID int64) ([]models.Review, error) {
	reviews, err := s.reviewRepo.ListByBook(bookID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, ErrNotFound
	}
	return reviews, nil
}

func (s *reviewService) ListByAuthor(userID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.ListByAuthor(userID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, ErrNotFound
	}
	return reviews, nil
}

// Create stamps the review at insert time (autoCreateTime on the model). The
// target book must exist; reviews never point at IDs that were never live.
func (s *reviewService) Create(userID string, bookID int64, content string, rating int) (*models.Review, error) {
	if _, err := s.bookRepo.FindByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := &models.Review{
		UserID:  userID,
		BookID:  bookID,
		Content: content,
		Rating:  rating,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Update(id int64, callerID string, content string, rating int) error {
	if err := s.reviewRepo.UpdateOwned(id, callerID, content, rating); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *reviewService) Delete(id int64, callerID string) error {
	if err := s.reviewRepo.DeleteOwned(id, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
