package service

import (
	"errors"

	"gorm.io/gorm"

	"bookhub/internal/dto"
	"bookhub/internal/models"
	"bookhub/internal/repository"
)

// ErrNotFound covers a row that doesn't exist, a row owned by someone else,
// and an empty collection. Handlers must not tell these apart; doing so would
// leak which IDs exist.
var ErrNotFound = errors.New("resource not found")

type BookService interface {
	ListAll() ([]models.Book, error)
	Get(id int64) (*models.Book, error)
	ListByCreator(creatorID string) ([]models.Book, error)
	Create(creatorID string, req *dto.BookCreateRequest) (*models.Book, error)
	Update(id int64, callerID string, req *dto.BookCreateRequest) error
	Delete(id int64, callerID string) error
}

type bookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

// ListAll returns every book in the catalog. An empty catalog reads as
// ErrNotFound; that policy lives here so flipping it later touches one method.
func (s *bookService) ListAll() ([]models.Book, error) {
	books, err := s.bookRepo.ListAll()
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNotFound
	}
	return books, nil
}

func (s *bookService) Get(id int64) (*models.Book, error) {
	book, err := s.bookRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) ListByCreator(creatorID string) ([]models.Book, error) {
	books, err := s.bookRepo.ListByCreator(creatorID)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNotFound
	}
	return books, nil
}

// Create adds a book on behalf of the token subject. No uniqueness constraint
// on title/author; the same edition added twice is two catalog entries.
func (s *bookService) Create(creatorID string, req *dto.BookCreateRequest) (*models.Book, error) {
	book := &models.Book{
		CreatorID:     creatorID,
		Title:         req.Title,
		Author:        req.Author,
		DatePublished: req.DatePublished,
		Description:   req.Description,
	}
	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) Update(id int64, callerID string, req *dto.BookCreateRequest) error {
	fields := map[string]interface{}{
		"title":          req.Title,
		"author":         req.Author,
		"date_published": req.DatePublished,
		"description":    req.Description,
	}
	if err := s.bookRepo.UpdateOwned(id, callerID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete archives the book and removes the live row in one transaction.
func (s *bookService) Delete(id int64, callerID string) error {
	if err := s.bookRepo.DeleteOwned(id, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
