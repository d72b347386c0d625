package repository

import (
	"bookhub/internal/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	Create(book *models.Book) error
	FindByID(id int64) (*models.Book, error)
	ListAll() ([]models.Book, error)
	ListByCreator(creatorID string) ([]models.Book, error)
	// UpdateOwned writes the mutable fields of a book only when it belongs to
	// callerID. A missing book and someone else's book both report
	// gorm.ErrRecordNotFound.
	UpdateOwned(id int64, callerID string, fields map[string]interface{}) error
	// DeleteOwned archives then deletes the book in one transaction, with the
	// same ownership filter as UpdateOwned.
	DeleteOwned(id int64, callerID string) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(book *models.Book) error {
	return r.db.Create(book).Error
}

func (r *bookRepository) FindByID(id int64) (*models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) ListAll() ([]models.Book, error) {
	var books []models.Book
	if err := r.db.Order("created_at DESC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) ListByCreator(creatorID string) ([]models.Book, error) {
	var books []models.Book
	err := r.db.Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) UpdateOwned(id int64, callerID string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Book{}).
		Where("id = ? AND creator_id = ?", id, callerID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookRepository) DeleteOwned(id int64, callerID string) error {
	// archive insert and live delete commit together or not at all
	return r.db.Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.Where("id = ? AND creator_id = ?", id, callerID).First(&book).Error; err != nil {
			return err
		}

		archived := models.BookArchive{
			CreatorID:     book.CreatorID,
			Title:         book.Title,
			Author:        book.Author,
			DatePublished: book.DatePublished,
			Description:   book.Description,
			AverageRating: book.AverageRating,
		}
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}

		return tx.Delete(&book).Error
	})
}
