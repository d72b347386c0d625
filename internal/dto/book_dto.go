package dto

import "bookhub/internal/models"

// JSON keys on the book payloads keep the original client contract, casing
// included (Date_published, Description, Average_rating).

// BookCreateRequest: payload for adding or updating a book. The creator is
// taken from the bearer token, never from the body.
type BookCreateRequest struct {
	Title         string  `json:"title" binding:"required"`
	Author        string  `json:"author" binding:"required"`
	DatePublished string  `json:"Date_published" binding:"required"`
	Description   *string `json:"Description"`
}

// BookOut: full book details for single-book display
type BookOut struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	DatePublished string   `json:"Date_published"`
	Description   *string  `json:"Description,omitempty"`
	AverageRating *float64 `json:"Average_rating,omitempty"`
}

// CompressedBookOut: abbreviated book shape for list views
type CompressedBookOut struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	DatePublished string   `json:"Date_published"`
	AverageRating *float64 `json:"Average_rating,omitempty"`
}

func FromModelToBookOut(book *models.Book) *BookOut {
	return &BookOut{
		ID:            book.ID,
		Title:         book.Title,
		Author:        book.Author,
		DatePublished: book.DatePublished,
		Description:   book.Description,
		AverageRating: book.AverageRating,
	}
}

func FromModelToCompressedBookOut(book *models.Book) *CompressedBookOut {
	return &CompressedBookOut{
		ID:            book.ID,
		Title:         book.Title,
		Author:        book.Author,
		DatePublished: book.DatePublished,
		AverageRating: book.AverageRating,
	}
}
