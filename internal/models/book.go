package models

import "time"

// Book is a user-contributed catalog entry. There are no admin curators;
// whoever adds a book owns its record.
type Book struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatorID     string    `json:"creator_id" gorm:"type:uuid;index"`
	Title         string    `json:"title" gorm:"not null;index"`
	Author        string    `json:"author" gorm:"not null"`
	DatePublished string    `json:"Date_published" gorm:"column:date_published;not null"`
	Description   *string   `json:"Description,omitempty" gorm:"column:description"`
	AverageRating *float64  `json:"Average_rating,omitempty" gorm:"column:average_rating"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Book) TableName() string {
	return "books"
}

// BookArchive is an append-only copy of a deleted book. No foreign keys back
// to the live tables; the creator may be long gone by the time anyone reads it.
type BookArchive struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ArchivedAt    time.Time `json:"archived_at" gorm:"autoCreateTime"`
	CreatorID     string    `json:"creator_id"`
	Title         string    `json:"title" gorm:"not null"`
	Author        string    `json:"author" gorm:"not null"`
	DatePublished string    `json:"Date_published" gorm:"column:date_published;not null"`
	Description   *string   `json:"Description,omitempty" gorm:"column:description"`
	AverageRating *float64  `json:"Average_rating,omitempty" gorm:"column:average_rating"`
}

func (BookArchive) TableName() string {
	return "book_archives"
}
