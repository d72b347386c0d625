package models

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	BookID    int64     `json:"book_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewArchive is the append-only copy of a deleted review.
type ReviewArchive struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ArchivedAt time.Time `json:"archived_at" gorm:"autoCreateTime"`
	UserID     string    `json:"user_id"`
	BookID     int64     `json:"book_id"`
	Content    string    `json:"content" gorm:"not null"`
	Rating     int       `json:"rating" gorm:"not null"`
}

func (ReviewArchive) TableName() string {
	return "review_archives"
}
