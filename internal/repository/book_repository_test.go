package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookhub/internal/models"
)

// testDB opens a throwaway in-memory database, one per test.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Review{},
		&models.BookArchive{},
		&models.ReviewArchive{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func seedBook(t *testing.T, db *gorm.DB, creatorID string) *models.Book {
	t.Helper()

	desc := "a classic"
	rating := 4.5
	book := &models.Book{
		CreatorID:     creatorID,
		Title:         "X",
		Author:        "Y",
		DatePublished: "2024-01-01",
		Description:   &desc,
		AverageRating: &rating,
	}
	if err := db.Create(book).Error; err != nil {
		t.Fatalf("seed book: %v", err)
	}
	return book
}

func TestBookDeleteOwned_ArchivesAndRemoves(t *testing.T) {
	db := testDB(t)
	repo := NewBookRepository(db)

	book := seedBook(t, db, "u1")

	err := repo.DeleteOwned(book.ID, "u1")
	assert.NoError(t, err)

	// zero live rows for that id
	var liveCount int64
	db.Model(&models.Book{}).Where("id = ?", book.ID).Count(&liveCount)
	assert.Equal(t, int64(0), liveCount)

	// exactly one archive row, field for field
	var archives []models.BookArchive
	assert.NoError(t, db.Find(&archives).Error)
	assert.Len(t, archives, 1)

	archived := archives[0]
	assert.Equal(t, "u1", archived.CreatorID)
	assert.Equal(t, book.Title, archived.Title)
	assert.Equal(t, book.Author, archived.Author)
	assert.Equal(t, book.DatePublished, archived.DatePublished)
	assert.Equal(t, *book.Description, *archived.Description)
	assert.Equal(t, *book.AverageRating, *archived.AverageRating)
	assert.False(t, archived.ArchivedAt.IsZero())
}

func TestBookDeleteOwned_NotOwned(t *testing.T) {
	db := testDB(t)
	repo := NewBookRepository(db)

	book := seedBook(t, db, "u1")

	err := repo.DeleteOwned(book.ID, "intruder")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the book is unchanged and nothing was archived
	var liveCount, archiveCount int64
	db.Model(&models.Book{}).Where("id = ?", book.ID).Count(&liveCount)
	db.Model(&models.BookArchive{}).Count(&archiveCount)
	assert.Equal(t, int64(1), liveCount)
	assert.Equal(t, int64(0), archiveCount)
}

func TestBookDeleteOwned_Missing(t *testing.T) {
	db := testDB(t)
	repo := NewBookRepository(db)

	err := repo.DeleteOwned(404, "u1")
	// indistinguishable from not-owned
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookDeleteOwned_RollsBackWhenArchiveFails(t *testing.T) {
	db := testDB(t)
	repo := NewBookRepository(db)

	book := seedBook(t, db, "u1")

	// sabotage the archive insert; the delete must roll back with it
	if err := db.Migrator().DropTable(&models.BookArchive{}); err != nil {
		t.Fatalf("drop archive table: %v", err)
	}

	err := repo.DeleteOwned(book.ID, "u1")
	assert.Error(t, err)

	var liveCount int64
	db.Model(&models.Book{}).Where("id = ?", book.ID).Count(&liveCount)
	assert.Equal(t, int64(1), liveCount)
}

func TestBookUpdateOwned(t *testing.T) {
	db := testDB(t)
	repo := NewBookRepository(db)

	book := seedBook(t, db, "u1")

	err := repo.UpdateOwned(book.ID, "u1", map[string]interface{}{
		"title": "X2", "author": "Y2", "date_published": "2025-01-01", "description": nil,
	})
	assert.NoError(t, err)

	var got models.Book
	assert.NoError(t, db.First(&got, "id = ?", book.ID).Error)
	assert.Equal(t, "X2", got.Title)
	assert.Equal(t, "Y2", got.Author)
	assert.Equal(t, "2025-01-01", got.DatePublished)
	assert.Nil(t, got.Description)
}

func TestBookUpdateOwned_NotOwned(t *testing.T) {
	db := testDB(t)
	repo := NewBookRepository(db)

	book := seedBook(t, db, "u1")

	err := repo.UpdateOwned(book.ID, "intruder", map[string]interface{}{"title": "stolen"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var got models.Book
	assert.NoError(t, db.First(&got, "id = ?", book.ID).Error)
	assert.Equal(t, "X", got.Title)
}
