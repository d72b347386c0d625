package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bookhub/internal/dto"
	"bookhub/internal/models"
)

// MockBookRepository mocks repository.BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(book *models.Book) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockBookRepository) FindByID(id int64) (*models.Book, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) ListAll() ([]models.Book, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) ListByCreator(creatorID string) ([]models.Book, error) {
	args := m.Called(creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) UpdateOwned(id int64, callerID string, fields map[string]interface{}) error {
	args := m.Called(id, callerID, fields)
	return args.Error(0)
}

func (m *MockBookRepository) DeleteOwned(id int64, callerID string) error {
	args := m.Called(id, callerID)
	return args.Error(0)
}

func TestListAll_EmptyIsNotFound(t *testing.T) {
	bookRepo := new(MockBookRepository)
	svc := NewBookService(bookRepo)

	bookRepo.On("ListAll").Return([]models.Book{}, nil)

	_, err := svc.ListAll()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAll(t *testing.T) {
	bookRepo := new(MockBookRepository)
	svc := NewBookService(bookRepo)

	books := []models.Book{
		{ID: 1, Title: "X", Author: "Y", DatePublished: "2024-01-01"},
		{ID: 2, Title: "Z", Author: "W", DatePublished: "2023-06-01"},
	}
	bookRepo.On("ListAll").Return(books, nil)

	got, err := svc.ListAll()
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetBook_NotFound(t *testing.T) {
	bookRepo := new(MockBookRepository)
	svc := NewBookService(bookRepo)

	bookRepo.On("FindByID", int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByCreator_EmptyIsNotFound(t *testing.T) {
	bookRepo := new(MockBookRepository)
	svc := NewBookService(bookRepo)

	bookRepo.On("ListByCreator", "u1").Return([]models.Book{}, nil)

	_, err := svc.ListByCreator("u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBook(t *testing.T) {
	bookRepo := new(MockBookRepository)
	svc := NewBookService(bookRepo)

	bookRepo.On("Create", mock.AnythingOfType("*models.Book")).Return(nil)

	desc := "a description"
	book, err := svc.Create("u1", &dto.BookCreateRequest{
		Title:         "X",
		Author:        "Y",
		DatePublished: "2024-01-01",
		Description:   &desc,
	})
	assert.NoError(t, err)
	assert.Equal(t, "u1", book.CreatorID)
	assert.Equal(t, "X", book.Title)

	bookRepo.AssertExpectations(t)
}

func TestUpdateBook_NotOwnedIsNotFound(t *testing.T) {
	bookRepo := new(MockBookRepository)
	svc := NewBookService(bookRepo)

	// repository reports not-owned and missing identically
	bookRepo.On("UpdateOwned", int64(1), "intruder", mock.Anything).Return(gorm.ErrRecordNotFound)

	err := svc.Update(1, "intruder", &dto.BookCreateRequest{
		Title: "X", Author: "Y", DatePublished: "2024-01-01",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBook(t *testing.T) {
	bookRepo := new(MockBookRepository)
	svc := NewBookService(bookRepo)

	bookRepo.On("DeleteOwned", int64(1), "u1").Return(nil)

	assert.NoError(t, svc.Delete(1, "u1"))
	bookRepo.AssertExpectations(t)
}

func TestDeleteBook_NotOwnedIsNotFound(t *testing.T) {
	bookRepo := new(MockBookRepository)
	svc := NewBookService(bookRepo)

	bookRepo.On("DeleteOwned", int64(1), "intruder").Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(1, "intruder"), ErrNotFound)
}
