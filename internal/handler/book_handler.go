package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookhub/internal/dto"
	"bookhub/internal/service"
)

type BookHandler struct {
	bookService service.BookService
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// RegisterRoutes registers the catalog endpoints. The group runs the
// verify-only token middleware: any valid token can browse and add books.
func (h *BookHandler) RegisterRoutes(books *gin.RouterGroup) {
	books.GET("", h.List)
	books.GET("/:id", h.Get)
	books.POST("", h.Create)
}

// RegisterProfileRoutes registers the creator-scoped endpoints under
// /profile/books. The group must run RequireUser.
func (h *BookHandler) RegisterProfileRoutes(profile *gin.RouterGroup) {
	profile.GET("/books", h.ListMine)
	profile.PUT("/books/:id", h.Update)
	profile.DELETE("/books/:id", h.Delete)
}

func bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return 0, false
	}
	return id, true
}

// List returns the whole catalog
// GET /books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookService.ListAll()
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No books found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list books"})
		return
	}

	out := make([]dto.CompressedBookOut, 0, len(books))
	for i := range books {
		out = append(out, *dto.FromModelToCompressedBookOut(&books[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns a single book
// GET /books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	book, err := h.bookService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get book"})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToBookOut(book))
}

// ListMine returns the caller's own contributions
// GET /profile/books
func (h *BookHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	books, err := h.bookService.ListByCreator(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No books found for this user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list books"})
		return
	}

	out := make([]dto.CompressedBookOut, 0, len(books))
	for i := range books {
		out = append(out, *dto.FromModelToCompressedBookOut(&books[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create adds a book, credited to the token subject
// POST /books
func (h *BookHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.BookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.bookService.Create(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add book"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book added", "book_id": book.ID})
}

// Update rewrites a book the caller created
// PUT /profile/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.BookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.bookService.Update(id, userID, &req); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found or not owned by user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update book"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book updated"})
}

// Delete archives then removes a book the caller created
// DELETE /profile/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.bookService.Delete(id, userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found or not owned by user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete book"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted"})
}
