package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookorbit-backend-go/internal/core"
	"bookorbit-backend-go/internal/models"
)

// BookHandler handles the catalog endpoints.
type BookHandler struct {
	bookService core.BookService
	logger      *zap.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(bs core.BookService, logger *zap.Logger) *BookHandler {
	return &BookHandler{bookService: bs, logger: logger}
}

// mapBookError translates service errors into the catalog's status codes and
// client messages.
func (h *BookHandler) mapBookError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Book not found"})
	case errors.Is(err, core.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Message: "Forbidden"})
	case errors.Is(err, core.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Price must be a number"})
	default:
		h.logger.Error("book operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: fallback})
	}
}

// CreateBook handles POST /books (librarian or admin only).
func (h *BookHandler) CreateBook(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req models.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request payload"})
		return
	}

	id, err := h.bookService.CreateBook(c.Request.Context(), email, req)
	if err != nil {
		h.mapBookError(c, err, "Failed to add book")
		return
	}
	c.JSON(http.StatusOK, InsertResult{InsertedID: id})
}

// ListBooks handles GET /books. Public; ?status=published narrows the result.
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.bookService.ListBooks(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.mapBookError(c, err, "Failed to fetch books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// ListMine handles GET /books/mine for the authenticated librarian.
func (h *BookHandler) ListMine(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	books, err := h.bookService.ListMine(c.Request.Context(), email)
	if err != nil {
		h.mapBookError(c, err, "Failed to fetch books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// GetBook handles GET /books/:id. Public.
func (h *BookHandler) GetBook(c *gin.Context) {
	book, err := h.bookService.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.mapBookError(c, err, "Failed to fetch book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// UpdateBook handles PATCH /books/:id (owning librarian or admin).
func (h *BookHandler) UpdateBook(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request payload"})
		return
	}

	if err := h.bookService.UpdateBook(c.Request.Context(), email, c.Param("id"), patch); err != nil {
		h.mapBookError(c, err, "Update failed")
		return
	}
	c.JSON(http.StatusOK, UpdateResult{ModifiedCount: 1})
}

// DeleteBook handles DELETE /books/:id (owning librarian or admin).
func (h *BookHandler) DeleteBook(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	if err := h.bookService.DeleteBook(c.Request.Context(), email, c.Param("id")); err != nil {
		h.mapBookError(c, err, "Delete failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}
