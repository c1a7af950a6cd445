package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bookorbit-backend-go/internal/db"
	"bookorbit-backend-go/internal/models"
)

// bookService implements the BookService interface.
type bookService struct {
	bookRepo db.BookRepository
	users    UserService
}

// NewBookService creates a new BookService instance. The user service is the
// single source of role truth for catalog authorization.
func NewBookService(bookRepo db.BookRepository, users UserService) BookService {
	return &bookService{bookRepo: bookRepo, users: users}
}

func (s *bookService) CreateBook(ctx context.Context, callerEmail string, req models.CreateBookRequest) (string, error) {
	role, err := s.users.GetRole(ctx, callerEmail)
	if err != nil {
		return "", err
	}
	if !CanManageCatalog(role) {
		return "", fmt.Errorf("%w: role %q cannot create books", ErrForbidden, role)
	}

	price, err := coercePrice(req.Price)
	if err != nil {
		return "", err
	}

	bookStatus := req.Status
	if bookStatus == "" {
		bookStatus = models.BookUnpublished
	}

	book := &models.Book{
		Name:        req.Name,
		Author:      req.Author,
		Image:       req.Image,
		Price:       price,
		Status:      bookStatus,
		Description: req.Description,
		// Ownership comes from the authenticated caller, never the payload.
		LibrarianEmail: callerEmail,
		CreatedAt:      time.Now().UTC(),
	}

	id, err := s.bookRepo.Create(ctx, book)
	if err != nil {
		return "", fmt.Errorf("failed to create book: %w", err)
	}
	return id, nil
}

// ListBooks narrows to published records only when asked for exactly that;
// any other filter value returns every book, unpublished included. That
// default-allow behavior is deliberate (see DESIGN.md).
func (s *bookService) ListBooks(ctx context.Context, statusFilter string) ([]*models.Book, error) {
	filter := ""
	if statusFilter == models.BookPublished {
		filter = models.BookPublished
	}
	books, err := s.bookRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func (s *bookService) ListMine(ctx context.Context, callerEmail string) ([]*models.Book, error) {
	books, err := s.bookRepo.ListByLibrarian(ctx, callerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list books for %q: %w", callerEmail, err)
	}
	return books, nil
}

func (s *bookService) GetBook(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: book %q", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get book %q: %w", id, err)
	}
	return book, nil
}

func (s *bookService) UpdateBook(ctx context.Context, callerEmail, id string, patch map[string]interface{}) error {
	book, err := s.authorizeModify(ctx, callerEmail, id)
	if err != nil {
		return err
	}
	if err := s.bookRepo.Patch(ctx, book.ID, patch); err != nil {
		return fmt.Errorf("failed to update book %q: %w", id, err)
	}
	return nil
}

func (s *bookService) DeleteBook(ctx context.Context, callerEmail, id string) error {
	book, err := s.authorizeModify(ctx, callerEmail, id)
	if err != nil {
		return err
	}
	if err := s.bookRepo.Delete(ctx, book.ID); err != nil {
		return fmt.Errorf("failed to delete book %q: %w", id, err)
	}
	return nil
}

// authorizeModify resolves the book and checks the owner-or-admin rule shared
// by update and delete. NotFound is reported before Forbidden.
func (s *bookService) authorizeModify(ctx context.Context, callerEmail, id string) (*models.Book, error) {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	role, err := s.users.GetRole(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	if !CanModifyBook(callerEmail, role, book) {
		return nil, fmt.Errorf("%w: book %q belongs to %q", ErrForbidden, id, book.LibrarianEmail)
	}
	return book, nil
}

// coercePrice accepts the price however the client encoded it. A missing price
// stores as zero, matching the lax input handling of the rest of the payload.
func coercePrice(v interface{}) (float64, error) {
	switch p := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return p, nil
	case json.Number:
		f, err := p.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: price %q is not numeric", ErrInvalidInput, p.String())
		}
		return f, nil
	case string:
		if p == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: price %q is not numeric", ErrInvalidInput, p)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: unsupported price type %T", ErrInvalidInput, v)
	}
}
