package db

import (
	"context"
	"errors"

	"bookorbit-backend-go/internal/models"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// UserRepository defines user profile storage operations.
type UserRepository interface {
	// Upsert creates the profile on first login and refreshes name, email and
	// photo on later logins. Role and createdAt are written only on insert.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// BookRepository defines catalog storage operations.
type BookRepository interface {
	Create(ctx context.Context, book *models.Book) (string, error)
	GetByID(ctx context.Context, id string) (*models.Book, error)
	// List returns all books, or only those with the given status when status
	// is non-empty.
	List(ctx context.Context, status string) ([]*models.Book, error)
	ListByLibrarian(ctx context.Context, email string) ([]*models.Book, error)
	// Patch merges the given fields into the document verbatim.
	Patch(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines order storage operations. Full documents are raw
// maps because orders carry an arbitrary client-supplied cart payload.
type OrderRepository interface {
	Create(ctx context.Context, doc map[string]interface{}) (string, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// ListByUser returns the user's orders, most recent orderDate first.
	ListByUser(ctx context.Context, email string) ([]map[string]interface{}, error)
	SetStatus(ctx context.Context, id, status string) error
}
