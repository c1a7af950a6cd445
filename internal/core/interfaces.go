package core

import (
	"context"

	"bookorbit-backend-go/internal/models"
)

// UserService defines user profile operations.
type UserService interface {
	// UpsertUser creates or refreshes the caller's profile document. It never
	// changes the role of an existing profile.
	UpsertUser(ctx context.Context, req models.UpsertUserRequest) (*models.User, error)
	// GetRole returns the stored role for the email, or RoleUser when no
	// profile exists.
	GetRole(ctx context.Context, email string) (string, error)
}

// BookService defines catalog operations.
type BookService interface {
	CreateBook(ctx context.Context, callerEmail string, req models.CreateBookRequest) (string, error)
	ListBooks(ctx context.Context, statusFilter string) ([]*models.Book, error)
	ListMine(ctx context.Context, callerEmail string) ([]*models.Book, error)
	GetBook(ctx context.Context, id string) (*models.Book, error)
	UpdateBook(ctx context.Context, callerEmail, id string, patch map[string]interface{}) error
	DeleteBook(ctx context.Context, callerEmail, id string) error
}

// OrderService defines order lifecycle operations.
type OrderService interface {
	CreateOrder(ctx context.Context, callerEmail string, payload map[string]interface{}) (string, error)
	ListMine(ctx context.Context, callerEmail string) ([]map[string]interface{}, error)
	CancelOrder(ctx context.Context, callerEmail, id string) error
}
