package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bookorbit-backend-go/internal/models"
)

const booksCollection = "books"

// firestoreBookRepository implements BookRepository using Firestore with
// auto-generated document IDs.
type firestoreBookRepository struct {
	client *firestore.Client
}

// NewFirestoreBookRepository creates a Firestore-backed BookRepository.
func NewFirestoreBookRepository(client *firestore.Client) BookRepository {
	return &firestoreBookRepository{client: client}
}

func (r *firestoreBookRepository) Create(ctx context.Context, book *models.Book) (string, error) {
	ref, _, err := r.client.Collection(booksCollection).Add(ctx, book)
	if err != nil {
		return "", fmt.Errorf("failed to create book: %w", err)
	}
	return ref.ID, nil
}

func (r *firestoreBookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	snap, err := r.client.Collection(booksCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("book %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get book %q: %w", id, err)
	}
	return decodeBook(snap)
}

func (r *firestoreBookRepository) List(ctx context.Context, bookStatus string) ([]*models.Book, error) {
	q := r.client.Collection(booksCollection).Query
	if bookStatus != "" {
		q = q.Where("status", "==", bookStatus)
	}
	return collectBooks(q.Documents(ctx))
}

func (r *firestoreBookRepository) ListByLibrarian(ctx context.Context, email string) ([]*models.Book, error) {
	q := r.client.Collection(booksCollection).Query.Where("librarianEmail", "==", email)
	return collectBooks(q.Documents(ctx))
}

// Patch merges the given fields into the document. Existence is the caller's
// concern; MergeAll would create a missing document, so the service checks
// GetByID first.
func (r *firestoreBookRepository) Patch(ctx context.Context, id string, patch map[string]interface{}) error {
	_, err := r.client.Collection(booksCollection).Doc(id).Set(ctx, patch, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to patch book %q: %w", id, err)
	}
	return nil
}

func (r *firestoreBookRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(booksCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete book %q: %w", id, err)
	}
	return nil
}

func collectBooks(iter *firestore.DocumentIterator) ([]*models.Book, error) {
	defer iter.Stop()

	books := make([]*models.Book, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate books: %w", err)
		}
		book, err := decodeBook(snap)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

func decodeBook(snap *firestore.DocumentSnapshot) (*models.Book, error) {
	var book models.Book
	if err := snap.DataTo(&book); err != nil {
		return nil, fmt.Errorf("failed to decode book %q: %w", snap.Ref.ID, err)
	}
	book.ID = snap.Ref.ID
	return &book, nil
}
