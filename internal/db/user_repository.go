package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bookorbit-backend-go/internal/models"
)

const usersCollection = "users"

// firestoreUserRepository implements UserRepository using Firestore, with the
// user's email as the document ID so the unique key is structural.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a Firestore-backed UserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	return &firestoreUserRepository{client: client}
}

// Upsert runs in a transaction so a repeated login can never reset an
// operator-assigned role: role and createdAt are written only when the
// document is being created.
func (r *firestoreUserRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	ref := r.client.Collection(usersCollection).Doc(user.Email)
	stored := *user

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				stored.Role = models.RoleUser
				stored.CreatedAt = time.Now().UTC()
				return tx.Set(ref, &stored)
			}
			return err
		}

		var existing models.User
		if err := snap.DataTo(&existing); err != nil {
			return err
		}
		stored.Role = existing.Role
		stored.CreatedAt = existing.CreatedAt

		return tx.Set(ref, map[string]interface{}{
			"name":     user.Name,
			"email":    user.Email,
			"photoURL": user.PhotoURL,
		}, firestore.MergeAll)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %q: %w", user.Email, err)
	}
	return &stored, nil
}

// GetByEmail retrieves a user profile, returning ErrNotFound when absent.
func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user %q: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user %q: %w", email, err)
	}

	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user %q: %w", email, err)
	}
	return &user, nil
}
