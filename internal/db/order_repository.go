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

const (
	ordersCollection = "orders"
	// paymentsCollection is reserved in the database layout; no endpoint reads
	// or writes it yet.
	paymentsCollection = "payments"
)

// firestoreOrderRepository implements OrderRepository using Firestore.
type firestoreOrderRepository struct {
	client *firestore.Client
}

// NewFirestoreOrderRepository creates a Firestore-backed OrderRepository.
func NewFirestoreOrderRepository(client *firestore.Client) OrderRepository {
	return &firestoreOrderRepository{client: client}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, doc map[string]interface{}) (string, error) {
	ref, _, err := r.client.Collection(ordersCollection).Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	return ref.ID, nil
}

// GetByID decodes only the server-owned fields; cart payload fields in the
// document are ignored by DataTo.
func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	snap, err := r.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("order %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %q: %w", id, err)
	}

	var order models.Order
	if err := snap.DataTo(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order %q: %w", id, err)
	}
	order.ID = snap.Ref.ID
	return &order, nil
}

func (r *firestoreOrderRepository) ListByUser(ctx context.Context, email string) ([]map[string]interface{}, error) {
	iter := r.client.Collection(ordersCollection).
		Query.
		Where("userEmail", "==", email).
		OrderBy("orderDate", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	orders := make([]map[string]interface{}, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders for %q: %w", email, err)
		}
		doc := snap.Data()
		doc["_id"] = snap.Ref.ID
		orders = append(orders, doc)
	}
	return orders, nil
}

func (r *firestoreOrderRepository) SetStatus(ctx context.Context, id, orderStatus string) error {
	_, err := r.client.Collection(ordersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: orderStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("order %q: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to set order %q status: %w", id, err)
	}
	return nil
}
