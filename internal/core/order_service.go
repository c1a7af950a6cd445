package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookorbit-backend-go/internal/db"
	"bookorbit-backend-go/internal/models"
)

// orderService implements the OrderService interface.
type orderService struct {
	orderRepo db.OrderRepository
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(orderRepo db.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// CreateOrder stores the client payload as-is under server-owned ownership and
// lifecycle fields. The server-set fields always win over same-named payload
// fields.
func (s *orderService) CreateOrder(ctx context.Context, callerEmail string, payload map[string]interface{}) (string, error) {
	doc := make(map[string]interface{}, len(payload)+4)
	for k, v := range payload {
		doc[k] = v
	}
	doc["userEmail"] = callerEmail
	doc["status"] = models.OrderPending
	doc["paymentStatus"] = models.PaymentUnpaid
	doc["orderDate"] = time.Now().UTC()

	id, err := s.orderRepo.Create(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	return id, nil
}

func (s *orderService) ListMine(ctx context.Context, callerEmail string) ([]map[string]interface{}, error) {
	orders, err := s.orderRepo.ListByUser(ctx, callerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for %q: %w", callerEmail, err)
	}
	return orders, nil
}

// CancelOrder walks the checks in a fixed order: existence, then ownership,
// then state. Only pending orders can be cancelled, and cancelled is terminal.
func (s *orderService) CancelOrder(ctx context.Context, callerEmail, id string) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: order %q", ErrNotFound, id)
		}
		return fmt.Errorf("failed to get order %q: %w", id, err)
	}

	if !CanCancelOrder(callerEmail, order) {
		return fmt.Errorf("%w: order %q belongs to another user", ErrForbidden, id)
	}
	if order.Status != models.OrderPending {
		return fmt.Errorf("%w: order %q is %s", ErrInvalidState, id, order.Status)
	}

	if err := s.orderRepo.SetStatus(ctx, id, models.OrderCancelled); err != nil {
		return fmt.Errorf("failed to cancel order %q: %w", id, err)
	}
	return nil
}
