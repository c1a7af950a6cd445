package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookorbit-backend-go/internal/models"
)

func TestCreateOrderServerFieldsWin(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)

	id, err := svc.CreateOrder(context.Background(), "a@x.com", map[string]interface{}{
		"items": []interface{}{map[string]interface{}{"bookId": "b1", "qty": 2.0}},
		// Attempts to smuggle server-owned fields must be overwritten.
		"userEmail":     "attacker@x.com",
		"status":        models.OrderFulfilled,
		"paymentStatus": "paid",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	doc := repo.docs[id]
	if doc["userEmail"] != "a@x.com" {
		t.Fatalf("expected owner a@x.com, got %v", doc["userEmail"])
	}
	if doc["status"] != models.OrderPending {
		t.Fatalf("expected status pending, got %v", doc["status"])
	}
	if doc["paymentStatus"] != models.PaymentUnpaid {
		t.Fatalf("expected paymentStatus unpaid, got %v", doc["paymentStatus"])
	}
	if _, ok := doc["orderDate"].(time.Time); !ok {
		t.Fatalf("expected orderDate set server-side, got %v", doc["orderDate"])
	}
	if doc["items"] == nil {
		t.Fatalf("cart payload dropped")
	}
}

func TestListMineNewestFirst(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, label := range []string{"first", "second", "third"} {
		repo.docs[label] = map[string]interface{}{
			"userEmail": "a@x.com",
			"status":    models.OrderPending,
			"orderDate": base.Add(time.Duration(i) * time.Hour),
		}
	}
	repo.docs["foreign"] = map[string]interface{}{
		"userEmail": "b@x.com",
		"status":    models.OrderPending,
		"orderDate": base.Add(10 * time.Hour),
	}

	orders, err := svc.ListMine(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	want := []string{"third", "second", "first"}
	for i, id := range want {
		if orders[i]["_id"] != id {
			t.Fatalf("position %d: expected %q, got %v", i, id, orders[i]["_id"])
		}
	}
}

func TestCancelOrderNotFound(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	err := svc.CancelOrder(context.Background(), "a@x.com", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCancelOrderForbiddenForForeignCaller(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)
	ctx := context.Background()

	// Ownership is checked before state: a foreign caller sees Forbidden
	// whether the order is pending or already cancelled.
	for _, status := range []string{models.OrderPending, models.OrderCancelled} {
		repo.docs["o-"+status] = map[string]interface{}{
			"userEmail": "owner@x.com",
			"status":    status,
			"orderDate": time.Now().UTC(),
		}
		if err := svc.CancelOrder(ctx, "other@x.com", "o-"+status); !errors.Is(err, ErrForbidden) {
			t.Fatalf("status %s: expected ErrForbidden, got %v", status, err)
		}
	}
}

func TestCancelOrderTwice(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)
	ctx := context.Background()

	id, err := svc.CreateOrder(ctx, "a@x.com", map[string]interface{}{"items": "x"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.CancelOrder(ctx, "a@x.com", id); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}
	if repo.docs[id]["status"] != models.OrderCancelled {
		t.Fatalf("expected status cancelled, got %v", repo.docs[id]["status"])
	}
	if err := svc.CancelOrder(ctx, "a@x.com", id); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on repeat cancel, got %v", err)
	}
}
