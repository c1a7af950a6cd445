package models

import "time"

// Order status states. The only exposed transition is pending to cancelled;
// fulfilled is declared in the state set but nothing transitions into it.
const (
	OrderPending   = "pending"
	OrderCancelled = "cancelled"
	OrderFulfilled = "fulfilled"
)

// Payment states. Nothing transitions an order out of unpaid; the payments
// collection is reserved in the database layout but unused.
const (
	PaymentUnpaid = "unpaid"
)

// Order carries the server-owned fields of an order document. The full
// document also holds an arbitrary client-supplied cart payload, so reads that
// must echo everything back work on raw maps; this struct is what the service
// needs for ownership and state checks.
type Order struct {
	ID            string    `json:"_id" firestore:"-"`
	UserEmail     string    `json:"userEmail" firestore:"userEmail"`
	Status        string    `json:"status" firestore:"status"`
	PaymentStatus string    `json:"paymentStatus" firestore:"paymentStatus"`
	OrderDate     time.Time `json:"orderDate" firestore:"orderDate"`
}
